package discovery

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/beachhead/internal/domain"
)

// DedupResult is the outcome of deduplication and diversity filtering.
type DedupResult struct {
	Survivors []*domain.Genome

	DuplicatesDropped int
	CapRejected       int
	MissingKeySkipped int
}

// Deduplicate thins a raw pooled population. A genome is dropped when its
// canonical gene-tuple was already seen, or when the diversity-key dimension
// already has diversityCap survivors with the same value. Genomes missing
// the diversity-key field (mode mismatch) are skipped with a warning rather
// than crashing the filter. Survivors are renumbered sequentially.
func Deduplicate(genomes []*domain.Genome, mode domain.SegmentationMode, diversityCap int, warn WarnFunc) DedupResult {
	var res DedupResult

	divKey := domain.DiversityKey(mode)
	seen := make(map[string]bool, len(genomes))
	divCounts := make(map[string]int)

	for _, g := range genomes {
		divValue, ok := g.Genes[divKey]
		if !ok || strings.TrimSpace(divValue) == "" {
			res.MissingKeySkipped++
			warn.printf("dedup: genome %s missing diversity key %q, skipping", g.ID, divKey)
			continue
		}

		key := g.CanonicalKey(mode)
		if seen[key] {
			res.DuplicatesDropped++
			continue
		}

		divNorm := strings.ToLower(strings.TrimSpace(divValue))
		if diversityCap > 0 && divCounts[divNorm] >= diversityCap {
			res.CapRejected++
			continue
		}

		seen[key] = true
		divCounts[divNorm]++
		g.ID = fmt.Sprintf("G%d", len(res.Survivors)+1)
		res.Survivors = append(res.Survivors, g)
	}

	return res
}
