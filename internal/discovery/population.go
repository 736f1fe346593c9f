package discovery

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/beachhead/internal/domain"
	"github.com/alexanderramin/beachhead/internal/llm"
	"github.com/alexanderramin/beachhead/internal/resilience"
)

// samplingBias steers one population batch toward a region of the search
// space. Uniform sampling over an 8-dimension combinatorial space would
// rarely surface the library's counter-intuitive alleles, so the target
// count is split across four differently-biased batches instead.
type samplingBias struct {
	Name        string
	Instruction string
}

var samplingBiases = []samplingBias{
	{
		Name: "obvious",
		Instruction: "Pick high-confidence, obvious combinations: the segments any " +
			"competent advisor would name first for this business.",
	},
	{
		Name: "niche",
		Instruction: "Pick promising niche combinations: plausible but narrow segments " +
			"most advisors would overlook, with at least one non-mainstream allele each.",
	},
	{
		Name: "adversarial",
		Instruction: "Pick adversarial edge cases: combinations that look wrong at first " +
			"glance but could work for a contrarian reason. Prefer the counter-intuitive " +
			"alleles. State the contrarian reason in the narrative.",
	},
	{
		Name: "maxdiversity",
		Instruction: "Maximize diversity: spread choices across as many different alleles " +
			"as possible, reusing no allele twice within this batch on any dimension " +
			"unless unavoidable.",
	},
}

// PopulationGenerator samples candidate segments from a gene library.
type PopulationGenerator interface {
	// Generate samples target genomes via concurrent biased batches.
	// All batches must succeed; no partial population is accepted.
	Generate(ctx context.Context, dctx domain.DiscoveryContext, lib *domain.GeneLibrary, target int) ([]*domain.Genome, error)
}

type populationGenerator struct {
	client llm.Client
	guard  resilience.Guard
	warn   WarnFunc
}

// NewPopulationGenerator creates a PopulationGenerator backed by the oracle.
func NewPopulationGenerator(client llm.Client, guard resilience.Guard, warn WarnFunc) PopulationGenerator {
	return &populationGenerator{client: client, guard: guard, warn: warn}
}

// sampledGenome is one entry of the JSON array the oracle outputs per batch.
type sampledGenome struct {
	Genes     map[string]string `json:"genes"`
	Narrative string            `json:"narrative"`
}

func (g *populationGenerator) Generate(ctx context.Context, dctx domain.DiscoveryContext, lib *domain.GeneLibrary, target int) ([]*domain.Genome, error) {
	if target < len(samplingBiases) {
		target = len(samplingBiases)
	}

	counts := splitEvenly(target, len(samplingBiases))
	results := make([][]sampledGenome, len(samplingBiases))

	grp, grpCtx := errgroup.WithContext(ctx)
	for i, bias := range samplingBiases {
		grp.Go(func() error {
			batch, err := g.sampleBatch(grpCtx, dctx, lib, bias, counts[i])
			if err != nil {
				return fmt.Errorf("%s batch: %w", bias.Name, err)
			}
			results[i] = batch
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("generating population: %w", err)
	}

	// Flatten in fixed bias order so provisional IDs are deterministic
	// regardless of batch completion order.
	var genomes []*domain.Genome
	seq := 0
	for _, batch := range results {
		for _, s := range batch {
			seq++
			genome := g.normalize(s, lib, seq)
			if genome != nil {
				genomes = append(genomes, genome)
			}
		}
	}

	if len(genomes) == 0 {
		return nil, fmt.Errorf("generating population: all batches returned empty gene sets")
	}
	return genomes, nil
}

func (g *populationGenerator) sampleBatch(ctx context.Context, dctx domain.DiscoveryContext, lib *domain.GeneLibrary, bias samplingBias, count int) ([]sampledGenome, error) {
	prompt := buildPopulationPrompt(dctx, lib, bias, count)

	validator := func(batch []sampledGenome) error {
		if len(batch) == 0 {
			return fmt.Errorf("batch contains no genomes")
		}
		return nil
	}

	return generateJSON(ctx, g.client, g.guard, llm.GenerateRequest{
		Task:         llm.TaskPopulation,
		SystemPrompt: populationSystemPrompt,
		UserPrompt:   prompt,
	}, validator)
}

// normalize turns a sampled entry into a Genome whose gene key set equals
// the library's dimension set: unknown keys are dropped, missing dimensions
// are filled from the library's first allele with a warning. Entries with
// no usable genes at all are discarded.
func (g *populationGenerator) normalize(s sampledGenome, lib *domain.GeneLibrary, seq int) *domain.Genome {
	if len(s.Genes) == 0 {
		g.warn.printf("population: dropping genome with empty gene set")
		return nil
	}

	genes := make(map[string]string, domain.DimensionCount)
	for _, dim := range domain.DimensionOrder(lib.Mode) {
		if v, ok := s.Genes[dim]; ok && v != "" {
			genes[dim] = v
			continue
		}
		fallback := lib.Dimensions[dim][0]
		g.warn.printf("population: genome missing dimension %q, defaulting to %q", dim, fallback)
		genes[dim] = fallback
	}

	return &domain.Genome{
		ID:        fmt.Sprintf("P%d", seq),
		Genes:     genes,
		Narrative: s.Narrative,
	}
}

// splitEvenly splits total into parts batches, remainder going to the
// earliest batches.
func splitEvenly(total, parts int) []int {
	counts := make([]int, parts)
	base := total / parts
	rem := total % parts
	for i := range counts {
		counts[i] = base
		if i < rem {
			counts[i]++
		}
	}
	return counts
}
