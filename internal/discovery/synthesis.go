package discovery

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/beachhead/internal/domain"
	"github.com/alexanderramin/beachhead/internal/llm"
	"github.com/alexanderramin/beachhead/internal/resilience"
)

const (
	synthesisTopCount    = 10
	synthesisBottomCount = 5

	minValidationSteps = 3
	maxValidationSteps = 5
	minBackups         = 2
	maxBackups         = 3
	minNeverList       = 2
	maxNeverList       = 3
	minInsights        = 3
	maxInsights        = 5
)

// Synthesizer turns the final ranked population into a recommendation.
type Synthesizer interface {
	// Synthesize asks the oracle for a beachhead pick, backups, a
	// never-list, and cross-cutting insights over the top and bottom of
	// the ranked population. The response references genomes by ID;
	// unknown IDs degrade to rank-based defaults rather than failing.
	Synthesize(ctx context.Context, dctx domain.DiscoveryContext, ranked []*domain.Genome) (*domain.SegmentSynthesis, error)
}

type synthesizer struct {
	client llm.Client
	guard  resilience.Guard
	warn   WarnFunc
}

// NewSynthesizer creates a Synthesizer backed by the oracle.
func NewSynthesizer(client llm.Client, guard resilience.Guard, warn WarnFunc) Synthesizer {
	return &synthesizer{client: client, guard: guard, warn: warn}
}

// synthesisResponse is the JSON structure the oracle outputs.
type synthesisResponse struct {
	BeachheadID    string   `json:"beachheadId"`
	Rationale      string   `json:"rationale"`
	ValidationPlan []string `json:"validationPlan"`
	BackupIDs      []string `json:"backupIds"`
	NeverList      []struct {
		ID     string `json:"id"`
		Reason string `json:"reason"`
	} `json:"neverList"`
	StrategicInsights []string `json:"strategicInsights"`
}

func (s *synthesizer) Synthesize(ctx context.Context, dctx domain.DiscoveryContext, ranked []*domain.Genome) (*domain.SegmentSynthesis, error) {
	if len(ranked) == 0 {
		return nil, fmt.Errorf("synthesizing: ranked population is empty")
	}

	top, bottom := synthesisWindow(ranked)
	prompt := buildSynthesisPrompt(dctx, top, bottom)

	resp, err := generateJSON[synthesisResponse](ctx, s.client, s.guard, llm.GenerateRequest{
		Task:         llm.TaskSynthesis,
		SystemPrompt: synthesisSystemPrompt,
		UserPrompt:   prompt,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("synthesizing recommendation: %w", err)
	}

	return s.resolve(resp, ranked), nil
}

// synthesisWindow picks the top 10 and bottom 5 of the ranked population,
// without overlap when the population is small.
func synthesisWindow(ranked []*domain.Genome) (top, bottom []*domain.Genome) {
	topN := synthesisTopCount
	if topN > len(ranked) {
		topN = len(ranked)
	}
	top = ranked[:topN]

	bottomN := synthesisBottomCount
	if bottomN > len(ranked)-topN {
		bottomN = len(ranked) - topN
	}
	if bottomN > 0 {
		bottom = ranked[len(ranked)-bottomN:]
	}
	return top, bottom
}

// resolve maps the oracle's ID references back onto the engine's own
// population and applies rank-based defaults wherever a reference is absent.
func (s *synthesizer) resolve(resp synthesisResponse, ranked []*domain.Genome) *domain.SegmentSynthesis {
	byID := make(map[string]*domain.Genome, len(ranked))
	for _, g := range ranked {
		byID[g.ID] = g
	}

	beachhead := byID[resp.BeachheadID]
	if beachhead == nil {
		if resp.BeachheadID != "" {
			s.warn.printf("synthesis: unknown beachhead id %q, defaulting to rank 1", resp.BeachheadID)
		}
		beachhead = ranked[0]
	}

	backups := s.resolveBackups(resp.BackupIDs, byID, ranked, beachhead)
	neverList := s.resolveNeverList(resp.NeverList, byID, ranked, beachhead)

	return &domain.SegmentSynthesis{
		Beachhead: domain.Beachhead{
			Genome:         beachhead,
			Rationale:      coalesce(resp.Rationale, "Highest total fitness across all scored criteria."),
			ValidationPlan: boundedSteps(resp.ValidationPlan, defaultValidationPlan),
		},
		Backups:           backups,
		NeverList:         neverList,
		StrategicInsights: boundedInsights(resp.StrategicInsights, ranked),
	}
}

func (s *synthesizer) resolveBackups(ids []string, byID map[string]*domain.Genome, ranked []*domain.Genome, beachhead *domain.Genome) []*domain.Genome {
	var backups []*domain.Genome
	unusable := 0
	seen := map[string]bool{beachhead.ID: true}
	for _, id := range ids {
		g := byID[id]
		if g == nil {
			unusable++
			s.warn.printf("synthesis: unknown backup id %q, ignoring", id)
			continue
		}
		if seen[g.ID] {
			unusable++
			continue
		}
		seen[g.ID] = true
		backups = append(backups, g)
		if len(backups) == maxBackups {
			break
		}
	}

	// Unusable references are replaced from the next-best ranks, filling
	// out the full backup set; with no references at all, two suffice.
	target := minBackups
	if unusable > 0 {
		target = maxBackups
	}
	for _, g := range ranked {
		if len(backups) >= target {
			break
		}
		if seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		backups = append(backups, g)
	}
	return backups
}

func (s *synthesizer) resolveNeverList(entries []struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}, byID map[string]*domain.Genome, ranked []*domain.Genome, beachhead *domain.Genome) []domain.Exclusion {
	var never []domain.Exclusion
	seen := map[string]bool{beachhead.ID: true}
	for _, e := range entries {
		g := byID[e.ID]
		if g == nil {
			s.warn.printf("synthesis: unknown never-list id %q, ignoring", e.ID)
			continue
		}
		if seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		never = append(never, domain.Exclusion{
			Genome: g,
			Reason: coalesce(e.Reason, "Flagged for exclusion by the synthesis pass."),
		})
		if len(never) == maxNeverList {
			break
		}
	}

	// Default: the lowest-ranked genomes.
	for i := len(ranked) - 1; i >= 0 && len(never) < minNeverList; i-- {
		g := ranked[i]
		if seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		never = append(never, domain.Exclusion{
			Genome: g,
			Reason: "Scored lowest across the weighted criteria.",
		})
	}
	return never
}

var defaultValidationPlan = []string{
	"Interview 10 people matching the segment profile about the core pain.",
	"Run a landing-page test targeted at this segment and measure sign-up intent.",
	"Close 3 paid pilots inside the segment before widening scope.",
}

// boundedSteps trims empty entries, truncates to the maximum, and pads from
// the defaults up to the minimum.
func boundedSteps(steps []string, defaults []string) []string {
	out := make([]string, 0, maxValidationSteps)
	for _, s := range steps {
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
		if len(out) == maxValidationSteps {
			return out
		}
	}
	for _, d := range defaults {
		if len(out) >= minValidationSteps {
			break
		}
		out = append(out, d)
	}
	return out
}

// boundedInsights trims and truncates oracle insights, padding from the
// ranked data when the oracle under-delivers.
func boundedInsights(insights []string, ranked []*domain.Genome) []string {
	out := make([]string, 0, maxInsights)
	for _, s := range insights {
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
		if len(out) == maxInsights {
			return out
		}
	}

	if len(out) < minInsights && len(ranked) > 0 {
		top := ranked[0]
		out = append(out, fmt.Sprintf("The top-ranked segment (%s) totals %d of 40 across the eight criteria.",
			top.ID, top.Fitness.Total))
	}
	if len(out) < minInsights && len(ranked) > 1 {
		spread := ranked[0].Fitness.Total - ranked[len(ranked)-1].Fitness.Total
		out = append(out, fmt.Sprintf("Score spread between best and worst segment is %d points.", spread))
	}
	if len(out) < minInsights {
		out = append(out, "Validate the beachhead before investing in any backup segment.")
	}
	return out
}

func coalesce(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
