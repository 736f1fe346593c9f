package discovery

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/beachhead/internal/domain"
	"github.com/alexanderramin/beachhead/internal/llm"
	"github.com/alexanderramin/beachhead/internal/resilience"
)

// FitnessScorer rates every genome on the 8 weighted criteria.
type FitnessScorer interface {
	// Score mutates the given genomes in place (fitness and narrative
	// only) and returns them stably sorted by descending total. All
	// batches must succeed.
	Score(ctx context.Context, dctx domain.DiscoveryContext, genomes []*domain.Genome, batchSize int) error
}

type fitnessScorer struct {
	client llm.Client
	guard  resilience.Guard
	warn   WarnFunc
}

// NewFitnessScorer creates a FitnessScorer backed by the oracle.
func NewFitnessScorer(client llm.Client, guard resilience.Guard, warn WarnFunc) FitnessScorer {
	return &fitnessScorer{client: client, guard: guard, warn: warn}
}

// scoredGenome is one entry of the JSON array the oracle outputs per batch.
type scoredGenome struct {
	ID        string         `json:"id"`
	Scores    domain.Fitness `json:"scores"`
	Narrative string         `json:"narrative"`
}

func (s *fitnessScorer) Score(ctx context.Context, dctx domain.DiscoveryContext, genomes []*domain.Genome, batchSize int) error {
	if batchSize <= 0 {
		batchSize = DefaultConfig().ScoreBatchSize
	}

	grp, grpCtx := errgroup.WithContext(ctx)
	for start := 0; start < len(genomes); start += batchSize {
		end := start + batchSize
		if end > len(genomes) {
			end = len(genomes)
		}
		batch := genomes[start:end]

		grp.Go(func() error {
			return s.scoreBatch(grpCtx, dctx, batch)
		})
	}
	if err := grp.Wait(); err != nil {
		return fmt.Errorf("scoring population: %w", err)
	}

	SortByFitness(genomes)
	return nil
}

// scoreBatch scores one disjoint slice of the population. Each concurrent
// batch owns its slice outright, so no locking is needed.
func (s *fitnessScorer) scoreBatch(ctx context.Context, dctx domain.DiscoveryContext, batch []*domain.Genome) error {
	prompt := buildScorePrompt(dctx, batch)

	scored, err := generateJSON[[]scoredGenome](ctx, s.client, s.guard, llm.GenerateRequest{
		Task:         llm.TaskScore,
		SystemPrompt: scoreSystemPrompt,
		UserPrompt:   prompt,
	}, nil)
	if err != nil {
		return err
	}

	byID := make(map[string]scoredGenome, len(scored))
	for _, sc := range scored {
		if sc.ID == "" {
			s.warn.printf("score: response entry missing genome id, skipping")
			continue
		}
		byID[sc.ID] = sc
	}

	for _, g := range batch {
		sc, ok := byID[g.ID]
		if !ok {
			// Missing from the response: keep the prior (zero) fitness
			// rather than dropping the genome.
			s.warn.printf("score: genome %s absent from batch response, keeping zero fitness", g.ID)
			continue
		}
		g.Fitness = sc.Scores
		g.Fitness.Clamp()
		if sc.Narrative != "" {
			g.Narrative = sc.Narrative
		}
	}
	return nil
}

// SortByFitness stably sorts genomes by descending total score; ties keep
// their prior relative order.
func SortByFitness(genomes []*domain.Genome) {
	sort.SliceStable(genomes, func(i, j int) bool {
		return genomes[i].Fitness.Total > genomes[j].Fitness.Total
	})
}
