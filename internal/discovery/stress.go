package discovery

import (
	"context"
	"sync"

	"github.com/alexanderramin/beachhead/internal/domain"
	"github.com/alexanderramin/beachhead/internal/llm"
	"github.com/alexanderramin/beachhead/internal/resilience"
)

// StressTester adversarially re-scores the top-ranked genomes.
type StressTester interface {
	// StressTest challenges the scores of the top topK genomes in
	// concurrent batches and returns the population re-ranked: the
	// stress-tested subset re-sorted by revised totals, the untested
	// remainder appended after it in prior order.
	//
	// Unlike every other stage, this one soft-fails per batch: a batch
	// whose call fails after exhausted retries passes its genomes
	// through unmodified. Stress-testing is an enhancement, not a
	// correctness requirement.
	StressTest(ctx context.Context, dctx domain.DiscoveryContext, ranked []*domain.Genome, topK, batches int) []*domain.Genome
}

type stressTester struct {
	client llm.Client
	guard  resilience.Guard
	warn   WarnFunc
}

// NewStressTester creates a StressTester backed by the oracle.
func NewStressTester(client llm.Client, guard resilience.Guard, warn WarnFunc) StressTester {
	return &stressTester{client: client, guard: guard, warn: warn}
}

// stressRevision is one entry of the JSON array the oracle outputs per batch.
type stressRevision struct {
	ID         string         `json:"id"`
	Scores     domain.Fitness `json:"scores"`
	StressNote string         `json:"stressNote"`
}

func (s *stressTester) StressTest(ctx context.Context, dctx domain.DiscoveryContext, ranked []*domain.Genome, topK, batches int) []*domain.Genome {
	if topK > len(ranked) {
		topK = len(ranked)
	}
	if topK <= 0 {
		return ranked
	}
	if batches <= 0 {
		batches = DefaultConfig().StressBatches
	}
	if batches > topK {
		batches = topK
	}

	tested := ranked[:topK]
	remainder := ranked[topK:]

	counts := splitEvenly(topK, batches)
	var wg sync.WaitGroup
	start := 0
	for i := 0; i < batches; i++ {
		batch := tested[start : start+counts[i]]
		start += counts[i]

		wg.Add(1)
		go func(batchNum int, batch []*domain.Genome) {
			defer wg.Done()
			if err := s.stressBatch(ctx, dctx, batch); err != nil {
				// Degrade in place: this batch's genomes keep their
				// pre-stress-test fitness and narrative untouched.
				s.warn.printf("stress test batch %d failed, passing %d genomes through unmodified: %v",
					batchNum, len(batch), err)
			}
		}(i+1, batch)
	}
	wg.Wait()

	// Re-sort only the tested subset; the untested remainder keeps its
	// prior rank.
	SortByFitness(tested)

	out := make([]*domain.Genome, 0, len(ranked))
	out = append(out, tested...)
	out = append(out, remainder...)
	return out
}

func (s *stressTester) stressBatch(ctx context.Context, dctx domain.DiscoveryContext, batch []*domain.Genome) error {
	prompt := buildStressPrompt(dctx, batch)

	revisions, err := generateJSON[[]stressRevision](ctx, s.client, s.guard, llm.GenerateRequest{
		Task:         llm.TaskStress,
		SystemPrompt: stressSystemPrompt,
		UserPrompt:   prompt,
	}, nil)
	if err != nil {
		return err
	}

	byID := make(map[string]stressRevision, len(revisions))
	for _, rev := range revisions {
		if rev.ID == "" {
			s.warn.printf("stress: response entry missing genome id, skipping")
			continue
		}
		byID[rev.ID] = rev
	}

	for _, g := range batch {
		rev, ok := byID[g.ID]
		if !ok {
			continue
		}
		g.Fitness = rev.Scores
		g.Fitness.Clamp()
		if rev.StressNote != "" {
			g.StressTestNotes = rev.StressNote
		}
	}
	return nil
}
