package discovery

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/beachhead/internal/domain"
	"github.com/alexanderramin/beachhead/internal/llm"
	"github.com/alexanderramin/beachhead/internal/resilience"
)

// Phase names one stage of the discovery state machine.
type Phase string

const (
	PhaseInit                 Phase = "init"
	PhaseGeneratingLibrary    Phase = "generating_library"
	PhaseGeneratingPopulation Phase = "generating_population"
	PhaseDeduplicating        Phase = "deduplicating"
	PhaseScoring              Phase = "scoring"
	PhaseStressTesting        Phase = "stress_testing"
	PhaseSynthesizing         Phase = "synthesizing"
	PhaseComplete             Phase = "complete"
	PhaseFailed               Phase = "failed"
)

// ProgressFunc receives coarse-grained progress at fixed phase boundaries.
// It must be safe to call from concurrent contexts; no data flows back into
// the pipeline through it.
type ProgressFunc func(label string, percent int)

// DiscoveryResult is the full outcome of one discovery run.
type DiscoveryResult struct {
	RunID     string                   `json:"runId"`
	Context   domain.DiscoveryContext  `json:"context"`
	Library   *domain.GeneLibrary      `json:"geneLibrary"`
	Genomes   []*domain.Genome         `json:"genomes"` // final ranked order
	Synthesis *domain.SegmentSynthesis `json:"synthesis"`

	RawPopulation int   `json:"rawPopulation"`
	Survivors     int   `json:"survivors"`
	ElapsedMs     int64 `json:"elapsedMs"`
}

// Engine sequences the discovery pipeline: library → population → dedup →
// score → stress test → synthesis. Phases run strictly sequentially; the
// concurrency lives inside each phase.
type Engine struct {
	cfg  Config
	warn WarnFunc

	library    LibraryGenerator
	population PopulationGenerator
	scorer     FitnessScorer
	stress     StressTester
	synth      Synthesizer
}

// NewEngine wires a discovery engine onto an oracle client. Each phase gets
// its own resilience guard derived from the per-task timeout config.
func NewEngine(client llm.Client, llmCfg llm.Config, cfg Config, warn WarnFunc) *Engine {
	if warn == nil {
		warn = stderrWarn
	}
	return &Engine{
		cfg:        cfg,
		warn:       warn,
		library:    NewLibraryGenerator(client, guardFor(llmCfg, llm.TaskLibrary), cfg),
		population: NewPopulationGenerator(client, guardFor(llmCfg, llm.TaskPopulation), warn),
		scorer:     NewFitnessScorer(client, guardFor(llmCfg, llm.TaskScore), warn),
		stress:     NewStressTester(client, guardFor(llmCfg, llm.TaskStress), warn),
		synth:      NewSynthesizer(client, guardFor(llmCfg, llm.TaskSynthesis), warn),
	}
}

func guardFor(llmCfg llm.Config, task llm.TaskType) resilience.Guard {
	return resilience.NewGuard(
		time.Duration(llmCfg.TaskTimeout(task))*time.Millisecond,
		llmCfg.MaxRetries,
		time.Duration(llmCfg.BaseDelayMs)*time.Millisecond,
	)
}

// RunDiscovery executes the full pipeline. Discovery is all-or-nothing: a
// fatal failure in any stage except stress testing rejects the whole run
// with no partial output. Stress-test failures degrade in place.
func (e *Engine) RunDiscovery(ctx context.Context, dctx domain.DiscoveryContext, onProgress ProgressFunc) (*DiscoveryResult, error) {
	if err := dctx.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", PhaseInit, err)
	}

	report := func(label string, pct int) {
		if onProgress != nil {
			onProgress(label, pct)
		}
	}
	start := time.Now()

	report("Generating gene library", 10)
	lib, err := e.library.Generate(ctx, dctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", PhaseGeneratingLibrary, err)
	}

	report("Generating population", 30)
	raw, err := e.population.Generate(ctx, dctx, lib, e.cfg.TargetPopulation)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", PhaseGeneratingPopulation, err)
	}

	dedup := Deduplicate(raw, dctx.Mode, e.cfg.DiversityCap, e.warn)
	if len(dedup.Survivors) == 0 {
		return nil, fmt.Errorf("%s: no genomes survived deduplication", PhaseDeduplicating)
	}
	population := dedup.Survivors

	report(fmt.Sprintf("Scoring %d segments", len(population)), 50)
	if err := e.scorer.Score(ctx, dctx, population, e.cfg.ScoreBatchSize); err != nil {
		return nil, fmt.Errorf("%s: %w", PhaseScoring, err)
	}

	report("Stress testing top segments", 70)
	population = e.stress.StressTest(ctx, dctx, population, e.cfg.StressTopK, e.cfg.StressBatches)

	report("Synthesizing recommendation", 90)
	synthesis, err := e.synth.Synthesize(ctx, dctx, population)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", PhaseSynthesizing, err)
	}

	report("Complete", 100)
	return &DiscoveryResult{
		RunID:         uuid.NewString(),
		Context:       dctx,
		Library:       lib,
		Genomes:       population,
		Synthesis:     synthesis,
		RawPopulation: len(raw),
		Survivors:     len(population),
		ElapsedMs:     time.Since(start).Milliseconds(),
	}, nil
}
