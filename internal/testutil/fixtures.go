package testutil

import (
	"fmt"

	"github.com/alexanderramin/beachhead/internal/discovery"
	"github.com/alexanderramin/beachhead/internal/domain"
)

// SampleContext returns a valid business-mode discovery context.
func SampleContext() domain.DiscoveryContext {
	return domain.DiscoveryContext{
		BusinessDescription: "An invoicing tool for freelance designers",
		Offering:            domain.OfferingProduct,
		Stage:               domain.StagePreRev,
		Constraint:          domain.ConstraintBootstrap,
		SalesMotion:         domain.MotionSelfServe,
		Mode:                domain.ModeBusiness,
	}
}

// SampleGenome returns a fully-assigned, fully-scored business-mode genome.
func SampleGenome(id string, total int) *domain.Genome {
	genes := map[string]string{}
	for _, dim := range domain.DimensionOrder(domain.ModeBusiness) {
		genes[dim] = dim + "-value"
	}
	sub := total / 8
	f := domain.Fitness{}
	for _, s := range f.SubScores() {
		*s = sub
	}
	f.Total = total
	return &domain.Genome{
		ID:        id,
		Genes:     genes,
		Fitness:   f,
		Narrative: "sample segment " + id,
	}
}

// SampleResult returns a complete discovery result suitable for persistence
// and formatting tests.
func SampleResult(runID string) *discovery.DiscoveryResult {
	var genomes []*domain.Genome
	for i := 0; i < 5; i++ {
		genomes = append(genomes, SampleGenome(fmt.Sprintf("G%d", i+1), 40-8*i))
	}

	lib := &domain.GeneLibrary{Mode: domain.ModeBusiness, Dimensions: map[string][]string{}}
	for _, dim := range domain.DimensionOrder(domain.ModeBusiness) {
		lib.Dimensions[dim] = []string{dim + "-value", dim + "-alt"}
	}

	return &discovery.DiscoveryResult{
		RunID:   runID,
		Context: SampleContext(),
		Library: lib,
		Genomes: genomes,
		Synthesis: &domain.SegmentSynthesis{
			Beachhead: domain.Beachhead{
				Genome:    genomes[0],
				Rationale: "Strongest pain with direct buyer access.",
				ValidationPlan: []string{
					"Interview 10 prospects.",
					"Run a landing-page test.",
					"Close 3 paid pilots.",
				},
			},
			Backups: []*domain.Genome{genomes[1], genomes[2]},
			NeverList: []domain.Exclusion{
				{Genome: genomes[3], Reason: "No budget authority."},
				{Genome: genomes[4], Reason: "Saturated channel."},
			},
			StrategicInsights: []string{
				"Pain concentrates in regulated industries.",
				"Self-serve fits the low end of the market.",
				"Channel access is the deciding factor.",
			},
		},
		RawPopulation: 20,
		Survivors:     5,
		ElapsedMs:     1234,
	}
}
