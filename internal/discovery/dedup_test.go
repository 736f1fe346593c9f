package discovery

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/beachhead/internal/domain"
)

func TestDeduplicate_ExactDuplicates(t *testing.T) {
	// 5 genomes with 2 exact-duplicate pairs: 3 distinct assignments survive.
	genomes := []*domain.Genome{
		testGenome("P1", map[string]string{"industry": "fintech"}),
		testGenome("P2", map[string]string{"industry": "fintech"}),
		testGenome("P3", map[string]string{"industry": "legal"}),
		testGenome("P4", map[string]string{"industry": "legal"}),
		testGenome("P5", map[string]string{"industry": "health"}),
	}

	res := Deduplicate(genomes, domain.ModeBusiness, 10, noWarn)
	assert.Len(t, res.Survivors, 3)
	assert.Equal(t, 2, res.DuplicatesDropped)
}

func TestDeduplicate_CaseInsensitive(t *testing.T) {
	genomes := []*domain.Genome{
		testGenome("P1", map[string]string{"industry": "Fintech"}),
		testGenome("P2", map[string]string{"industry": "fintech "}),
	}
	res := Deduplicate(genomes, domain.ModeBusiness, 10, noWarn)
	assert.Len(t, res.Survivors, 1)
}

func TestDeduplicate_DiversityCap(t *testing.T) {
	// 10 otherwise-unique genomes sharing one buyer_role: at most 3 survive.
	var genomes []*domain.Genome
	for i := 0; i < 10; i++ {
		genomes = append(genomes, testGenome(fmt.Sprintf("P%d", i+1), map[string]string{
			"industry":   fmt.Sprintf("industry-%d", i),
			"buyer_role": "CTO",
		}))
	}

	res := Deduplicate(genomes, domain.ModeBusiness, 3, noWarn)
	assert.Len(t, res.Survivors, 3)
	assert.Equal(t, 7, res.CapRejected)
}

func TestDeduplicate_CapCountsNormalizedValues(t *testing.T) {
	genomes := []*domain.Genome{
		testGenome("P1", map[string]string{"industry": "a", "buyer_role": "CTO"}),
		testGenome("P2", map[string]string{"industry": "b", "buyer_role": "cto"}),
		testGenome("P3", map[string]string{"industry": "c", "buyer_role": "CTO "}),
	}
	res := Deduplicate(genomes, domain.ModeBusiness, 2, noWarn)
	assert.Len(t, res.Survivors, 2)
	assert.Equal(t, 1, res.CapRejected)
}

func TestDeduplicate_MissingDiversityKeySkipped(t *testing.T) {
	healthy := testGenome("P1", nil)
	broken := testGenome("P2", map[string]string{"industry": "other"})
	delete(broken.Genes, "buyer_role")

	var warnings int
	warn := func(string, ...any) { warnings++ }

	res := Deduplicate([]*domain.Genome{healthy, broken}, domain.ModeBusiness, 3, warn)
	assert.Len(t, res.Survivors, 1)
	assert.Equal(t, 1, res.MissingKeySkipped)
	assert.Equal(t, 1, warnings)
}

func TestDeduplicate_RenumbersSurvivors(t *testing.T) {
	genomes := []*domain.Genome{
		testGenome("P7", map[string]string{"industry": "a"}),
		testGenome("P3", map[string]string{"industry": "a"}), // duplicate of P7
		testGenome("P9", map[string]string{"industry": "b"}),
	}
	res := Deduplicate(genomes, domain.ModeBusiness, 10, noWarn)
	require.Len(t, res.Survivors, 2)
	assert.Equal(t, "G1", res.Survivors[0].ID)
	assert.Equal(t, "G2", res.Survivors[1].ID)
}

func TestDeduplicate_BatchOrderIrrelevantForKeys(t *testing.T) {
	// Same assignment built with different insertion orders hashes identically.
	a := &domain.Genome{ID: "P1", Genes: map[string]string{}}
	order := domain.DimensionOrder(domain.ModeBusiness)
	for _, dim := range order {
		a.Genes[dim] = "x-" + dim
	}
	b := &domain.Genome{ID: "P2", Genes: map[string]string{}}
	for i := len(order) - 1; i >= 0; i-- {
		b.Genes[order[i]] = "x-" + order[i]
	}

	res := Deduplicate([]*domain.Genome{a, b}, domain.ModeBusiness, 10, noWarn)
	assert.Len(t, res.Survivors, 1)
	assert.Equal(t, 1, res.DuplicatesDropped)
}
