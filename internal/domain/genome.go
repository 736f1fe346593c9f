package domain

import "strings"

// Fitness holds the 8 sub-scores (each 1-5) and their locally recomputed sum.
type Fitness struct {
	PainIntensity     int `json:"painIntensity"`
	DecisionAccess    int `json:"decisionAccess"`
	PurchasePower     int `json:"purchasePower"`
	CompetitionGap    int `json:"competitionGap"` // 5 = least crowded
	ProductFit        int `json:"productFit"`
	Urgency           int `json:"urgency"`
	ScalePotential    int `json:"scalePotential"`
	GTMEfficiency     int `json:"gtmEfficiency"`
	Total             int `json:"total"`
}

// SubScores returns pointers to the 8 sub-score fields in presentation order.
func (f *Fitness) SubScores() []*int {
	return []*int{
		&f.PainIntensity, &f.DecisionAccess, &f.PurchasePower, &f.CompetitionGap,
		&f.ProductFit, &f.Urgency, &f.ScalePotential, &f.GTMEfficiency,
	}
}

// SubScoreNames returns the sub-score labels in the same order as SubScores.
func SubScoreNames() []string {
	return []string{
		"Pain Intensity", "Decision Access", "Purchase Power", "Competition Gap",
		"Product Fit", "Urgency", "Scale Potential", "GTM Efficiency",
	}
}

// Clamp forces every sub-score into [1,5] and recomputes Total. The total is
// always derived locally, never trusted from an oracle response.
func (f *Fitness) Clamp() {
	total := 0
	for _, s := range f.SubScores() {
		if *s < 1 {
			*s = 1
		}
		if *s > 5 {
			*s = 5
		}
		total += *s
	}
	f.Total = total
}

// Scored reports whether the genome has received any fitness at all.
// A zero-value Fitness means the scorer's batch response omitted it.
func (f Fitness) Scored() bool {
	return f.Total > 0
}

// Genome is one candidate customer segment: exactly one allele per library
// dimension, plus fitness and narrative filled in by later pipeline stages.
type Genome struct {
	ID              string            `json:"id"`
	Genes           map[string]string `json:"genes"`
	Fitness         Fitness           `json:"fitness"`
	Narrative       string            `json:"narrative,omitempty"`
	StressTestNotes string            `json:"stressTestNotes,omitempty"`
}

// CanonicalKey fingerprints the gene assignment by joining values in the
// fixed mode-specific dimension order. Two genomes with the same assignment
// produce the same key regardless of map insertion order or which sampling
// batch emitted them. Values are case-folded and trimmed so the oracle's
// capitalization drift does not defeat dedup.
func (g Genome) CanonicalKey(mode SegmentationMode) string {
	order := DimensionOrder(mode)
	parts := make([]string, 0, len(order))
	for _, dim := range order {
		parts = append(parts, strings.ToLower(strings.TrimSpace(g.Genes[dim])))
	}
	return strings.Join(parts, "|")
}
