package domain

// Beachhead is the single top-recommended initial target segment.
type Beachhead struct {
	Genome         *Genome  `json:"genome"`
	Rationale      string   `json:"rationale"`
	ValidationPlan []string `json:"validationPlan"` // 3-5 steps
}

// Exclusion names a segment the business should not pursue, and why.
type Exclusion struct {
	Genome *Genome `json:"genome"`
	Reason string  `json:"reason"`
}

// SegmentSynthesis is the final recommendation assembled from the ranked
// population: one beachhead, backup segments, a never-list, and cross-cutting
// insights.
type SegmentSynthesis struct {
	Beachhead         Beachhead   `json:"beachhead"`
	Backups           []*Genome   `json:"backupSegments"` // 2-3 entries
	NeverList         []Exclusion `json:"neverList"`      // 2-3 entries
	StrategicInsights []string    `json:"strategicInsights"` // 3-5 entries
}
