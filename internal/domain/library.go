package domain

import "fmt"

// DimensionCount is the fixed number of gene dimensions in every library.
const DimensionCount = 8

// businessDimensions is the canonical dimension order for business-buyer
// segmentation. Canonical genome keys depend on this exact order; never
// reorder existing entries.
var businessDimensions = []string{
	"industry",
	"company_size",
	"buyer_role",
	"pain_profile",
	"budget_authority",
	"tech_adoption",
	"buying_trigger",
	"watering_hole",
}

// consumerDimensions is the canonical dimension order for end-consumer
// segmentation.
var consumerDimensions = []string{
	"life_stage",
	"occupation",
	"income_band",
	"pain_profile",
	"values_identity",
	"channel_habitat",
	"purchase_trigger",
	"daily_context",
}

// DimensionOrder returns the fixed, mode-specific dimension order used for
// canonical genome keys and prompt construction.
func DimensionOrder(mode SegmentationMode) []string {
	if mode == ModeConsumer {
		return consumerDimensions
	}
	return businessDimensions
}

// DiversityKey returns the dimension whose values are capped among dedup
// survivors: the primary decision-maker axis for business buyers, the
// segment-identity axis for consumers.
func DiversityKey(mode SegmentationMode) string {
	if mode == ModeConsumer {
		return "life_stage"
	}
	return "buyer_role"
}

// GeneLibrary is the enumerated search space for one discovery run: each
// dimension maps to an ordered list of distinct candidate values (alleles).
// Immutable once generated.
type GeneLibrary struct {
	Mode       SegmentationMode    `json:"mode"`
	Dimensions map[string][]string `json:"dimensions"`
}

// Validate checks that the library holds exactly the 8 mode-specific
// dimensions, each with at least minAlleles distinct values.
func (l GeneLibrary) Validate(minAlleles int) error {
	order := DimensionOrder(l.Mode)
	if len(l.Dimensions) != DimensionCount {
		return fmt.Errorf("library has %d dimensions, want %d", len(l.Dimensions), DimensionCount)
	}
	for _, dim := range order {
		alleles, ok := l.Dimensions[dim]
		if !ok {
			return fmt.Errorf("library missing dimension %q", dim)
		}
		if len(alleles) < minAlleles {
			return fmt.Errorf("dimension %q has %d alleles, want at least %d", dim, len(alleles), minAlleles)
		}
		seen := make(map[string]bool, len(alleles))
		for _, a := range alleles {
			if a == "" {
				return fmt.Errorf("dimension %q contains an empty allele", dim)
			}
			if seen[a] {
				return fmt.Errorf("dimension %q contains duplicate allele %q", dim, a)
			}
			seen[a] = true
		}
	}
	return nil
}
