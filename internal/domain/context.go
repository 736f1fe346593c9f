package domain

import "fmt"

// DiscoveryContext is the caller-supplied description of the business under
// analysis plus its classification fields. The engine validates presence
// only; semantic correctness is the caller's problem.
type DiscoveryContext struct {
	BusinessDescription string           `json:"businessDescription"`
	Offering            OfferingType     `json:"offering"`
	Stage               CompanyStage     `json:"stage"`
	Constraint          GTMConstraint    `json:"constraint"`
	SalesMotion         SalesMotion      `json:"salesMotion"`
	ExistingHypothesis  string           `json:"existingHypothesis,omitempty"`
	Mode                SegmentationMode `json:"mode"`
}

// Validate checks that all required fields are present and that the
// enumerated fields carry known values.
func (c DiscoveryContext) Validate() error {
	if c.BusinessDescription == "" {
		return fmt.Errorf("business description is required")
	}
	if !ValidOfferingTypes[string(c.Offering)] {
		return fmt.Errorf("unknown offering type %q", c.Offering)
	}
	if !ValidCompanyStages[string(c.Stage)] {
		return fmt.Errorf("unknown company stage %q", c.Stage)
	}
	if !ValidGTMConstraints[string(c.Constraint)] {
		return fmt.Errorf("unknown go-to-market constraint %q", c.Constraint)
	}
	if !ValidSalesMotions[string(c.SalesMotion)] {
		return fmt.Errorf("unknown sales motion %q", c.SalesMotion)
	}
	if !ValidSegmentationModes[string(c.Mode)] {
		return fmt.Errorf("unknown segmentation mode %q", c.Mode)
	}
	return nil
}
