package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/beachhead/internal/domain"
)

var modeOptions = []huh.Option[string]{
	huh.NewOption("Business buyers (B2B)", string(domain.ModeBusiness)),
	huh.NewOption("Consumers (B2C)", string(domain.ModeConsumer)),
}

var offeringOptions = []huh.Option[string]{
	huh.NewOption("Product", string(domain.OfferingProduct)),
	huh.NewOption("Service", string(domain.OfferingService)),
	huh.NewOption("Platform", string(domain.OfferingPlatform)),
	huh.NewOption("Marketplace", string(domain.OfferingMarketplace)),
}

var stageOptions = []huh.Option[string]{
	huh.NewOption("Idea", string(domain.StageIdea)),
	huh.NewOption("Pre-revenue", string(domain.StagePreRev)),
	huh.NewOption("Early revenue", string(domain.StageEarlyRev)),
	huh.NewOption("Scaling", string(domain.StageScaling)),
}

var constraintOptions = []huh.Option[string]{
	huh.NewOption("Bootstrapped", string(domain.ConstraintBootstrap)),
	huh.NewOption("Funded", string(domain.ConstraintFunded)),
	huh.NewOption("Side build", string(domain.ConstraintSideBuild)),
}

var motionOptions = []huh.Option[string]{
	huh.NewOption("Self-serve", string(domain.MotionSelfServe)),
	huh.NewOption("Inside sales", string(domain.MotionInsideSales)),
	huh.NewOption("Field sales", string(domain.MotionFieldSales)),
	huh.NewOption("Channel / partners", string(domain.MotionChannel)),
}

// discoverIntake holds form-bound string values before conversion into a
// DiscoveryContext.
type discoverIntake struct {
	Description string
	Offering    string
	Stage       string
	Constraint  string
	Motion      string
	Hypothesis  string
	Mode        string
}

// toContext converts the intake values into a validated DiscoveryContext.
func (in *discoverIntake) toContext() (domain.DiscoveryContext, error) {
	dctx := domain.DiscoveryContext{
		BusinessDescription: strings.TrimSpace(in.Description),
		Offering:            domain.OfferingType(in.Offering),
		Stage:               domain.CompanyStage(in.Stage),
		Constraint:          domain.GTMConstraint(in.Constraint),
		SalesMotion:         domain.SalesMotion(in.Motion),
		ExistingHypothesis:  strings.TrimSpace(in.Hypothesis),
		Mode:                domain.SegmentationMode(in.Mode),
	}
	if err := dctx.Validate(); err != nil {
		return domain.DiscoveryContext{}, err
	}
	return dctx, nil
}

// discoverForm builds the interactive intake form for a discovery run.
// Fields already set from flags keep their values as form defaults.
func discoverForm(in *discoverIntake) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What does the business do?").
				Description("One or two sentences. The more concrete, the better the segments.").
				Value(&in.Description).
				Validate(validateNonEmpty("a business description")),
			huh.NewSelect[string]().
				Title("Who buys?").
				Options(modeOptions...).
				Value(&in.Mode),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Offering type").
				Options(offeringOptions...).
				Value(&in.Offering),
			huh.NewSelect[string]().
				Title("Company stage").
				Options(stageOptions...).
				Value(&in.Stage),
			huh.NewSelect[string]().
				Title("Go-to-market constraint").
				Options(constraintOptions...).
				Value(&in.Constraint),
			huh.NewSelect[string]().
				Title("Sales motion").
				Options(motionOptions...).
				Value(&in.Motion),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Existing segment hypothesis (optional)").
				Placeholder("e.g. mid-market fintech CTOs").
				Value(&in.Hypothesis),
		),
	).WithTheme(beachheadHuhTheme()).WithShowHelp(false)
}

func validateNonEmpty(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("enter %s", what)
		}
		return nil
	}
}
