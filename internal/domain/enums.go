package domain

// SegmentationMode selects which set of gene dimensions a discovery run uses.
type SegmentationMode string

const (
	// ModeBusiness targets business buyers (companies, roles, budgets).
	ModeBusiness SegmentationMode = "b2b"
	// ModeConsumer targets end consumers (life stages, identities, habits).
	ModeConsumer SegmentationMode = "b2c"
)

type OfferingType string

const (
	OfferingProduct     OfferingType = "product"
	OfferingService     OfferingType = "service"
	OfferingPlatform    OfferingType = "platform"
	OfferingMarketplace OfferingType = "marketplace"
)

type CompanyStage string

const (
	StageIdea     CompanyStage = "idea"
	StagePreRev   CompanyStage = "pre_revenue"
	StageEarlyRev CompanyStage = "early_revenue"
	StageScaling  CompanyStage = "scaling"
)

type GTMConstraint string

const (
	ConstraintBootstrap GTMConstraint = "bootstrap"
	ConstraintFunded    GTMConstraint = "funded"
	ConstraintSideBuild GTMConstraint = "side_build"
)

type SalesMotion string

const (
	MotionSelfServe   SalesMotion = "self_serve"
	MotionInsideSales SalesMotion = "inside_sales"
	MotionFieldSales  SalesMotion = "field_sales"
	MotionChannel     SalesMotion = "channel"
)

// ValidSegmentationModes is the canonical set of accepted mode strings.
var ValidSegmentationModes = map[string]bool{
	"b2b": true, "b2c": true,
}

// ValidOfferingTypes is the canonical set of accepted offering type strings.
var ValidOfferingTypes = map[string]bool{
	"product": true, "service": true, "platform": true, "marketplace": true,
}

// ValidCompanyStages is the canonical set of accepted stage strings.
var ValidCompanyStages = map[string]bool{
	"idea": true, "pre_revenue": true, "early_revenue": true, "scaling": true,
}

// ValidGTMConstraints is the canonical set of accepted go-to-market constraint strings.
var ValidGTMConstraints = map[string]bool{
	"bootstrap": true, "funded": true, "side_build": true,
}

// ValidSalesMotions is the canonical set of accepted sales motion strings.
var ValidSalesMotions = map[string]bool{
	"self_serve": true, "inside_sales": true, "field_sales": true, "channel": true,
}
