package discovery

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/beachhead/internal/domain"
)

const librarySystemPrompt = `You are a customer segmentation strategist. You design the search space
for discovering non-obvious beachhead customer segments.

You MUST output ONLY a JSON object with exactly this shape:
{
  "dimensions": {
    "<dimension_name>": ["value 1", "value 2", ...],
    ...
  }
}

Rules:
- Include EXACTLY the 8 dimension names given in the request, no others.
- Every value in a dimension must be distinct and non-empty.
- Roughly 70% of each dimension's values should be plausibly relevant to the
  business; the remaining 30% must be deliberately counter-intuitive or
  unexpected choices. The search needs those outliers available to ever
  surface a non-obvious segment. Do not label which values are which.
- Keep each value short: a noun phrase, not a sentence.

Output ONLY the JSON object. No markdown fences. No explanation text.`

func buildLibraryPrompt(dctx domain.DiscoveryContext, allelesPerDim int) string {
	var b strings.Builder

	b.WriteString("Business under analysis:\n")
	b.WriteString(dctx.BusinessDescription)
	b.WriteString("\n\n")
	writeContextFields(&b, dctx)

	fmt.Fprintf(&b, "\nBuild the segmentation search space. For each of these 8 dimensions, list about %d candidate values:\n", allelesPerDim)
	for _, dim := range domain.DimensionOrder(dctx.Mode) {
		b.WriteString("- ")
		b.WriteString(dim)
		b.WriteString("\n")
	}

	return b.String()
}

// writeContextFields renders the enumerated classification fields shared by
// every pipeline prompt.
func writeContextFields(b *strings.Builder, dctx domain.DiscoveryContext) {
	fmt.Fprintf(b, "Offering type: %s\n", dctx.Offering)
	fmt.Fprintf(b, "Company stage: %s\n", dctx.Stage)
	fmt.Fprintf(b, "Go-to-market constraint: %s\n", dctx.Constraint)
	fmt.Fprintf(b, "Sales motion: %s\n", dctx.SalesMotion)
	if dctx.ExistingHypothesis != "" {
		fmt.Fprintf(b, "Founder's existing segment hypothesis: %s\n", dctx.ExistingHypothesis)
	}
	if dctx.Mode == domain.ModeConsumer {
		b.WriteString("Segmentation mode: end consumers\n")
	} else {
		b.WriteString("Segmentation mode: business buyers\n")
	}
}
