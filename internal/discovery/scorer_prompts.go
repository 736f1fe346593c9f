package discovery

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/beachhead/internal/domain"
)

const scoreSystemPrompt = `You are a ruthless go-to-market analyst scoring candidate customer
segments for a specific business.

You MUST output ONLY a JSON array. Each element has exactly this shape:
{
  "id": "<the genome id given in the request>",
  "scores": {
    "painIntensity": 1-5,
    "decisionAccess": 1-5,
    "purchasePower": 1-5,
    "competitionGap": 1-5,
    "productFit": 1-5,
    "urgency": 1-5,
    "scalePotential": 1-5,
    "gtmEfficiency": 1-5
  },
  "narrative": "two sentences: the strongest reason for and against this segment"
}

Scoring criteria, each an integer 1 (worst) to 5 (best):
- painIntensity: how badly this segment feels the problem
- decisionAccess: how reachable the purchase decision-maker is
- purchasePower: fit between the segment's budget and the likely price
- competitionGap: 5 = least crowded, 1 = saturated
- productFit: how well the offering as described fits this segment
- urgency: how soon the segment needs a solution
- scalePotential: how far the business can grow from this entry point
- gtmEfficiency: fit with the stated go-to-market constraint and sales motion

Include every genome id from the request exactly once. Output ONLY the JSON
array. No markdown fences. No explanation text.`

func buildScorePrompt(dctx domain.DiscoveryContext, batch []*domain.Genome) string {
	var b strings.Builder

	b.WriteString("Business under analysis:\n")
	b.WriteString(dctx.BusinessDescription)
	b.WriteString("\n\n")
	writeContextFields(&b, dctx)

	b.WriteString("\nCandidate segments to score:\n")
	writeGenomeList(&b, dctx.Mode, batch)

	return b.String()
}

// writeGenomeList renders genomes as "id: dim=value, ..." lines in the
// canonical dimension order.
func writeGenomeList(b *strings.Builder, mode domain.SegmentationMode, genomes []*domain.Genome) {
	order := domain.DimensionOrder(mode)
	for _, g := range genomes {
		fmt.Fprintf(b, "%s:", g.ID)
		for i, dim := range order {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(b, " %s=%s", dim, g.Genes[dim])
		}
		b.WriteString("\n")
	}
}
