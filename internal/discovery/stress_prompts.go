package discovery

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/beachhead/internal/domain"
)

const stressSystemPrompt = `You are a skeptical investor stress-testing segment scores another
analyst produced. Your job is to find what they got wrong: inflated pain,
imaginary access, crowded markets scored as open, wishful product fit.

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
  "stressNote": "one or two sentences: the strongest objection you found"
}

Rules:
- Return revised scores for every genome in the request. Where the original
  score survives your challenge, keep it; where it does not, lower (or
  rarely raise) it.
- Be concrete in stressNote: name the objection, not the method.

Output ONLY the JSON array. No markdown fences. No explanation text.`

func buildStressPrompt(dctx domain.DiscoveryContext, batch []*domain.Genome) string {
	var b strings.Builder

	b.WriteString("Business under analysis:\n")
	b.WriteString(dctx.BusinessDescription)
	b.WriteString("\n\n")
	writeContextFields(&b, dctx)

	b.WriteString("\nSegments with their current scores and narratives:\n")
	for _, g := range batch {
		fmt.Fprintf(&b, "%s:", g.ID)
		for i, dim := range domain.DimensionOrder(dctx.Mode) {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, " %s=%s", dim, g.Genes[dim])
		}
		f := g.Fitness
		fmt.Fprintf(&b, "\n  scores: painIntensity=%d decisionAccess=%d purchasePower=%d competitionGap=%d productFit=%d urgency=%d scalePotential=%d gtmEfficiency=%d (total %d)\n",
			f.PainIntensity, f.DecisionAccess, f.PurchasePower, f.CompetitionGap,
			f.ProductFit, f.Urgency, f.ScalePotential, f.GTMEfficiency, f.Total)
		if g.Narrative != "" {
			fmt.Fprintf(&b, "  narrative: %s\n", g.Narrative)
		}
	}

	return b.String()
}
