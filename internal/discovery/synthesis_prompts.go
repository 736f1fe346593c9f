package discovery

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/beachhead/internal/domain"
)

const synthesisSystemPrompt = `You are a go-to-market strategist choosing where a business should land
first. You receive the best and worst candidate segments from a scored,
stress-tested search.

You MUST output ONLY a JSON object with exactly this shape:
{
  "beachheadId": "<id of the single segment to target first>",
  "rationale": "why this segment wins, referencing its scores",
  "validationPlan": ["step 1", "step 2", "step 3"],
  "backupIds": ["<id>", "<id>"],
  "neverList": [{"id": "<id>", "reason": "why to avoid it"}],
  "strategicInsights": ["insight 1", "insight 2", "insight 3"]
}

Rules:
- beachheadId must be one id from the top segments.
- validationPlan: 3 to 5 concrete, cheap-first steps to validate the pick.
- backupIds: 2 to 3 ids worth pursuing if the beachhead fails.
- neverList: 2 to 3 ids (usually from the bottom segments) with reasons.
- strategicInsights: 3 to 5 cross-cutting observations about what the
  scoring pattern reveals, not restatements of single segments.
- Use only ids that appear in the request.

Output ONLY the JSON object. No markdown fences. No explanation text.`

func buildSynthesisPrompt(dctx domain.DiscoveryContext, top, bottom []*domain.Genome) string {
	var b strings.Builder

	b.WriteString("Business under analysis:\n")
	b.WriteString(dctx.BusinessDescription)
	b.WriteString("\n\n")
	writeContextFields(&b, dctx)

	b.WriteString("\nTop segments (ranked best first):\n")
	writeSynthesisEntries(&b, dctx.Mode, top)

	if len(bottom) > 0 {
		b.WriteString("\nBottom segments (ranked worst last):\n")
		writeSynthesisEntries(&b, dctx.Mode, bottom)
	}

	return b.String()
}

func writeSynthesisEntries(b *strings.Builder, mode domain.SegmentationMode, genomes []*domain.Genome) {
	for _, g := range genomes {
		fmt.Fprintf(b, "%s (total %d):", g.ID, g.Fitness.Total)
		for i, dim := range domain.DimensionOrder(mode) {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(b, " %s=%s", dim, g.Genes[dim])
		}
		b.WriteString("\n")
		if g.Narrative != "" {
			fmt.Fprintf(b, "  narrative: %s\n", g.Narrative)
		}
		if g.StressTestNotes != "" {
			fmt.Fprintf(b, "  stress test: %s\n", g.StressTestNotes)
		}
	}
}
