package discovery

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/beachhead/internal/domain"
)

const populationSystemPrompt = `You are a customer segmentation strategist sampling candidate segments
from a fixed search space.

You MUST output ONLY a JSON array. Each element has exactly this shape:
{
  "genes": {"<dimension_name>": "<one value from that dimension's list>"},
  "narrative": "one sentence on who this segment is and why it might work"
}

Rules:
- Every element must choose exactly one value for EVERY dimension listed in
  the request, copied verbatim from that dimension's value list.
- No two elements in your output may have an identical full combination.
- Follow the sampling directive in the request; it tells you which region of
  the space to draw from.

Output ONLY the JSON array. No markdown fences. No explanation text.`

func buildPopulationPrompt(dctx domain.DiscoveryContext, lib *domain.GeneLibrary, bias samplingBias, count int) string {
	var b strings.Builder

	b.WriteString("Business under analysis:\n")
	b.WriteString(dctx.BusinessDescription)
	b.WriteString("\n\n")
	writeContextFields(&b, dctx)

	b.WriteString("\nSearch space (choose one value per dimension):\n")
	for _, dim := range domain.DimensionOrder(lib.Mode) {
		fmt.Fprintf(&b, "%s: %s\n", dim, strings.Join(lib.Dimensions[dim], " | "))
	}

	fmt.Fprintf(&b, "\nSampling directive: %s\n", bias.Instruction)
	fmt.Fprintf(&b, "Sample %d candidate segments.\n", count)

	return b.String()
}
