package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/beachhead/internal/repository"
)

// FormatRunList renders stored discovery runs as a table.
func FormatRunList(summaries []repository.RunSummary) string {
	if len(summaries) == 0 {
		return Dim("No discovery runs yet. Start one with 'beachhead discover'.") + "\n"
	}

	headers := []string{"ID", "WHEN", "MODE", "BEACHHEAD", "SEGMENTS", "TOOK"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			TruncID(s.ID),
			StyleFg.Render(HumanTimestamp(s.CreatedAt)),
			ModeBadge(s.Mode),
			StyleFg.Render(Truncate(s.BeachheadProfile, 40)),
			Dim(fmt.Sprintf("%d/%d", s.Survivors, s.RawPopulation)),
			Dim(FormatElapsed(s.ElapsedMs)),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}
