package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/beachhead/internal/discovery"
	"github.com/alexanderramin/beachhead/internal/domain"
)

const rankingTableLimit = 10

// FormatResult formats a complete discovery result as a styled CLI report.
func FormatResult(result *discovery.DiscoveryResult) string {
	var b strings.Builder

	b.WriteString(formatRunHeader(result))
	b.WriteString("\n\n")

	if result.Synthesis != nil {
		b.WriteString(formatBeachhead(&result.Synthesis.Beachhead, result.Context.Mode))
		b.WriteString("\n\n")
		b.WriteString(formatBackups(result.Synthesis.Backups, result.Context.Mode))
		b.WriteString("\n")
		b.WriteString(formatNeverList(result.Synthesis.NeverList, result.Context.Mode))
		b.WriteString("\n")
		b.WriteString(formatInsights(result.Synthesis.StrategicInsights))
		b.WriteString("\n")
	}

	b.WriteString(FormatRanking(result.Genomes, result.Context.Mode))

	return b.String()
}

func formatRunHeader(result *discovery.DiscoveryResult) string {
	return fmt.Sprintf("%s  %s  %s",
		ModeBadge(result.Context.Mode),
		TruncID(result.RunID),
		Dim(fmt.Sprintf("%d candidates → %d segments in %s",
			result.RawPopulation, result.Survivors, FormatElapsed(result.ElapsedMs))),
	)
}

func formatBeachhead(bh *domain.Beachhead, mode domain.SegmentationMode) string {
	var b strings.Builder

	g := bh.Genome
	b.WriteString(fmt.Sprintf("%s  %s\n\n", Bold(g.ID), ScoreBadge(g.Fitness.Total)))
	b.WriteString(FormatGenomeProfile(g, mode))

	if g.Narrative != "" {
		b.WriteString("\n" + StyleFg.Render(g.Narrative) + "\n")
	}
	if g.StressTestNotes != "" {
		b.WriteString(StyleYellow.Render("⚠ "+g.StressTestNotes) + "\n")
	}

	b.WriteString("\n" + Bold("Why this one") + "\n")
	b.WriteString(StyleFg.Render(bh.Rationale) + "\n")

	b.WriteString("\n" + Bold("Validation plan") + "\n")
	for i, step := range bh.ValidationPlan {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleBlue.Render(fmt.Sprintf("%d.", i+1)), step))
	}

	return RenderBox("Beachhead", strings.TrimRight(b.String(), "\n"))
}

func formatBackups(backups []*domain.Genome, mode domain.SegmentationMode) string {
	var b strings.Builder
	b.WriteString(Header("Backups") + "\n")
	for _, g := range backups {
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			Bold(g.ID), ScoreBadge(g.Fitness.Total), segmentLabel(g, mode)))
		if g.Narrative != "" {
			b.WriteString("  " + Dim(Truncate(g.Narrative, 100)) + "\n")
		}
	}
	return b.String()
}

func formatNeverList(exclusions []domain.Exclusion, mode domain.SegmentationMode) string {
	var b strings.Builder
	b.WriteString(Header("Never list") + "\n")
	for _, e := range exclusions {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			StyleRed.Render("✖ "+e.Genome.ID), segmentLabel(e.Genome, mode)))
		b.WriteString("  " + Dim(e.Reason) + "\n")
	}
	return b.String()
}

func formatInsights(insights []string) string {
	var b strings.Builder
	b.WriteString(Header("Strategic insights") + "\n")
	for _, s := range insights {
		b.WriteString(fmt.Sprintf("%s %s\n", StylePurple.Render("•"), s))
	}
	return b.String()
}

// FormatRanking renders the top of the ranked population as a table.
func FormatRanking(genomes []*domain.Genome, mode domain.SegmentationMode) string {
	limit := rankingTableLimit
	if limit > len(genomes) {
		limit = len(genomes)
	}

	headers := []string{"RANK", "ID", "SEGMENT", "SCORE"}
	rows := make([][]string, 0, limit)
	for i, g := range genomes[:limit] {
		label := segmentLabel(g, mode)
		if g.StressTestNotes != "" {
			label += " " + StyleYellow.Render("⚠")
		}
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			Bold(g.ID),
			label,
			ScoreBadge(g.Fitness.Total),
		})
	}

	var b strings.Builder
	b.WriteString(Header("Ranking") + "\n")
	b.WriteString(RenderTable(headers, rows))
	if len(genomes) > limit {
		b.WriteString(Dim(fmt.Sprintf("… and %d more\n", len(genomes)-limit)))
	}
	return b.String()
}

// FormatGenomeProfile renders a genome's gene assignment, one dimension per
// line in the mode's fixed order.
func FormatGenomeProfile(g *domain.Genome, mode domain.SegmentationMode) string {
	var b strings.Builder
	for _, dim := range domain.DimensionOrder(mode) {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			Dim(fmt.Sprintf("%-16s", dim)), StyleFg.Render(g.Genes[dim])))
	}
	return b.String()
}

// segmentLabel builds a short human label from a genome's defining genes.
func segmentLabel(g *domain.Genome, mode domain.SegmentationMode) string {
	primary := g.Genes[domain.DiversityKey(mode)]
	secondary := g.Genes[domain.DimensionOrder(mode)[0]]
	switch {
	case primary == "":
		return secondary
	case secondary == "":
		return primary
	default:
		return primary + Dim(" / ") + secondary
	}
}
