// Package tui renders evaluation reports for the terminal and as
// markdown scorecards.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"

	"github.com/toolgauge/toolgauge/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	decisionColors = map[domain.Decision]lipgloss.Color{
		domain.DecisionStrongPass: success,
		domain.DecisionPass:       lipgloss.Color("#A3E635"), // lime
		domain.DecisionWeakPass:   warning,
		domain.DecisionFail:       danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders the full evaluation report as a styled TUI string.
func RenderReport(report *domain.EvaluationReport) string {
	var b strings.Builder

	// ── Header ──
	decision := report.Summary.Decision
	title := headerStyle.Render("toolgauge")
	subtitle := dimStyle.Render(report.Tool + " evaluation")
	scoreLine := fmt.Sprintf("%.2f / 5.00", report.Summary.CombinedScore)
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(decisionColor(decision)).
		Render(scoreLine)
	decisionStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(decisionColor(decision)).
		Render(string(decision))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + decisionStyled))
	b.WriteString("\n\n")

	// ── Categories ──
	for _, cat := range sortedCategories(report.Summary.ScoreByCategory) {
		renderCategory(&b, cat, report.Summary.ScoreByCategory[cat], report.Checks)
		b.WriteString("\n")
	}

	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Judge dimensions ──
	if report.Semantic != nil {
		renderSemantic(&b, report.Semantic)
		b.WriteString("  " + separatorLine)
		b.WriteString("\n\n")
	}

	// ── Tally ──
	s := report.Summary
	b.WriteString("  " + titleStyle.Render("Checks") + "  ")
	b.WriteString(passStyle.Render(fmt.Sprintf("%d passed", s.Passed)))
	if s.Failed > 0 {
		b.WriteString("  " + failStyle.Render(fmt.Sprintf("%d failed", s.Failed)))
	}
	if s.Skipped > 0 {
		b.WriteString("  " + skipStyle.Render(fmt.Sprintf("%d skipped", s.Skipped)))
	}
	b.WriteString("\n")

	return b.String()
}

func renderCategory(b *strings.Builder, category string, score float64, checks []domain.CheckResult) {
	color := fractionColor(score)
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%.2f", score))
	bar := coloredBar(score, 20)

	name := catNameStyle.Render(padRight(DisplayName(category), 20))
	fmt.Fprintf(b, "  %s %s  %s\n", name, bar, scoreText)

	for _, check := range checks {
		if check.Category != category {
			continue
		}
		renderCheck(b, check)
	}
}

func renderCheck(b *strings.Builder, check domain.CheckResult) {
	name := padRight(DisplayName(check.Name), 34)

	if check.Skipped {
		fmt.Fprintf(b, "    %s %s %s\n",
			skipStyle.Render("○"),
			skipStyle.Render(name),
			skipStyle.Render("skipped"),
		)
		return
	}

	var icon string
	switch {
	case check.Passed:
		icon = passStyle.Render("●")
	case check.Score >= 0.4:
		icon = warnStyle.Render("●")
	default:
		icon = failStyle.Render("●")
	}

	score := dimStyle.Render(fmt.Sprintf("%.2f", check.Score))

	if check.Message != "" && !check.Passed {
		fmt.Fprintf(b, "    %s %s %s  %s\n", icon, name, score, faintStyle.Render(check.Message))
	} else {
		fmt.Fprintf(b, "    %s %s %s\n", icon, name, score)
	}
}

func renderSemantic(b *strings.Builder, sem *domain.SemanticResult) {
	b.WriteString("  " + titleStyle.Render("Judge Dimensions"))
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("semantic %.2f/5  confidence %.2f", sem.Score, sem.AvgConfidence)))
	b.WriteString("\n\n")

	for _, d := range sem.Dimensions {
		name := padRight(DisplayName(d.Dimension), 20)
		scoreStyled := lipgloss.NewStyle().
			Bold(true).
			Foreground(judgeScoreColor(d.Score)).
			Render(fmt.Sprintf("%d/5", d.Score))
		weight := dimStyle.Render(fmt.Sprintf("%d%%", int(d.Weight*100)))

		fmt.Fprintf(b, "    %s %s  %s\n", catNameStyle.Render(name), scoreStyled, weight)

		if !d.GroundTruthPassed {
			fmt.Fprintf(b, "      %s\n", warnStyle.Render("score capped: ground-truth assertions failed"))
			for _, f := range d.GroundTruthFailures {
				fmt.Fprintf(b, "        %s\n", faintStyle.Render(f))
			}
		}
		if d.Reasoning != "" {
			fmt.Fprintf(b, "      %s\n", faintStyle.Render(truncate(d.Reasoning, 80)))
		}
	}
	b.WriteString("\n")
}

// DisplayName turns a CamelCase or snake_case identifier into a
// human-readable title.
func DisplayName(identifier string) string {
	identifier = strings.ReplaceAll(identifier, "_", " ")
	words := camelcase.Split(identifier)
	joined := strings.Join(words, " ")
	joined = strings.Join(strings.Fields(joined), " ")
	if joined == "" {
		return identifier
	}
	return strings.ToUpper(joined[:1]) + joined[1:]
}

func decisionColor(d domain.Decision) lipgloss.Color {
	if c, ok := decisionColors[d]; ok {
		return c
	}
	return fg
}

func fractionColor(score float64) lipgloss.Color {
	switch {
	case score >= 0.8:
		return success
	case score >= 0.6:
		return lipgloss.Color("#A3E635") // lime
	case score >= 0.4:
		return warning
	default:
		return danger
	}
}

func judgeScoreColor(score int) lipgloss.Color {
	switch {
	case score >= 4:
		return success
	case score == 3:
		return warning
	default:
		return danger
	}
}

func coloredBar(score float64, width int) string {
	filled := int(score * float64(width))
	filled = max(0, min(filled, width))
	empty := width - filled

	color := fractionColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func sortedCategories(byCategory map[string]float64) []string {
	cats := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

// RenderHistory formats evaluation run history for terminal output.
func RenderHistory(entries []domain.ReportEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No evaluation history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Evaluation History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(decisionColor(e.Decision)).
			Render(fmt.Sprintf("%.2f/5", e.Score))

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			scoreStyled,
			string(e.Decision),
		)

		if i > 0 {
			diff := e.Score - entries[i-1].Score
			if diff > 0.005 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%.2f", diff))
			} else if diff < -0.005 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%.2f", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
