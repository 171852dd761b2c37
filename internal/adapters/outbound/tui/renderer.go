package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/localelint/internal/domain"
)

var (
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	passStyle  = lipgloss.NewStyle().Foreground(success)
	failStyle  = lipgloss.NewStyle().Foreground(danger)
	tagStyle   = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderReport renders a human-facing summary of a validation report.
func RenderReport(report domain.Report) string {
	if len(report) == 0 {
		return dimStyle.Render("No candidate files to validate.") + "\n"
	}

	var b strings.Builder
	for _, res := range report {
		renderFileResult(&b, res)
	}

	b.WriteString("\n")
	b.WriteString(renderSummary(report))
	b.WriteString("\n")
	return b.String()
}

func renderFileResult(b *strings.Builder, res domain.FileResult) {
	if res.Success() {
		b.WriteString("  " + passStyle.Render("✓") + " " + res.File + "\n")
		return
	}

	b.WriteString("  " + failStyle.Render("✗") + " " + titleStyle.Render(res.File) + "\n")
	for _, v := range res.Violations {
		b.WriteString("      " + tagStyle.Render(v.Category) + " " + v.Message + "\n")
	}
}

func renderSummary(report domain.Report) string {
	total := len(report)
	failed := report.Failures()

	if failed == 0 {
		return "  " + passStyle.Render(fmt.Sprintf("%d file(s) validated, no violations.", total))
	}
	return "  " + failStyle.Render(fmt.Sprintf("%d of %d file(s) failed, %d violation(s).",
		failed, total, report.TotalViolations()))
}

// RenderRules renders the rule listing with enabled state.
func RenderRules(rules []domain.Rule) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Rules") + "\n")
	for _, r := range rules {
		marker := dimStyle.Render("off")
		if r.Enabled {
			marker = passStyle.Render("on ")
		}
		b.WriteString(fmt.Sprintf("  %s  %-24s %s\n", marker, r.Name, tagStyle.Render(r.Category)))
	}
	return b.String()
}
