package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"uploadman/internal/model"
)

var (
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	summaryStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// ResultLine возвращает строку прогресса для одного результата.
func ResultLine(res model.UploadResult) string {
	var mark string
	switch res.Status {
	case model.OutcomeSuccess:
		mark = okStyle.Render("✓")
	case model.OutcomeSkipped:
		mark = warnStyle.Render("-")
	default:
		mark = errorStyle.Render("✗")
	}
	return fmt.Sprintf("%s %s: %s", mark, res.URL, mutedStyle.Render(res.Message))
}

// Summary возвращает итоговую панель со статистикой запуска.
func Summary(stats model.RunStats) string {
	rows := []struct {
		label string
		value string
	}{
		{"Folders created", fmt.Sprintf("%d", stats.TotalFolders)},
		{"Successful", okStyle.Render(fmt.Sprintf("%d", stats.Successful))},
		{"Failed", errorStyle.Render(fmt.Sprintf("%d", stats.Failed))},
		{"Skipped", warnStyle.Render(fmt.Sprintf("%d", stats.Skipped))},
		{"Elapsed", fmt.Sprintf("%.2fs", stats.Duration().Seconds())},
		{"Speed", fmt.Sprintf("%.2f uploads/s", stats.PerSecond())},
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %s", mutedStyle.Render(fmt.Sprintf("%-16s", row.label)), row.value)
	}

	panel := summaryStyle.Render(b.String())
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Summary"), panel)
}
