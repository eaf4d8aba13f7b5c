package tui

import (
	"fmt"
	"strings"

	"novai/types"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("📡 Novai Feed Browser"))
	b.WriteString("\n\n")

	// Current state
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	// Article list
	if m.Result != nil && len(m.Result.Articles) > 0 {
		for i, a := range m.Result.Articles {
			line := fmt.Sprintf("%s %-14s %s",
				ScoreStyle.Render(fmt.Sprintf("%5.0f", a.ImportanceScore)),
				truncate(a.Source, 14),
				truncate(a.Title, 70))
			if i == m.Selected {
				b.WriteString(SelectedStyle.Render(line))
			} else {
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")

		// Detail box for the selected article
		if m.Selected < len(m.Result.Articles) {
			b.WriteString(BoxStyle.Render(m.formatArticle(m.Result.Articles[m.Selected])))
			b.WriteString("\n\n")
		}
	}

	// Logs
	if len(m.Logs) > 0 {
		b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		for _, logMsg := range m.Logs {
			b.WriteString(InfoStyle.Render("   " + logMsg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Help text
	b.WriteString(InfoStyle.Render("↑/↓ select | ←/→ page | t/l/h/w switch feed | r refresh | q quit"))

	return b.String()
}

// formatArticle renders the selected article's details
func (m Model) formatArticle(a *types.Article) string {
	var b strings.Builder
	b.WriteString(truncate(a.Title, 80))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Source:    %s (%s)\n", a.Source, a.Category))
	b.WriteString(fmt.Sprintf("Score:     %.0f\n", a.ImportanceScore))
	b.WriteString(fmt.Sprintf("Published: %s\n", a.PublishedAt.Format("2006-01-02 15:04")))
	if a.Summary != "" {
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render(truncate(a.Summary, 200)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(a.URL))
	return b.String()
}

// truncate shortens a string to max runes, appending ellipsis
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
