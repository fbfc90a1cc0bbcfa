package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/commentgrid/internal/pagination"
)

const helpText = "[←/→] Page  [g/G] First/Last  [1-9] Jump  [Tab] Focus  [Enter] Select  [↑/↓] Rows  [q] Quit"

var countPrinter = message.NewPrinter(language.English)

// formatCount renders n with thousands separators.
func formatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// View renders the current view.
func (m *CommentsModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, RenderLoading(m.loading))
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m *CommentsModel) renderListView() string {
	sections := []string{HeaderStyle.Render("Comments")}

	sections = append(sections, m.table.View())

	spin := ""
	if m.transition.Loading() {
		spin = SubtleStyle.Render(RenderLoading(m.loading))
	}

	footer := lipgloss.PlaceHorizontal(m.tableWidth(), lipgloss.Center, RenderControls(m.controls(), m.focus))
	sections = append(sections,
		spin,
		footer,
		StatusLine(pagination.NewMeta(m.transition.State())),
		SubtleStyle.Render(helpText),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *CommentsModel) tableWidth() int {
	w := 0
	for _, c := range m.columns() {
		w += c.Width + cellPadding
	}
	return w
}

// StatusLine summarises meta as "Showing a-b of N | Page p of P".
func StatusLine(meta pagination.Meta) string {
	if meta.TotalItems == 0 {
		return LabelStyle.Render("No comments") + " " + SubtleStyle.Render("| Page 1 of 1")
	}
	showing := fmt.Sprintf("Showing %s-%s of %s",
		formatCount(meta.FirstItem), formatCount(meta.LastItem), formatCount(meta.TotalItems))
	page := fmt.Sprintf("| Page %s of %s", formatCount(meta.CurrentPage), formatCount(meta.TotalPages))
	return ValueStyle.Render(showing) + " " + SubtleStyle.Render(page)
}
