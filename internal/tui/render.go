package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/rshade/commentgrid/internal/comments"
	"github.com/rshade/commentgrid/internal/pagination"
)

// Output formats for a rendered page.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// plainBodyWidth truncates comment bodies in static table output.
const plainBodyWidth = 60

// PageView is one page of comments with its paging metadata.
type PageView struct {
	Meta     pagination.Meta    `json:"meta"     yaml:"meta"`
	Window   []string           `json:"window"   yaml:"window"`
	Comments []comments.Comment `json:"comments" yaml:"comments"`

	controls []Control
}

// NewPageView selects the visible slice of records for state.
func NewPageView(records []comments.Comment, state pagination.PageState, maxButtons int) PageView {
	return PageView{
		Meta:     pagination.NewMeta(state),
		Window:   pagination.WindowLabels(pagination.PageWindow(state.DisplayPages(), state.CurrentPage, maxButtons)),
		Comments: pagination.VisibleSlice(records, state.PageSize, state.CurrentPage),
		controls: FooterControls(state, false, maxButtons),
	}
}

// IsValidFormat reports whether format is one RenderPage understands.
func IsValidFormat(format string) bool {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// RenderPage writes view to w in format. Table output is styled unless mode
// is OutputModePlain.
func RenderPage(w io.Writer, format string, view PageView, mode OutputMode) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(view)
	case FormatTable, "":
		if mode == OutputModePlain {
			return renderPlainPage(w, view)
		}
		return renderStyledPage(w, view)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderStyledPage(w io.Writer, view PageView) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers("Id", "Name", "Comment", "Email").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle.Padding(0, 1)
			}
			return TableCellStyle
		})
	for _, c := range view.Comments {
		t.Row(strconv.Itoa(c.ID), singleLine(c.Name), truncate(singleLine(c.Body), plainBodyWidth), c.Email)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n",
		t.Render(),
		RenderControls(view.controls, -1),
		StatusLine(view.Meta),
	)
	return err
}

func renderPlainPage(w io.Writer, view PageView) error {
	if _, err := fmt.Fprintf(w, "%-6s  %-30s  %-*s  %s\n", "Id", "Name", plainBodyWidth, "Comment", "Email"); err != nil {
		return err
	}
	for _, c := range view.Comments {
		if _, err := fmt.Fprintf(w, "%-6d  %-30s  %-*s  %s\n",
			c.ID,
			truncate(singleLine(c.Name), 30),
			plainBodyWidth, truncate(singleLine(c.Body), plainBodyWidth),
			c.Email,
		); err != nil {
			return err
		}
	}

	status := "No comments"
	if view.Meta.TotalItems > 0 {
		status = fmt.Sprintf("Showing %s-%s of %s",
			formatCount(view.Meta.FirstItem), formatCount(view.Meta.LastItem), formatCount(view.Meta.TotalItems))
	}
	_, err := fmt.Fprintf(w, "\n%s\n%s | Page %d of %d\n",
		RenderControlsPlain(view.controls), status, view.Meta.CurrentPage, view.Meta.TotalPages)
	return err
}

// truncate cuts s to limit runes, ending in "..." when shortened.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= len(pagination.EllipsisLabel) {
		return string(r[:limit])
	}
	return string(r[:limit-len(pagination.EllipsisLabel)]) + pagination.EllipsisLabel
}
