package tui

import (
	"strconv"
	"strings"

	"github.com/rshade/commentgrid/internal/pagination"
)

// ControlKind identifies a footer control.
type ControlKind int

const (
	// ControlPrevious moves one page back.
	ControlPrevious ControlKind = iota
	// ControlPage jumps to a page number.
	ControlPage
	// ControlEllipsis stands for elided page numbers and does nothing.
	ControlEllipsis
	// ControlNext moves one page forward.
	ControlNext
)

// Footer labels.
const (
	labelPrevious = "Previous"
	labelNext     = "Next"
)

// Control is one entry of the footer strip.
type Control struct {
	Kind     ControlKind
	Label    string
	Page     int
	Current  bool
	Disabled bool
}

// Focusable reports whether tab focus may land on c.
func (c Control) Focusable() bool {
	return c.Kind != ControlEllipsis && !c.Disabled
}

// FooterControls lays out Previous, the page window and Next for state.
// Previous is disabled on the first page and Next on the last; both are
// disabled while a transition is loading. Page buttons stay enabled, and
// requests they make mid-transition are dropped by the transition.
func FooterControls(state pagination.PageState, loading bool, maxButtons int) []Control {
	window := pagination.PageWindow(state.DisplayPages(), state.CurrentPage, maxButtons)

	controls := make([]Control, 0, len(window)+2)
	controls = append(controls, Control{
		Kind:     ControlPrevious,
		Label:    labelPrevious,
		Page:     state.CurrentPage - 1,
		Disabled: state.IsFirst() || loading,
	})

	for _, tok := range window {
		if tok.Ellipsis {
			controls = append(controls, Control{Kind: ControlEllipsis, Label: pagination.EllipsisLabel})
			continue
		}
		controls = append(controls, Control{
			Kind:    ControlPage,
			Label:   strconv.Itoa(tok.Page),
			Page:    tok.Page,
			Current: tok.Page == state.CurrentPage,
		})
	}

	controls = append(controls, Control{
		Kind:     ControlNext,
		Label:    labelNext,
		Page:     state.CurrentPage + 1,
		Disabled: state.IsLast() || loading,
	})
	return controls
}

// nextFocus returns the next focusable index after from, moving by step
// (+1 or -1) and wrapping. It returns from when nothing is focusable.
func nextFocus(controls []Control, from, step int) int {
	n := len(controls)
	if n == 0 {
		return 0
	}
	for i := 1; i <= n; i++ {
		idx := ((from+step*i)%n + n) % n
		if controls[idx].Focusable() {
			return idx
		}
	}
	return from
}

// currentIndex returns the index of the current page control, or 0.
func currentIndex(controls []Control) int {
	for i, c := range controls {
		if c.Current {
			return i
		}
	}
	return 0
}

// RenderControls draws the footer strip with lipgloss. focus < 0 draws no focus.
func RenderControls(controls []Control, focus int) string {
	parts := make([]string, 0, len(controls))
	for i, c := range controls {
		var s string
		switch {
		case c.Kind == ControlEllipsis:
			s = EllipsisStyle.Render(c.Label)
		case c.Disabled:
			s = ControlDisabledStyle.Render(c.Label)
		case c.Current:
			s = ControlCurrentStyle.Render(c.Label)
		default:
			s = ControlStyle.Render(c.Label)
		}
		if i == focus {
			s = ControlFocusStyle.Render("›") + s
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

// RenderControlsPlain draws the footer strip without styling. The current
// page is bracketed and disabled controls are parenthesised.
func RenderControlsPlain(controls []Control) string {
	parts := make([]string, 0, len(controls))
	for _, c := range controls {
		switch {
		case c.Current:
			parts = append(parts, "["+c.Label+"]")
		case c.Disabled:
			parts = append(parts, "("+c.Label+")")
		default:
			parts = append(parts, c.Label)
		}
	}
	return strings.Join(parts, " ")
}
