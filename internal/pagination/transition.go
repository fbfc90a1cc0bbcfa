package pagination

import (
	"context"
	"fmt"
	"time"
)

// PageState is the paging position over an immutable record set.
type PageState struct {
	CurrentPage  int `json:"current_page"  yaml:"current_page"`
	PageSize     int `json:"page_size"     yaml:"page_size"`
	TotalRecords int `json:"total_records" yaml:"total_records"`
}

// NewPageState returns the state for page 1 of totalRecords records.
func NewPageState(totalRecords, pageSize int) (PageState, error) {
	if pageSize < MinPageSize || pageSize > MaxPageSize {
		return PageState{}, fmt.Errorf("%w: got %d", ErrInvalidPageSize, pageSize)
	}
	if totalRecords < 0 {
		totalRecords = 0
	}
	return PageState{
		CurrentPage:  DefaultPage,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
	}, nil
}

// TotalPages returns the real page count (0 for an empty set).
func (s PageState) TotalPages() int {
	return TotalPages(s.TotalRecords, s.PageSize)
}

// DisplayPages returns the page count used for navigation and rendering.
func (s PageState) DisplayPages() int {
	return DisplayPages(s.TotalRecords, s.PageSize)
}

// InRange reports whether page is a valid navigation target.
func (s PageState) InRange(page int) bool {
	return page >= MinPage && page <= s.DisplayPages()
}

// IsFirst reports whether the current page is the first one.
func (s PageState) IsFirst() bool {
	return s.CurrentPage <= MinPage
}

// IsLast reports whether the current page is the last one.
func (s PageState) IsLast() bool {
	return s.CurrentPage >= s.DisplayPages()
}

// Phase is the page transition state.
type Phase int

const (
	// PhaseIdle means no page change is in flight.
	PhaseIdle Phase = iota
	// PhaseLoading means a page change was accepted and awaits its load.
	PhaseLoading
)

// String returns a lowercase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// Transition guards page changes with an Idle -> Loading -> Idle machine.
// At most one change is in flight; requests made while Loading are rejected.
// It is not safe for concurrent use; the owner serialises calls.
type Transition struct {
	state  PageState
	phase  Phase
	target int
}

// NewTransition returns an idle machine positioned at state.
func NewTransition(state PageState) *Transition {
	return &Transition{state: state, phase: PhaseIdle}
}

// Request starts a change to newPage. It returns ErrTransitionBusy while a
// change is in flight and ErrPageOutOfRange for targets outside
// 1..DisplayPages; in both cases nothing changes.
func (t *Transition) Request(newPage int) error {
	if t.phase == PhaseLoading {
		return fmt.Errorf("%w: pending page %d", ErrTransitionBusy, t.target)
	}
	if !t.state.InRange(newPage) {
		return fmt.Errorf("%w: %d not in 1..%d", ErrPageOutOfRange, newPage, t.state.DisplayPages())
	}

	t.phase = PhaseLoading
	t.target = newPage
	return nil
}

// Commit finishes the in-flight change, moving to the target page.
// It returns the committed page.
func (t *Transition) Commit() (int, error) {
	if t.phase != PhaseLoading {
		return 0, ErrNoTransition
	}

	t.state.CurrentPage = t.target
	t.phase = PhaseIdle
	t.target = 0
	return t.state.CurrentPage, nil
}

// Abort drops the in-flight change and leaves the current page as it was.
func (t *Transition) Abort() error {
	if t.phase != PhaseLoading {
		return ErrNoTransition
	}

	t.phase = PhaseIdle
	t.target = 0
	return nil
}

// State returns a copy of the current paging state.
func (t *Transition) State() PageState {
	return t.state
}

// Phase returns the transition phase.
func (t *Transition) Phase() Phase {
	return t.phase
}

// Loading reports whether a change is in flight.
func (t *Transition) Loading() bool {
	return t.phase == PhaseLoading
}

// Target returns the pending page, or 0 when idle.
func (t *Transition) Target() int {
	return t.target
}

// PageLoader performs whatever work a page change waits on.
// A non-nil error aborts the change.
type PageLoader func(ctx context.Context, page int) error

// SimulatedLatency returns a loader that waits d before reporting success.
// A zero or negative d completes immediately.
func SimulatedLatency(d time.Duration) PageLoader {
	return func(ctx context.Context, _ int) error {
		if d <= 0 {
			return ctx.Err()
		}

		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	}
}
