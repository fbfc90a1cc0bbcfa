package pagination

import (
	"errors"
	"fmt"
)

// Page size and page number limits.
const (
	DefaultPageSize   = 30
	MinPageSize       = 1
	MaxPageSize       = 1000
	DefaultPage       = 1
	MinPage           = 1
	DefaultMaxButtons = 5
)

// Common validation errors.
var (
	ErrInvalidPage     = errors.New("page must be >= 1")
	ErrInvalidPageSize = fmt.Errorf("page-size must be between %d and %d", MinPageSize, MaxPageSize)
	ErrPageOutOfRange  = errors.New("page is out of range")
	ErrTransitionBusy  = errors.New("page transition already in progress")
	ErrNoTransition    = errors.New("no page transition in progress")
)

// Params holds the CLI paging flags.
//
//nolint:revive // Params reads well as pagination.Params at call sites.
type Params struct {
	// Page is the 1-based page number.
	Page int

	// PageSize is the number of records per page.
	PageSize int
}

// NewParams creates Params with default values.
func NewParams() *Params {
	return &Params{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}
}

// Validate checks the flag values are usable (value receiver).
// It does not know the record count, so an over-large page is only caught
// once a PageState exists.
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	return nil
}

// Offset returns the index of the first record on the requested page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}
