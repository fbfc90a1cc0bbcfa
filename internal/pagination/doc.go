// Package pagination provides the page arithmetic behind the comment browser.
//
// This package contains the record-set independent pieces of paging:
//   - Params: --page / --page-size flag values and their validation
//   - PageState: current page, page size and record count with range checks
//   - VisibleSlice: the records shown on a page
//   - PageWindow: the page-number controls, with ellipsis compression
//   - Transition: the Idle/Loading state machine guarding page changes
//   - Meta: render-ready metadata for a page
//
// Pages are 1-based. An empty record set still has one (empty) page for display.
package pagination
