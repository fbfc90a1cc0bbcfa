package pagination

// Meta contains render-ready metadata about the page being shown.
//
//nolint:revive // Meta reads well as pagination.Meta at call sites.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	FirstItem   int  `json:"first_item"   yaml:"first_item"`
	LastItem    int  `json:"last_item"    yaml:"last_item"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta creates page metadata from a paging state.
// FirstItem and LastItem are 1-based and both 0 when the page is empty.
func NewMeta(state PageState) Meta {
	totalPages := state.DisplayPages()

	first, last := 0, 0
	if state.TotalRecords > 0 && state.PageSize > 0 {
		first = (state.CurrentPage-1)*state.PageSize + 1
		last = first + state.PageSize - 1
		if last > state.TotalRecords {
			last = state.TotalRecords
		}
		if first > state.TotalRecords {
			first, last = 0, 0
		}
	}

	return Meta{
		CurrentPage: state.CurrentPage,
		PageSize:    state.PageSize,
		TotalPages:  totalPages,
		TotalItems:  state.TotalRecords,
		FirstItem:   first,
		LastItem:    last,
		HasPrevious: state.CurrentPage > 1,
		HasNext:     state.CurrentPage < totalPages,
	}
}
