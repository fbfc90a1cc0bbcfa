package pagination

import "strconv"

// Window policy thresholds. The leading and trailing runs are three pages wide
// and the centered run spans current-1..current+1.
const (
	leadingRun  = 3
	trailingRun = 2
)

// EllipsisLabel is the text shown for elided page numbers.
const EllipsisLabel = "..."

// Token is one entry of a page window: either a page number or an ellipsis.
type Token struct {
	Page     int  `json:"page,omitempty"     yaml:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty" yaml:"ellipsis,omitempty"`
}

// PageToken returns a token for page n.
func PageToken(n int) Token {
	return Token{Page: n}
}

// EllipsisToken returns an ellipsis marker.
func EllipsisToken() Token {
	return Token{Ellipsis: true}
}

// String renders the token as it appears in the footer.
func (t Token) String() string {
	if t.Ellipsis {
		return EllipsisLabel
	}
	return strconv.Itoa(t.Page)
}

// PageWindow returns the page-number controls to display.
//
// All pages are listed when they fit in maxButtons. Otherwise the first and
// last page stay visible and the rest is compressed:
//   - current <= 3:         1 2 3 ... N
//   - current >= N-2:       1 ... N-2 N-1 N
//   - anywhere in between:  1 ... c-1 c c+1 ... N
//
// totalPages below 1 is treated as a single page. maxButtons <= 0 selects
// DefaultMaxButtons.
func PageWindow(totalPages, currentPage, maxButtons int) []Token {
	if totalPages < 1 {
		totalPages = 1
	}
	if maxButtons <= 0 {
		maxButtons = DefaultMaxButtons
	}

	if totalPages <= maxButtons {
		tokens := make([]Token, 0, totalPages)
		for n := 1; n <= totalPages; n++ {
			tokens = append(tokens, PageToken(n))
		}
		return tokens
	}

	switch {
	case currentPage <= leadingRun:
		return []Token{
			PageToken(1), PageToken(2), PageToken(3),
			EllipsisToken(),
			PageToken(totalPages),
		}
	case currentPage >= totalPages-trailingRun:
		return []Token{
			PageToken(1),
			EllipsisToken(),
			PageToken(totalPages - 2), PageToken(totalPages - 1), PageToken(totalPages),
		}
	default:
		return []Token{
			PageToken(1),
			EllipsisToken(),
			PageToken(currentPage - 1), PageToken(currentPage), PageToken(currentPage + 1),
			EllipsisToken(),
			PageToken(totalPages),
		}
	}
}

// WindowLabels returns the footer labels for a window, e.g. ["1", "...", "10"].
func WindowLabels(tokens []Token) []string {
	labels := make([]string, len(tokens))
	for i, t := range tokens {
		labels[i] = t.String()
	}
	return labels
}
