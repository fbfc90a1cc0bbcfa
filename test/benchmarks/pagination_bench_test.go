package benchmarks_test

import (
	"fmt"
	"testing"

	"github.com/rshade/commentgrid/internal/comments"
	"github.com/rshade/commentgrid/internal/pagination"
	"github.com/rshade/commentgrid/internal/tui"
)

func makeComments(n int) []comments.Comment {
	out := make([]comments.Comment, n)
	for i := range out {
		out[i] = comments.Comment{
			PostID: i/5 + 1,
			ID:     i + 1,
			Name:   fmt.Sprintf("name %d", i+1),
			Email:  fmt.Sprintf("user%d@example.com", i+1),
			Body:   "lorem ipsum dolor sit amet",
		}
	}
	return out
}

// BenchmarkPageWindow measures footer computation across very large page counts.
func BenchmarkPageWindow(b *testing.B) {
	for _, total := range []int{1, 10, 1_000, 1_000_000} {
		b.Run(fmt.Sprintf("pages=%d", total), func(b *testing.B) {
			current := total/2 + 1
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = pagination.PageWindow(total, current, pagination.DefaultMaxButtons)
			}
		})
	}
}

// BenchmarkVisibleSlice measures slicing the middle page of large record sets.
func BenchmarkVisibleSlice(b *testing.B) {
	for _, n := range []int{500, 50_000} {
		records := makeComments(n)
		page := pagination.DisplayPages(n, pagination.DefaultPageSize) / 2
		b.Run(fmt.Sprintf("records=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = pagination.VisibleSlice(records, pagination.DefaultPageSize, page)
			}
		})
	}
}

// BenchmarkNewPageView measures building a full page view for output.
func BenchmarkNewPageView(b *testing.B) {
	records := makeComments(500)
	state, err := pagination.NewPageState(len(records), pagination.DefaultPageSize)
	if err != nil {
		b.Fatal(err)
	}
	state.CurrentPage = 9

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tui.NewPageView(records, state, pagination.DefaultMaxButtons)
	}
}
