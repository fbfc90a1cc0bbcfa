package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{
			name:   "valid default",
			params: *NewParams(),
		},
		{
			name:   "valid page mode",
			params: Params{Page: 4, PageSize: 10},
		},
		{
			name:    "zero page",
			params:  Params{Page: 0, PageSize: 10},
			wantErr: ErrInvalidPage,
		},
		{
			name:    "negative page",
			params:  Params{Page: -1, PageSize: 10},
			wantErr: ErrInvalidPage,
		},
		{
			name:    "zero page-size",
			params:  Params{Page: 1, PageSize: 0},
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "page-size above max",
			params:  Params{Page: 1, PageSize: MaxPageSize + 1},
			wantErr: ErrInvalidPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, PageSize: 30}.Offset())
	assert.Equal(t, 60, Params{Page: 3, PageSize: 30}.Offset())
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size   int
		want, display int
	}{
		{total: 0, size: 30, want: 0, display: 1},
		{total: 1, size: 30, want: 1, display: 1},
		{total: 30, size: 30, want: 1, display: 1},
		{total: 31, size: 30, want: 2, display: 2},
		{total: 72, size: 30, want: 3, display: 3},
		{total: 500, size: 30, want: 17, display: 17},
		{total: 10, size: 0, want: 0, display: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.size), "TotalPages(%d, %d)", tt.total, tt.size)
		assert.Equal(t, tt.display, DisplayPages(tt.total, tt.size), "DisplayPages(%d, %d)", tt.total, tt.size)
	}
}

func TestVisibleSlice(t *testing.T) {
	items := make([]int, 72)
	for i := range items {
		items[i] = i + 1
	}

	t.Run("first page is full", func(t *testing.T) {
		page := VisibleSlice(items, 30, 1)
		require.Len(t, page, 30)
		assert.Equal(t, 1, page[0])
		assert.Equal(t, 30, page[29])
	})

	t.Run("last page is short", func(t *testing.T) {
		page := VisibleSlice(items, 30, 3)
		require.Len(t, page, 12)
		assert.Equal(t, 61, page[0])
		assert.Equal(t, 72, page[11])
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		assert.Empty(t, VisibleSlice(items, 30, 4))
	})

	t.Run("page zero is empty", func(t *testing.T) {
		assert.Empty(t, VisibleSlice(items, 30, 0))
	})

	t.Run("empty set has an empty first page", func(t *testing.T) {
		page := VisibleSlice([]int{}, 30, 1)
		assert.NotNil(t, page)
		assert.Empty(t, page)
	})

	t.Run("append does not clobber following records", func(t *testing.T) {
		page := VisibleSlice(items, 30, 1)
		_ = append(page, -1)
		assert.Equal(t, 31, items[30])
	})
}

func TestVisibleSlice_CoversAllRecords(t *testing.T) {
	for total := 0; total <= 130; total++ {
		for _, size := range []int{1, 2, 7, 30, 50, 200} {
			items := make([]int, total)
			sum := 0
			for page := 1; page <= DisplayPages(total, size); page++ {
				got := VisibleSlice(items, size, page)
				assert.LessOrEqual(t, len(got), size)
				sum += len(got)
			}
			assert.Equal(t, total, sum, "total=%d size=%d", total, size)
		}
	}
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name  string
		state PageState
		want  Meta
	}{
		{
			name:  "first page",
			state: PageState{CurrentPage: 1, PageSize: 30, TotalRecords: 72},
			want: Meta{
				CurrentPage: 1, PageSize: 30, TotalPages: 3, TotalItems: 72,
				FirstItem: 1, LastItem: 30, HasPrevious: false, HasNext: true,
			},
		},
		{
			name:  "middle page",
			state: PageState{CurrentPage: 2, PageSize: 30, TotalRecords: 72},
			want: Meta{
				CurrentPage: 2, PageSize: 30, TotalPages: 3, TotalItems: 72,
				FirstItem: 31, LastItem: 60, HasPrevious: true, HasNext: true,
			},
		},
		{
			name:  "last page",
			state: PageState{CurrentPage: 3, PageSize: 30, TotalRecords: 72},
			want: Meta{
				CurrentPage: 3, PageSize: 30, TotalPages: 3, TotalItems: 72,
				FirstItem: 61, LastItem: 72, HasPrevious: true, HasNext: false,
			},
		},
		{
			name:  "empty set",
			state: PageState{CurrentPage: 1, PageSize: 30, TotalRecords: 0},
			want: Meta{
				CurrentPage: 1, PageSize: 30, TotalPages: 1, TotalItems: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMeta(tt.state))
		})
	}
}
