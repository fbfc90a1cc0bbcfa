package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/commentgrid/internal/comments"
	"github.com/rshade/commentgrid/internal/pagination"
)

func sampleComments(n int) []comments.Comment {
	out := make([]comments.Comment, n)
	for i := range out {
		out[i] = comments.Comment{
			PostID: i/5 + 1,
			ID:     i + 1,
			Name:   fmt.Sprintf("name %d", i+1),
			Email:  fmt.Sprintf("user%d@example.test", i+1),
			Body:   fmt.Sprintf("body %d\nsecond line", i+1),
		}
	}
	return out
}

func staticSource(records []comments.Comment) comments.Source {
	return comments.SourceFunc(func(context.Context) ([]comments.Comment, error) {
		return records, nil
	})
}

// newLoadedModel returns a model that has already received n records.
func newLoadedModel(t *testing.T, n int) *CommentsModel {
	t.Helper()
	m, err := NewCommentsModel(context.Background(), staticSource(nil), Options{
		PageSize:   30,
		MaxButtons: pagination.DefaultMaxButtons,
	})
	require.NoError(t, err)

	_, cmd := m.Update(commentsLoadedMsg{records: sampleComments(n)})
	assert.Nil(t, cmd)
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and, when it starts a transition, completes the load.
func press(m *CommentsModel, msg tea.KeyMsg) {
	_, cmd := m.Update(msg)
	if cmd != nil && m.PageLoading() {
		m.Update(pageLoadedMsg{page: m.transition.Target()})
	}
}

func TestNewCommentsModel(t *testing.T) {
	m, err := NewCommentsModel(context.Background(), staticSource(nil), Options{PageSize: 30})
	require.NoError(t, err)
	assert.Equal(t, ViewStateLoading, m.State())
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Loading...")

	_, err = NewCommentsModel(context.Background(), staticSource(nil), Options{PageSize: 0})
	require.ErrorIs(t, err, pagination.ErrInvalidPageSize)

	_, err = NewCommentsModel(context.Background(), nil, Options{PageSize: 30})
	require.Error(t, err)
}

func TestCommentsModel_FetchCmd(t *testing.T) {
	t.Run("records", func(t *testing.T) {
		m, err := NewCommentsModel(context.Background(), staticSource(sampleComments(3)), Options{PageSize: 30})
		require.NoError(t, err)

		msg, ok := m.fetchCmd().(commentsLoadedMsg)
		require.True(t, ok)
		assert.Len(t, msg.records, 3)
	})

	t.Run("failure shows empty set", func(t *testing.T) {
		failing := comments.SourceFunc(func(context.Context) ([]comments.Comment, error) {
			return nil, errors.New("dial tcp: no route to host")
		})
		m, err := NewCommentsModel(context.Background(), failing, Options{PageSize: 30})
		require.NoError(t, err)

		m.Update(m.fetchCmd())
		assert.Equal(t, ViewStateList, m.State())
		assert.Equal(t, 0, m.PageState().TotalRecords)
		assert.Equal(t, 1, m.PageState().CurrentPage)
		assert.Contains(t, m.View(), "No comments")
	})
}

func TestCommentsModel_Loaded(t *testing.T) {
	m := newLoadedModel(t, 72)

	assert.Equal(t, ViewStateList, m.State())
	assert.Equal(t, 3, m.PageState().DisplayPages())
	assert.Len(t, m.table.Rows(), 30)
	assert.Equal(t, "1", m.table.Rows()[0][0])
	assert.Equal(t, "body 1 second line", m.table.Rows()[0][2])

	view := m.View()
	for _, s := range []string{"Id", "Name", "Comment", "Email", "Previous", "Next", "Showing 1-30 of 72"} {
		assert.Contains(t, view, s)
	}
}

func TestCommentsModel_Navigation(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		wantPage int
	}{
		{name: "right", keys: []tea.KeyMsg{{Type: tea.KeyRight}}, wantPage: 2},
		{name: "l twice", keys: []tea.KeyMsg{keyRunes("l"), keyRunes("l")}, wantPage: 3},
		{name: "pgdown", keys: []tea.KeyMsg{{Type: tea.KeyPgDown}}, wantPage: 2},
		{name: "left on first page", keys: []tea.KeyMsg{{Type: tea.KeyLeft}}, wantPage: 1},
		{name: "end", keys: []tea.KeyMsg{{Type: tea.KeyEnd}}, wantPage: 17},
		{name: "G then h", keys: []tea.KeyMsg{keyRunes("G"), keyRunes("h")}, wantPage: 16},
		{name: "end then home", keys: []tea.KeyMsg{{Type: tea.KeyEnd}, {Type: tea.KeyHome}}, wantPage: 1},
		{name: "digit", keys: []tea.KeyMsg{keyRunes("7")}, wantPage: 7},
		{name: "next past last", keys: []tea.KeyMsg{keyRunes("G"), {Type: tea.KeyRight}}, wantPage: 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newLoadedModel(t, 500)
			for _, k := range tt.keys {
				press(m, k)
			}
			assert.Equal(t, tt.wantPage, m.PageState().CurrentPage)
			assert.False(t, m.PageLoading())
		})
	}
}

func TestCommentsModel_DigitOutOfRange(t *testing.T) {
	m := newLoadedModel(t, 72)

	_, cmd := m.Update(keyRunes("9"))
	assert.Nil(t, cmd)
	assert.False(t, m.PageLoading())
	assert.Equal(t, 1, m.PageState().CurrentPage)
}

func TestCommentsModel_TransitionLifecycle(t *testing.T) {
	m := newLoadedModel(t, 72)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd)
	assert.True(t, m.PageLoading())
	assert.Equal(t, 1, m.PageState().CurrentPage, "page commits only after the load")
	assert.Contains(t, m.View(), "Loading page...")

	// Requests while loading are dropped.
	_, cmd = m.Update(keyRunes("3"))
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.transition.Target())

	m.Update(pageLoadedMsg{page: 2})
	assert.False(t, m.PageLoading())
	assert.Equal(t, 2, m.PageState().CurrentPage)
	assert.Len(t, m.table.Rows(), 30)
	assert.Equal(t, "31", m.table.Rows()[0][0])
	assert.NotContains(t, m.View(), "Loading page...")
}

func TestCommentsModel_LastPageShort(t *testing.T) {
	m := newLoadedModel(t, 72)
	press(m, keyRunes("3"))

	assert.Equal(t, 3, m.PageState().CurrentPage)
	assert.Len(t, m.table.Rows(), 12)
	assert.Contains(t, m.View(), "Showing 61-72 of 72")
}

func TestCommentsModel_LoadFailureAborts(t *testing.T) {
	m := newLoadedModel(t, 72)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.True(t, m.PageLoading())

	m.Update(pageLoadedMsg{page: 2, err: context.DeadlineExceeded})
	assert.False(t, m.PageLoading())
	assert.Equal(t, 1, m.PageState().CurrentPage)
	assert.Len(t, m.table.Rows(), 30)
	assert.Equal(t, "1", m.table.Rows()[0][0])
}

func TestCommentsModel_StalePageLoaded(t *testing.T) {
	m := newLoadedModel(t, 72)

	_, cmd := m.Update(pageLoadedMsg{page: 2})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.PageState().CurrentPage)
}

func TestCommentsModel_FocusAndEnter(t *testing.T) {
	m := newLoadedModel(t, 500)
	// Previous(off) [1] 2 3 ... 17 Next
	assert.Equal(t, 1, m.focus)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 2, m.focus)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, m.PageState().CurrentPage)
	assert.Equal(t, "2", m.controls()[m.focus].Label, "focus follows the current page")

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "1", m.controls()[m.focus].Label)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "Previous", m.controls()[m.focus].Label)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, m.PageState().CurrentPage)
}

func TestCommentsModel_CurrentPageReRequest(t *testing.T) {
	m := newLoadedModel(t, 72)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd, "the current page button is still clickable")
	assert.True(t, m.PageLoading())

	m.Update(pageLoadedMsg{page: 1})
	assert.Equal(t, 1, m.PageState().CurrentPage)
}

func TestCommentsModel_PageCmdUsesLoader(t *testing.T) {
	var got int
	m, err := NewCommentsModel(context.Background(), staticSource(nil), Options{
		PageSize: 30,
		Loader: func(_ context.Context, page int) error {
			got = page
			return errors.New("upstream unavailable")
		},
	})
	require.NoError(t, err)

	msg, ok := m.pageCmd(4)().(pageLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, 4, got)
	assert.Equal(t, 4, msg.page)
	assert.EqualError(t, msg.err, "upstream unavailable")
}

func TestCommentsModel_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyCtrlC}} {
		m := newLoadedModel(t, 10)
		_, cmd := m.Update(k)
		require.NotNil(t, cmd)
		assert.Equal(t, ViewStateQuitting, m.State())
		assert.Empty(t, m.View())
	}
}

func TestCommentsModel_WindowSize(t *testing.T) {
	m := newLoadedModel(t, 72)
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 20})

	assert.Equal(t, 200, m.width)
	assert.Equal(t, 20-chromeHeight, m.tableHeight())
	// The header is drawn above the row viewport; together they fill tableHeight.
	assert.Equal(t, m.tableHeight(), lipgloss.Height(m.table.View()))

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 3})
	assert.Equal(t, minHeight, m.tableHeight())
	assert.Equal(t, minHeight, lipgloss.Height(m.table.View()))
	assert.Equal(t, minBodyWidth, m.table.Columns()[2].Width)
}

func TestStatusLine(t *testing.T) {
	meta := pagination.NewMeta(pagination.PageState{CurrentPage: 2, PageSize: 1000, TotalRecords: 12500})
	line := StatusLine(meta)
	assert.Contains(t, line, "Showing 1,001-2,000 of 12,500")
	assert.Contains(t, line, "Page 2 of 13")
}
