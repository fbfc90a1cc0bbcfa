package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/commentgrid/internal/comments"
	"github.com/rshade/commentgrid/internal/logging"
	"github.com/rshade/commentgrid/internal/pagination"
)

// commentsLoadedMsg carries the fetched record set.
type commentsLoadedMsg struct {
	records []comments.Comment
}

// pageLoadedMsg reports the end of a page load.
type pageLoadedMsg struct {
	page int
	err  error
}

// Options configures a CommentsModel.
type Options struct {
	PageSize   int
	MaxButtons int

	// Loader is awaited on every page change. Nil loads instantly.
	Loader pagination.PageLoader
}

// CommentsModel is the Bubble Tea model for browsing comments page by page.
type CommentsModel struct {
	ctx    context.Context
	source comments.Source
	loader pagination.PageLoader

	state      ViewState
	loading    *LoadingState
	records    []comments.Comment
	transition *pagination.Transition
	pageSize   int
	maxButtons int

	table table.Model
	focus int

	width  int
	height int
}

// NewCommentsModel builds a model that fetches from src on Init.
func NewCommentsModel(ctx context.Context, src comments.Source, opts Options) (*CommentsModel, error) {
	if src == nil {
		return nil, errors.New("comment source is required")
	}
	// Validate page size up front so a bad value fails before the program starts.
	state, err := pagination.NewPageState(0, opts.PageSize)
	if err != nil {
		return nil, err
	}

	loader := opts.Loader
	if loader == nil {
		loader = pagination.SimulatedLatency(0)
	}

	m := &CommentsModel{
		ctx:        ctx,
		source:     src,
		loader:     loader,
		state:      ViewStateLoading,
		loading:    NewLoadingState(msgLoading),
		transition: pagination.NewTransition(state),
		pageSize:   opts.PageSize,
		maxButtons: opts.MaxButtons,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.table = table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)
	m.table.SetStyles(tableStyles())
	return m, nil
}

// Init starts the spinner and the fetch.
func (m *CommentsModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.fetchCmd)
}

func (m *CommentsModel) fetchCmd() tea.Msg {
	return commentsLoadedMsg{records: comments.Load(m.ctx, m.source)}
}

func (m *CommentsModel) pageCmd(page int) tea.Cmd {
	loader, ctx := m.loader, m.ctx
	return func() tea.Msg {
		return pageLoadedMsg{page: page, err: loader(ctx, page)}
	}
}

// Update handles messages and updates the model state.
func (m *CommentsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(m.columns())
		m.table.SetHeight(m.tableHeight())
		return m, nil
	case commentsLoadedMsg:
		return m.handleCommentsLoaded(msg)
	case pageLoadedMsg:
		return m.handlePageLoaded(msg)
	case spinner.TickMsg:
		if m.state == ViewStateLoading || m.transition.Loading() {
			return m, m.loading.Update(msg)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *CommentsModel) handleCommentsLoaded(msg commentsLoadedMsg) (tea.Model, tea.Cmd) {
	m.records = msg.records
	// Page size was validated in NewCommentsModel.
	state, _ := pagination.NewPageState(len(m.records), m.pageSize)
	m.transition = pagination.NewTransition(state)
	m.state = ViewStateList
	m.loading.SetMessage(msgLoadingPage)
	m.refreshRows()
	m.focus = currentIndex(m.controls())

	logging.FromContext(m.ctx).Debug().Ctx(m.ctx).
		Int("records", len(m.records)).
		Int("pages", state.DisplayPages()).
		Msg("comment browser ready")
	return m, nil
}

func (m *CommentsModel) handlePageLoaded(msg pageLoadedMsg) (tea.Model, tea.Cmd) {
	log := logging.FromContext(m.ctx)

	if msg.err != nil {
		_ = m.transition.Abort()
		m.refreshRows()
		log.Warn().Ctx(m.ctx).Err(msg.err).Int("page", msg.page).Msg("page load failed, staying on current page")
		return m, nil
	}

	page, err := m.transition.Commit()
	if err != nil {
		log.Debug().Ctx(m.ctx).Err(err).Msg("page load finished with no transition pending")
		return m, nil
	}

	m.refreshRows()
	m.table.GotoTop()
	m.focus = currentIndex(m.controls())
	log.Debug().Ctx(m.ctx).Int("page", page).Msg("page changed")
	return m, nil
}

func (m *CommentsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == keyQuit || key == keyCtrlC {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}
	if m.state != ViewStateList {
		return m, nil
	}

	current := m.transition.State()
	switch key {
	case keyLeft, keyH, keyPgUp:
		return m, m.requestPage(current.CurrentPage - 1)
	case keyRight, keyL, keyPgDown:
		return m, m.requestPage(current.CurrentPage + 1)
	case keyHome, keyG:
		return m, m.requestPage(pagination.MinPage)
	case keyEnd, keyShiftG:
		return m, m.requestPage(current.DisplayPages())
	case keyTab:
		m.focus = nextFocus(m.controls(), m.focus, 1)
		return m, nil
	case keyShiftTab:
		m.focus = nextFocus(m.controls(), m.focus, -1)
		return m, nil
	case keyEnter:
		return m, m.activate(m.focus)
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return m, m.requestPage(int(key[0] - '0'))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// activate presses the control at idx.
func (m *CommentsModel) activate(idx int) tea.Cmd {
	controls := m.controls()
	if idx < 0 || idx >= len(controls) {
		return nil
	}
	c := controls[idx]
	if !c.Focusable() {
		return nil
	}
	return m.requestPage(c.Page)
}

// requestPage funnels every page change through the transition. Rejected
// requests are dropped and logged at debug level.
func (m *CommentsModel) requestPage(page int) tea.Cmd {
	if err := m.transition.Request(page); err != nil {
		logging.FromContext(m.ctx).Debug().Ctx(m.ctx).Err(err).Int("page", page).Msg("page request ignored")
		return nil
	}

	m.table.SetRows([]table.Row{{"", msgLoadingPage, "", ""}})
	return tea.Batch(m.pageCmd(page), m.loading.Init())
}

func (m *CommentsModel) controls() []Control {
	return FooterControls(m.transition.State(), m.transition.Loading(), m.maxButtons)
}

func (m *CommentsModel) refreshRows() {
	state := m.transition.State()
	visible := pagination.VisibleSlice(m.records, state.PageSize, state.CurrentPage)

	rows := make([]table.Row, 0, len(visible))
	for _, c := range visible {
		rows = append(rows, commentRow(c))
	}
	m.table.SetRows(rows)
}

func (m *CommentsModel) columns() []table.Column {
	body := m.width - colWidthID - colWidthName - colWidthEmail - 4*cellPadding
	if body < minBodyWidth {
		body = minBodyWidth
	}
	return []table.Column{
		{Title: "Id", Width: colWidthID},
		{Title: "Name", Width: colWidthName},
		{Title: "Comment", Width: body},
		{Title: "Email", Width: colWidthEmail},
	}
}

func (m *CommentsModel) tableHeight() int {
	h := m.height - chromeHeight
	if m.pageSize > 0 && h > m.pageSize {
		h = m.pageSize
	}
	if h < minHeight {
		h = minHeight
	}
	return h
}

// State returns the current view state.
func (m *CommentsModel) State() ViewState {
	return m.state
}

// PageState returns the current paging position.
func (m *CommentsModel) PageState() pagination.PageState {
	return m.transition.State()
}

// PageLoading reports whether a page change is in flight.
func (m *CommentsModel) PageLoading() bool {
	return m.transition.Loading()
}

func commentRow(c comments.Comment) table.Row {
	return table.Row{
		strconv.Itoa(c.ID),
		singleLine(c.Name),
		singleLine(c.Body),
		c.Email,
	}
}

// singleLine folds embedded newlines so a body fits one table row.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	return s
}
