package pagination

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransition(t *testing.T, total, size int) *Transition {
	t.Helper()
	state, err := NewPageState(total, size)
	require.NoError(t, err)
	return NewTransition(state)
}

func TestNewPageState(t *testing.T) {
	state, err := NewPageState(72, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentPage)
	assert.Equal(t, 3, state.TotalPages())
	assert.Equal(t, 3, state.DisplayPages())

	_, err = NewPageState(72, 0)
	require.ErrorIs(t, err, ErrInvalidPageSize)

	empty, err := NewPageState(0, 30)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalPages())
	assert.Equal(t, 1, empty.DisplayPages())
	assert.True(t, empty.IsFirst())
	assert.True(t, empty.IsLast())
}

func TestTransition_RequestAndCommit(t *testing.T) {
	tr := newTestTransition(t, 72, 30)
	assert.Equal(t, PhaseIdle, tr.Phase())

	require.NoError(t, tr.Request(3))
	assert.Equal(t, PhaseLoading, tr.Phase())
	assert.True(t, tr.Loading())
	assert.Equal(t, 3, tr.Target())
	assert.Equal(t, 1, tr.State().CurrentPage, "page must not change before commit")

	page, err := tr.Commit()
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, 3, tr.State().CurrentPage)
	assert.Equal(t, PhaseIdle, tr.Phase())
	assert.Equal(t, 0, tr.Target())
}

func TestTransition_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		page int
	}{
		{name: "zero", page: 0},
		{name: "negative", page: -2},
		{name: "past last page", page: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTransition(t, 72, 30)
			err := tr.Request(tt.page)
			require.ErrorIs(t, err, ErrPageOutOfRange)
			assert.Equal(t, PhaseIdle, tr.Phase())
			assert.Equal(t, 1, tr.State().CurrentPage)
		})
	}
}

func TestTransition_EmptySetAllowsPageOne(t *testing.T) {
	tr := newTestTransition(t, 0, 30)
	require.NoError(t, tr.Request(1))
	_, err := tr.Commit()
	require.NoError(t, err)

	require.ErrorIs(t, tr.Request(2), ErrPageOutOfRange)
}

func TestTransition_SecondRequestWhileLoadingIsDropped(t *testing.T) {
	tr := newTestTransition(t, 300, 30)

	require.NoError(t, tr.Request(2))
	err := tr.Request(5)
	require.ErrorIs(t, err, ErrTransitionBusy)
	assert.Equal(t, 2, tr.Target())

	page, err := tr.Commit()
	require.NoError(t, err)
	assert.Equal(t, 2, page, "only the first target is committed")
	assert.Equal(t, 2, tr.State().CurrentPage)
}

func TestTransition_Abort(t *testing.T) {
	tr := newTestTransition(t, 72, 30)
	require.NoError(t, tr.Request(2))
	require.NoError(t, tr.Abort())

	assert.Equal(t, PhaseIdle, tr.Phase())
	assert.Equal(t, 1, tr.State().CurrentPage)

	require.ErrorIs(t, tr.Abort(), ErrNoTransition)
	_, err := tr.Commit()
	require.ErrorIs(t, err, ErrNoTransition)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "unknown", Phase(9).String())
}

func TestSimulatedLatency(t *testing.T) {
	t.Run("zero latency returns immediately", func(t *testing.T) {
		require.NoError(t, SimulatedLatency(0)(context.Background(), 2))
	})

	t.Run("waits for the latency", func(t *testing.T) {
		start := time.Now()
		require.NoError(t, SimulatedLatency(20*time.Millisecond)(context.Background(), 2))
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("context cancellation ends the wait", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := SimulatedLatency(time.Hour)(ctx, 2)
		require.ErrorIs(t, err, context.Canceled)
	})
}
