package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Loading messages.
const (
	msgLoading     = "Loading..."
	msgLoadingPage = "Loading page..."
)

// LoadingState is a spinner with a caption.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState returns a dot spinner captioned with message.
func NewLoadingState(message string) *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorSpinner)
	return &LoadingState{spinner: s, message: message}
}

// Init starts the spinner.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on its tick messages.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// Message returns the caption.
func (l *LoadingState) Message() string {
	return l.message
}

// SetMessage replaces the caption.
func (l *LoadingState) SetMessage(message string) {
	l.message = message
}

// RenderLoading returns the spinner line, or plain "Loading..." when loading is nil.
func RenderLoading(loading *LoadingState) string {
	if loading == nil {
		return msgLoading
	}
	return fmt.Sprintf("%s %s", loading.spinner.View(), loading.message)
}
