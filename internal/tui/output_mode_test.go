package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectOutputMode(t *testing.T) {
	tests := []struct {
		name       string
		forceColor bool
		noColor    bool
		plain      bool
		tty        bool
		env        map[string]string
		want       OutputMode
	}{
		{name: "tty", tty: true, want: OutputModeInteractive},
		{name: "pipe", tty: false, want: OutputModePlain},
		{name: "plain flag wins", plain: true, forceColor: true, tty: true, want: OutputModePlain},
		{name: "no color flag", noColor: true, tty: true, want: OutputModePlain},
		{name: "NO_COLOR env", tty: true, env: map[string]string{"NO_COLOR": "1"}, want: OutputModePlain},
		{name: "dumb terminal", tty: true, env: map[string]string{"TERM": "dumb"}, want: OutputModePlain},
		{name: "CI", tty: true, env: map[string]string{"CI": "true"}, want: OutputModeStyled},
		{name: "force color on pipe", forceColor: true, want: OutputModeStyled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "")
			t.Setenv("TERM", "xterm-256color")
			t.Setenv("CI", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			assert.Equal(t, tt.want, detectOutputMode(tt.forceColor, tt.noColor, tt.plain, tt.tty))
		})
	}
}

func TestOutputModeString(t *testing.T) {
	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "styled", OutputModeStyled.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
	assert.Equal(t, "unknown", OutputMode(9).String())
}
