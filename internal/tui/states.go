package tui

// ViewState is the top-level screen the model is showing.
type ViewState int

const (
	// ViewStateLoading is shown until the record set arrives.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the table and the footer controls.
	ViewStateList
	// ViewStateQuitting renders nothing while the program exits.
	ViewStateQuitting
)

// Key bindings.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyLeft     = "left"
	keyRight    = "right"
	keyH        = "h"
	keyL        = "l"
	keyPgUp     = "pgup"
	keyPgDown   = "pgdown"
	keyHome     = "home"
	keyEnd      = "end"
	keyG        = "g"
	keyShiftG   = "G"
)

// Layout.
const (
	defaultWidth  = 120
	defaultHeight = 40
	minHeight     = 5

	// chromeHeight is the space taken by everything but the table body.
	chromeHeight = 9

	colWidthID    = 6
	colWidthName  = 28
	colWidthEmail = 28
	minBodyWidth  = 20
	cellPadding   = 2
)
