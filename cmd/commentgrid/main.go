package main

import (
	"errors"
	"os"

	"github.com/rshade/commentgrid/internal/cli"
	"github.com/rshade/commentgrid/internal/pagination"
	"github.com/rshade/commentgrid/pkg/version"
)

// Process exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCmd(version.Full())
	return exitCode(root.Execute())
}

// exitCode maps a command error to the process exit status. Bad page or page
// size arguments exit with exitUsage.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, pagination.ErrInvalidPage),
		errors.Is(err, pagination.ErrInvalidPageSize),
		errors.Is(err, pagination.ErrPageOutOfRange):
		return exitUsage
	default:
		return exitError
	}
}
