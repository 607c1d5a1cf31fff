// Package cliutil holds helpers shared by the command line tools.
package cliutil

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTty reports whether fd refers to a terminal.
func IsTty(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// IsInteractive reports whether r is a terminal the user would be typing
// into, as opposed to a pipe or a file.
func IsInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return IsTty(f.Fd())
}
