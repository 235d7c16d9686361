package sheet

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

var errStdinTerminal = errors.New("stdin is a terminal; pass a sheet file or pipe one in")

// readAll reads f, refusing an interactive terminal so a missing file
// argument does not hang waiting for input.
func readAll(f *os.File) ([]byte, error) {
	if term.IsTerminal(int(f.Fd())) {
		return nil, errStdinTerminal
	}
	return io.ReadAll(f)
}
