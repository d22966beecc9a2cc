package output

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether the file is attached to a terminal, so callers
// can disable colors for pipes and redirects.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
