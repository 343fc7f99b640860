package console

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Reporter writes line-oriented demo output. Section headers are bold
// only when the destination is a terminal.
type Reporter struct {
	w    io.Writer
	bold bool
}

func NewReporter(w io.Writer) *Reporter {
	bold := false
	if f, ok := w.(*os.File); ok {
		bold = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Reporter{w: w, bold: bold}
}

func (r *Reporter) Section(title string) {
	if r.bold {
		fmt.Fprintf(r.w, "\x1b[1m%s\x1b[0m\n", title)
		return
	}
	fmt.Fprintf(r.w, "%s\n", title)
}

func (r *Reporter) Lines(lines []string) {
	for _, line := range lines {
		fmt.Fprintf(r.w, "  %s\n", line)
	}
}
