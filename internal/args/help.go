package args

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

const (
	fallbackWidth = 80
	helpIndent    = "        "
)

// helpWidth picks the wrap width for help text from the terminal attached to
// w, falling back to a fixed width for pipes and tests.
func helpWidth(w io.Writer) uint {
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > len(helpIndent)+20 {
			return uint(cols)
		}
	}
	return fallbackWidth
}

// RenderHelp writes the banner followed by the name and help text of every
// registered spec, in registration order.
func (r *Registry) RenderHelp(w io.Writer, banner string) {
	width := helpWidth(w)
	bold := color.New(color.Bold)
	argName := color.New(color.FgCyan)

	fmt.Fprintln(w, bold.Sprint(banner))
	fmt.Fprintln(w)
	for _, s := range r.specs {
		wrapped := wordwrap.WrapString(strings.TrimSpace(s.Help), width-uint(len(helpIndent)))
		lines := strings.Split(wrapped, "\n")
		fmt.Fprintf(w, "%s: %s\n", argName.Sprint(s.Name), lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(w, "%s%s\n", helpIndent, line)
		}
	}
}
