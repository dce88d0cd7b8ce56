package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/calvinalkan/arrfill/internal/config"
)

// IO handles command output. Stdout carries results only; errors go to
// stderr behind an "error:" prefix that may be coloured.
type IO struct {
	out       io.Writer
	errOut    io.Writer
	errPrefix string
}

// NewIO creates a new IO instance with an uncoloured error prefix.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut, errPrefix: "error:"}
}

// SetColor resolves the colour mode against errOut and env and updates the
// error prefix accordingly.
func (o *IO) SetColor(mode string, env map[string]string) {
	prefix := color.New(color.FgRed, color.Bold)

	if colorEnabled(mode, o.errOut, env) {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}

	o.errPrefix = prefix.Sprint("error:")
}

func colorEnabled(mode string, w io.Writer, env map[string]string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if _, ok := env["NO_COLOR"]; ok || env["TERM"] == "dumb" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Out returns the stdout writer.
func (o *IO) Out() io.Writer {
	return o.out
}

// ErrOut returns the stderr writer.
func (o *IO) ErrOut() io.Writer {
	return o.errOut
}

// Println writes to stdout.
func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Error writes err to stderr behind the error prefix.
func (o *IO) Error(err error) {
	_, _ = fmt.Fprintln(o.errOut, o.errPrefix, err)
}
