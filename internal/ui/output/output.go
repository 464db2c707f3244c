// Package output provides utilities for creating termenv.Output with consistent
// color profile and TTY handling across the CLI.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/mrjar/internal/core/domain"
	"go.trai.ch/mrjar/internal/ui/style"
)

// ColorProfile returns the color profile for the current environment.
// It checks if NO_COLOR is set, returning Ascii if so.
// Otherwise, it detects the terminal's capabilities automatically.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a new termenv.Output with the specific profile logic.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Printer renders build results.
type Printer struct {
	out *termenv.Output
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: New(w)}
}

// Pass prints one line per executed pass: icon, name and status.
func (p *Printer) Pass(name string, status domain.PassStatus) {
	icon, color := style.ForStatus(status)
	c := p.out.Color(string(color))
	_, _ = fmt.Fprintf(p.out, "%s %-32s %s\n",
		p.out.String(icon).Foreground(c),
		name,
		p.out.String(string(status)).Foreground(c),
	)
}

// Detail prints an indented key/value line.
func (p *Printer) Detail(key, value string) {
	_, _ = fmt.Fprintf(p.out, "   %s %s\n", p.out.String(key+":").Foreground(p.out.Color(string(style.Slate))), value)
}
