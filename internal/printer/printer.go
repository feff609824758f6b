// Package printer writes status lines and tables for the non-interactive
// command output.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

type ctxKey struct{}

// Printer writes prefixed, colored lines to a writer.
type Printer struct {
	out     io.Writer
	success *color.Color
	info    *color.Color
	warn    *color.Color
	err     *color.Color
	bold    *color.Color
	faint   *color.Color
}

// New creates a printer. Colors are only used when out is the terminal
// stdout and the environment allows them.
func New(out io.Writer) *Printer {
	p := &Printer{
		out:     out,
		success: color.New(color.FgGreen),
		info:    color.New(color.FgCyan),
		warn:    color.New(color.FgYellow),
		err:     color.New(color.FgRed, color.Bold),
		bold:    color.New(color.Bold),
		faint:   color.New(color.Faint),
	}
	if out != os.Stdout {
		for _, c := range []*color.Color{p.success, p.info, p.warn, p.err, p.bold, p.faint} {
			c.DisableColor()
		}
	}
	return p
}

// NewContext returns ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer carried by ctx, or a stdout printer.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) line(c *color.Color, prefix, format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, c.Sprint(prefix)+" "+fmt.Sprintf(format, args...))
}

// Successf prints a line marked as passed.
func (p *Printer) Successf(format string, args ...any) { p.line(p.success, "✔", format, args...) }

// Infof prints an informational line.
func (p *Printer) Infof(format string, args ...any) { p.line(p.info, "•", format, args...) }

// Warnf prints a warning line.
func (p *Printer) Warnf(format string, args ...any) { p.line(p.warn, "●", format, args...) }

// Errorf prints a line marked as failed.
func (p *Printer) Errorf(format string, args ...any) { p.line(p.err, "✘", format, args...) }

// Printf prints an unmarked line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, fmt.Sprintf(format, args...))
}

// Section prints a bold heading.
func (p *Printer) Section(title string) {
	_, _ = fmt.Fprintln(p.out, p.bold.Sprint(title))
}

// Table prints rows as aligned key/value pairs with right-aligned keys.
// Empty values print as a faint dash.
func (p *Printer) Table(rows [][2]string) {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range rows {
		v := r[1]
		if v == "" {
			v = p.faint.Sprint("-")
		}
		tbl.AddRow(p.bold.Sprint(r[0]), v)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(p.out, tbl)
}
