package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/tuikit/internal/core/config"
	"github.com/colonyops/tuikit/internal/core/daterange"
	"github.com/colonyops/tuikit/internal/core/logging"
	"github.com/colonyops/tuikit/internal/printer"
	"github.com/colonyops/tuikit/internal/tui/gallery"
	"github.com/colonyops/tuikit/pkg/iojson"
)

// Clock returns the clock the widgets use. With --now set, the day is fixed
// at noon local time so demos are reproducible.
func (f *Flags) Clock() (func() time.Time, error) {
	if f.Now == "" {
		return time.Now, nil
	}
	day, err := time.ParseInLocation(config.DateLayout, f.Now, time.Local)
	if err != nil {
		return nil, fmt.Errorf("parse --now %q: expected YYYY-MM-DD", f.Now)
	}
	fixed := day.Add(12 * time.Hour)
	return func() time.Time { return fixed }, nil
}

// runGallery runs the gallery program over pages and returns the final
// model.
func runGallery(ctx context.Context, flags *Flags, command string, cfg config.Config, watcher *gallery.ConfigWatcher, pages ...gallery.Page) (gallery.Model, error) {
	now, err := flags.Clock()
	if err != nil {
		return gallery.Model{}, err
	}

	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	ctx = logging.WithCommand(ctx, command)
	m := gallery.New(ctx, gallery.Options{
		Config:  cfg,
		Pages:   pages,
		Now:     now,
		Watcher: watcher,
		Width:   width,
	})

	log.Debug().Str("command", command).Int("width", width).Msg("starting widget program")
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return gallery.Model{}, fmt.Errorf("run %s: %w", command, err)
	}
	return final.(gallery.Model), nil
}

// outputFlag is the --json flag shared by the widget commands.
func outputFlag(dest *bool) cli.Flag {
	return &cli.BoolFlag{
		Name:        "json",
		Usage:       "print the result as JSON",
		Destination: dest,
	}
}

// cancelled reports a run the user quit without finishing.
func cancelled(ctx context.Context, c *cli.Command, asJSON bool) error {
	if asJSON {
		_ = iojson.WriteError(c.Root().Writer, "cancelled", nil)
	} else {
		printer.Ctx(ctx).Warnf("cancelled")
	}
	return cli.Exit("", 1)
}

// rangeResult is the JSON shape of a date range. Absent endpoints are null.
type rangeResult struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

func newRangeResult(r daterange.Range) rangeResult {
	var out rangeResult
	if !r.From.IsZero() {
		out.From = &r.From
	}
	if !r.To.IsZero() {
		out.To = &r.To
	}
	return out
}

func formatEndpoint(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateTime)
}

// formatValue renders a widget value for the text output.
func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case daterange.Range:
		if v.IsEmpty() {
			return ""
		}
		return formatEndpoint(v.From) + " → " + formatEndpoint(v.To)
	}
	return fmt.Sprint(v)
}

// jsonValue converts a widget value for the JSON output.
func jsonValue(v any) any {
	if r, ok := v.(daterange.Range); ok {
		return newRangeResult(r)
	}
	return v
}
