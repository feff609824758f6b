package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tuikit/internal/core/logging"
	"github.com/colonyops/tuikit/internal/tui/gallery"
)

type GalleryCmd struct {
	flags *Flags
	watch bool
	page  string
}

// NewGalleryCmd creates a new gallery command.
func NewGalleryCmd(flags *Flags) *GalleryCmd {
	return &GalleryCmd{flags: flags}
}

// Flags returns the gallery flags for registration on the root command.
func (cmd *GalleryCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "watch",
			Usage:       "reload the config file when it changes",
			Sources:     cli.EnvVars("TUIKIT_WATCH"),
			Destination: &cmd.watch,
		},
		&cli.StringFlag{
			Name:        "page",
			Usage:       "page to open first (daterange, select, form, collapse, carousel)",
			Destination: &cmd.page,
		},
	}
}

// Register adds the gallery command to the application.
func (cmd *GalleryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "gallery",
		Usage:     "Browse every widget",
		UsageText: "tuikit gallery [options]",
		Description: `Hosts every widget on its own page. f3/f4 switch pages, f1 shows the
keys of the current widget and f2 the events the widgets emitted.`,
		Flags:  cmd.Flags(),
		Action: cmd.run,
	})

	return app
}

// Run executes the gallery. Exported for use as default command.
func (cmd *GalleryCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *GalleryCmd) run(ctx context.Context, _ *cli.Command) error {
	pages := gallery.Pages()
	if cmd.page != "" {
		first, ok := gallery.ParsePage(cmd.page)
		if !ok {
			return fmt.Errorf("unknown page %q", cmd.page)
		}
		// Rotate so the requested page opens first and tab order is kept.
		pages = append(pages[first:], pages[:first]...)
	}

	var watcher *gallery.ConfigWatcher
	if cmd.watch {
		w, err := gallery.NewConfigWatcher(cmd.flags.ConfigPath, logging.Component("watcher"))
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		defer func() {
			if err := w.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close config watcher")
			}
		}()
		watcher = w
	}

	_, err := runGallery(ctx, cmd.flags, "gallery", *cmd.flags.Config, watcher, pages...)
	return err
}
