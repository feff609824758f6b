package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tuikit/internal/core/config"
	"github.com/colonyops/tuikit/internal/printer"
	"github.com/colonyops/tuikit/internal/tui/gallery"
	"github.com/colonyops/tuikit/pkg/iojson"
)

type SelectCmd struct {
	flags *Flags

	multiple    bool
	showAll     bool
	allowCreate bool
	options     []string
	json        bool
}

// NewSelectCmd creates a new select command.
func NewSelectCmd(flags *Flags) *SelectCmd {
	return &SelectCmd{flags: flags}
}

// Register adds the select command to the application.
func (cmd *SelectCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "select",
		Usage:     "Choose from a searchable list and print the choice",
		UsageText: "tuikit select [options] [--option value ...]",
		Description: `Opens the searchable select. Type to filter, enter to choose. A single
select exits on the first choice; with --multiple press ctrl+s when done.

Options come from the select section of the config file unless --option is
given. Flags override the config.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "multiple",
				Aliases:     []string{"m"},
				Usage:       "allow several values",
				Destination: &cmd.multiple,
			},
			&cli.BoolFlag{
				Name:        "show-all",
				Usage:       "add an \"All\" entry (with --multiple)",
				Destination: &cmd.showAll,
			},
			&cli.BoolFlag{
				Name:        "allow-create",
				Usage:       "accept values typed into the search box",
				Destination: &cmd.allowCreate,
			},
			&cli.StringSliceFlag{
				Name:        "option",
				Aliases:     []string{"o"},
				Usage:       "option value, repeatable; replaces the configured options",
				Destination: &cmd.options,
			},
			outputFlag(&cmd.json),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SelectCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := *cmd.flags.Config
	sc := &cfg.Select

	if c.IsSet("multiple") {
		sc.Multiple = cmd.multiple
	}
	if c.IsSet("show-all") {
		sc.ShowAll = cmd.showAll
	}
	if c.IsSet("allow-create") {
		sc.AllowCreate = cmd.allowCreate
	}
	if len(cmd.options) > 0 {
		sc.Groups = nil
		sc.Options = make([]config.OptionConfig, 0, len(cmd.options))
		seen := make(map[string]bool, len(cmd.options))
		for _, o := range cmd.options {
			if o == "" || seen[o] {
				return fmt.Errorf("invalid --option %q: values must be unique and non-empty", o)
			}
			seen[o] = true
			sc.Options = append(sc.Options, config.OptionConfig{Value: o, Label: o})
		}
	}
	if sc.ShowAll && !sc.Multiple {
		return fmt.Errorf("--show-all requires --multiple")
	}

	m, err := runGallery(ctx, cmd.flags, "select", cfg, nil, gallery.PageSelect)
	if err != nil {
		return err
	}
	if m.Cancelled() {
		return cancelled(ctx, c, cmd.json)
	}

	values, _ := m.Result().([]string)
	if cmd.json {
		if values == nil {
			values = []string{}
		}
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, map[string]any{"values": values})
	}

	p := printer.Ctx(ctx)
	for _, v := range values {
		p.Printf("%s", v)
	}
	return nil
}
