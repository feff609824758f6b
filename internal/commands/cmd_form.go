package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tuikit/internal/printer"
	"github.com/colonyops/tuikit/internal/tui/gallery"
	"github.com/colonyops/tuikit/pkg/iojson"
)

// formFields is the field order of the demo form.
var formFields = []string{"name", "favourite", "trip", "notes"}

type FormCmd struct {
	flags *Flags
	json  bool
}

// NewFormCmd creates a new form command.
func NewFormCmd(flags *Flags) *FormCmd {
	return &FormCmd{flags: flags}
}

// Register adds the form command to the application.
func (cmd *FormCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "form",
		Usage:     "Fill in a form built from the widgets",
		UsageText: "tuikit form [options]",
		Description: `Opens a form with a text field, a select, a date range and a notes
area. tab moves between fields, enter on the last field submits, esc cancels.
Inside the date range "w" switches panels.`,
		Flags:  []cli.Flag{outputFlag(&cmd.json)},
		Action: cmd.run,
	})

	return app
}

func (cmd *FormCmd) run(ctx context.Context, c *cli.Command) error {
	m, err := runGallery(ctx, cmd.flags, "form", *cmd.flags.Config, nil, gallery.PageForm)
	if err != nil {
		return err
	}

	values, _ := m.Result().(map[string]any)
	if m.Cancelled() || values == nil {
		return cancelled(ctx, c, cmd.json)
	}

	if cmd.json {
		out := make(map[string]any, len(values))
		for k, v := range values {
			out[k] = jsonValue(v)
		}
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, out)
	}

	rows := make([][2]string, 0, len(formFields))
	for _, name := range formFields {
		rows = append(rows, [2]string{name, formatValue(values[name])})
	}
	printer.Ctx(ctx).Table(rows)
	return nil
}
