package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/tuikit/internal/core/config"
	"github.com/colonyops/tuikit/internal/printer"
	"github.com/colonyops/tuikit/pkg/iojson"
)

type ConfigCmd struct {
	flags  *Flags
	format string
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config commands to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "tuikit config validate [options]",
				Description: "Reports every invalid value in the configuration file. The widgets fall back to defaults for these values at runtime; this command lists them instead.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runValidate,
			},
			{
				Name:        "show",
				Usage:       "Print the effective configuration",
				UsageText:   "tuikit config show",
				Description: "Prints the configuration as loaded, after defaults and fallbacks were applied.",
				Action:      cmd.runShow,
			},
		},
	})

	return app
}

// fieldError is one invalid config value.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationReport struct {
	Path     string                     `json:"path"`
	Valid    bool                       `json:"valid"`
	Errors   []fieldError               `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

// validate checks the file as written. The config in flags has already been
// sanitized, so the file is loaded again.
func (cmd *ConfigCmd) validate() validationReport {
	report := validationReport{Path: cmd.flags.ConfigPath}

	raw, err := config.Load(cmd.flags.ConfigPath)
	if err != nil {
		report.Errors = append(report.Errors, fieldError{Field: "config_file", Message: err.Error()})
		return report
	}

	if err := raw.ValidateDeep(cmd.flags.ConfigPath); err != nil {
		var fieldErrs criterio.FieldErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				report.Errors = append(report.Errors, fieldError{Field: fe.Field, Message: fe.Err.Error()})
			}
		} else {
			report.Errors = append(report.Errors, fieldError{Field: "config", Message: err.Error()})
		}
	}

	report.Warnings = raw.Warnings()
	report.Valid = len(report.Errors) == 0
	return report
}

func (cmd *ConfigCmd) runValidate(ctx context.Context, c *cli.Command) error {
	report := cmd.validate()

	switch cmd.format {
	case "json":
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, report); err != nil {
			return err
		}
		if !report.Valid {
			return cli.Exit("", 1)
		}
		return nil
	case "text":
		return outputValidationText(printer.Ctx(ctx), report)
	default:
		return fmt.Errorf("invalid --format %q: must be text or json", cmd.format)
	}
}

func outputValidationText(p *printer.Printer, report validationReport) error {
	p.Infof("Config file: %s", report.Path)

	for _, warn := range report.Warnings {
		p.Warnf("%s: %s", warn.Category, warn.Message)
		if warn.Item != "" {
			p.Printf("  Item: %s", warn.Item)
		}
	}

	for _, err := range report.Errors {
		p.Errorf("%s: %s", err.Field, err.Message)
	}

	p.Printf("")
	if report.Valid {
		p.Successf("Configuration is valid")
		return nil
	}

	p.Errorf("%d error(s) found", len(report.Errors))
	return cli.Exit("", 1)
}

func (cmd *ConfigCmd) runShow(_ context.Context, c *cli.Command) error {
	out, err := yaml.Marshal(cmd.flags.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = c.Root().Writer.Write(out)
	return err
}
