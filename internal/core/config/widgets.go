package config

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/tuikit/internal/core/choice"
	"github.com/colonyops/tuikit/internal/core/daterange"
)

// Options builds controller options from the picker config. Unknown
// shortcut names are skipped; Sanitize reports them.
func (c DatePickerConfig) Options(now func() time.Time, logger *zerolog.Logger) daterange.Options {
	if now == nil {
		now = time.Now
	}

	opts := daterange.DefaultOptions()
	opts.Type = c.Type
	opts.SelectionMode = c.SelectionMode
	opts.SplitPanels = c.SplitPanels == nil || *c.SplitPanels
	opts.UpToNow = c.UpToNow
	opts.ShortcutClose = c.ShortcutClose
	opts.Now = now
	opts.Logger = logger

	if c.StartDate != "" {
		if t, err := time.ParseInLocation(DateLayout, c.StartDate, now().Location()); err == nil {
			opts.StartDate = t
		}
	}
	for _, name := range c.Shortcuts {
		if s, ok := daterange.Preset(name, now); ok {
			opts.Shortcuts = append(opts.Shortcuts, s)
		}
	}
	return opts
}

// ChoiceConfig builds the selection model config. Values are the option
// strings; "all" is the sentinel when ShowAll is set.
func (c SelectConfig) ChoiceConfig(logger *zerolog.Logger) choice.Config[string] {
	cfg := choice.DefaultConfig[string]()
	cfg.Multiple = c.Multiple
	cfg.Filterable = c.Filterable == nil || *c.Filterable
	cfg.AllowCreate = c.AllowCreate
	cfg.KeepSearchValue = c.KeepSearchValue
	cfg.ShowAll = c.ShowAll
	cfg.AllOptionID = "all"
	cfg.AllLabel = "All"
	cfg.Logger = logger
	return cfg
}

// ChoiceOptions converts the configured options in file order.
func (c SelectConfig) ChoiceOptions() []choice.Option[string] {
	out := make([]choice.Option[string], len(c.Options))
	for i, o := range c.Options {
		out[i] = choice.Option[string]{
			ID:       o.Value,
			Name:     o.Label,
			Group:    o.Group,
			Disabled: o.Disabled,
		}
	}
	return out
}

// ChoiceGroups converts the configured group names.
func (c SelectConfig) ChoiceGroups() []choice.Group {
	out := make([]choice.Group, len(c.Groups))
	for i, g := range c.Groups {
		out[i] = choice.Group{Name: g, Label: g}
	}
	return out
}
