// Package config handles configuration loading and validation for tuikit.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/tuikit/internal/core/daterange"
	"github.com/colonyops/tuikit/internal/core/styles"
)

// DateLayout is the layout of dates in the config file.
const DateLayout = "2006-01-02"

// Config holds the application configuration.
type Config struct {
	Theme        string           `yaml:"theme"`
	EventLogSize int              `yaml:"event_log_size"`
	Log          LogConfig        `yaml:"log"`
	DatePicker   DatePickerConfig `yaml:"date_picker"`
	Select       SelectConfig     `yaml:"select"`
	Carousel     CarouselConfig   `yaml:"carousel"`
	Collapse     CollapseConfig   `yaml:"collapse"`
}

// LogConfig controls the log output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DatePickerConfig configures the date range picker.
type DatePickerConfig struct {
	Type          daterange.PickerType  `yaml:"type"`
	SelectionMode daterange.Granularity `yaml:"selection_mode"`
	SplitPanels   *bool                 `yaml:"split_panels"`
	UpToNow       bool                  `yaml:"up_to_now"`
	ShortcutClose bool                  `yaml:"shortcut_close"`
	StartDate     string                `yaml:"start_date"` // YYYY-MM-DD, empty means today
	Shortcuts     []string              `yaml:"shortcuts"`  // preset names, see daterange.PresetNames
	MaxDays       int                   `yaml:"max_days"`   // form validation only
}

// SelectConfig configures the select.
type SelectConfig struct {
	Multiple        bool           `yaml:"multiple"`
	Filterable      *bool          `yaml:"filterable"`
	AllowCreate     bool           `yaml:"allow_create"`
	KeepSearchValue bool           `yaml:"keep_search_value"`
	ShowAll         bool           `yaml:"show_all"`
	Placeholder     string         `yaml:"placeholder"`
	Height          int            `yaml:"height"`
	Window          int            `yaml:"window"`
	Groups          []string       `yaml:"groups"`
	Options         []OptionConfig `yaml:"options"`
}

// OptionConfig is one select option.
type OptionConfig struct {
	Value    string `yaml:"value"`
	Label    string `yaml:"label"`
	Group    string `yaml:"group"`
	Disabled bool   `yaml:"disabled"`
}

// CarouselConfig configures the carousel.
type CarouselConfig struct {
	Loop     *bool          `yaml:"loop"`
	Interval time.Duration  `yaml:"interval"`
	Items    []CarouselItem `yaml:"items"`
}

// CarouselItem is one carousel slide.
type CarouselItem struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// CollapseConfig configures the collapse panels.
type CollapseConfig struct {
	Accordion bool           `yaml:"accordion"`
	Markdown  bool           `yaml:"markdown"` // render panel content as markdown
	Active    []string       `yaml:"active"`
	Items     []CollapseItem `yaml:"items"`
}

// CollapseItem is one collapse panel.
type CollapseItem struct {
	Name    string `yaml:"name"`
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:        styles.DefaultTheme,
		EventLogSize: 200,
		Log: LogConfig{
			Level: "info",
		},
		DatePicker: DatePickerConfig{
			Type:          daterange.TypeDateRange,
			SelectionMode: daterange.GranularityDate,
			SplitPanels:   ptr(true),
			Shortcuts:     []string{"today", "last-7-days", "last-30-days", "this-month"},
		},
		Select: SelectConfig{
			Filterable:  ptr(true),
			Placeholder: "Select",
			Height:      8,
			Options: []OptionConfig{
				{Value: "apple", Label: "Apple", Group: "Fruit"},
				{Value: "banana", Label: "Banana", Group: "Fruit"},
				{Value: "cherry", Label: "Cherry", Group: "Fruit"},
				{Value: "carrot", Label: "Carrot", Group: "Vegetable"},
				{Value: "leek", Label: "Leek", Group: "Vegetable", Disabled: true},
			},
			Groups: []string{"Fruit", "Vegetable"},
		},
		Carousel: CarouselConfig{
			Loop:     ptr(true),
			Interval: 8 * time.Second,
			Items: []CarouselItem{
				{Title: "Ranges", Body: "Pick a start and an end across two linked calendars."},
				{Title: "Search", Body: "Type to filter options, pinyin included."},
				{Title: "Panels", Body: "Collapse panels open one at a time in accordion mode."},
			},
		},
		Collapse: CollapseConfig{
			Accordion: true,
			Markdown:  true,
			Active:    []string{"keys"},
			Items: []CollapseItem{
				{Name: "keys", Title: "Keys", Content: "Press **f1** for the key map of the current widget."},
				{Name: "events", Title: "Events", Content: "Press **f2** to open the event log."},
				{Name: "config", Title: "Config", Content: "Run `tuikit config validate` to check this file."},
			},
		},
	}
}

// Load reads configuration from the given path. A missing file yields the
// defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.EventLogSize <= 0 {
		c.EventLogSize = defaults.EventLogSize
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.DatePicker.Type == "" {
		c.DatePicker.Type = defaults.DatePicker.Type
	}
	if c.DatePicker.SelectionMode == "" {
		c.DatePicker.SelectionMode = defaults.DatePicker.SelectionMode
	}
	if c.DatePicker.SplitPanels == nil {
		c.DatePicker.SplitPanels = defaults.DatePicker.SplitPanels
	}
	if c.Select.Filterable == nil {
		c.Select.Filterable = defaults.Select.Filterable
	}
	if c.Select.Height <= 0 {
		c.Select.Height = defaults.Select.Height
	}
	if c.Carousel.Loop == nil {
		c.Carousel.Loop = defaults.Carousel.Loop
	}
	if c.Carousel.Interval == 0 {
		c.Carousel.Interval = defaults.Carousel.Interval
	}
}

// Validate checks the structural problems that leave nothing to fall back
// to. Bad enum values are not errors here; Sanitize replaces them.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Select.Options))
	for i, o := range c.Select.Options {
		if o.Value == "" {
			return fmt.Errorf("select.options[%d]: value is required", i)
		}
		if seen[o.Value] {
			return fmt.Errorf("select.options[%d]: duplicate value %q", i, o.Value)
		}
		seen[o.Value] = true
	}

	names := make(map[string]bool, len(c.Collapse.Items))
	for i, it := range c.Collapse.Items {
		if it.Name == "" {
			return fmt.Errorf("collapse.items[%d]: name is required", i)
		}
		if names[it.Name] {
			return fmt.Errorf("collapse.items[%d]: duplicate name %q", i, it.Name)
		}
		names[it.Name] = true
	}

	if c.Carousel.Interval < 0 {
		return fmt.Errorf("carousel.interval cannot be negative")
	}

	return nil
}

func ptr[T any](v T) *T { return &v }
