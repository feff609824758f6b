package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"

	"github.com/colonyops/tuikit/internal/core/daterange"
	"github.com/colonyops/tuikit/internal/core/styles"
)

// MinCarouselInterval is the shortest autoplay interval accepted.
const MinCarouselInterval = time.Second

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Sanitize replaces invalid values with their defaults so a running
// program keeps working, logging each replacement at warn level. The
// replacements are returned in the order they were made.
func (c *Config) Sanitize(logger zerolog.Logger) []ValidationWarning {
	defaults := DefaultConfig()
	var out []ValidationWarning
	replace := func(category, item, msg string) {
		out = append(out, ValidationWarning{Category: category, Item: item, Message: msg})
		logger.Warn().Str("field", item).Msg(msg)
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		replace("Theme", "theme", fmt.Sprintf("unknown theme %q, using %s", c.Theme, defaults.Theme))
		c.Theme = defaults.Theme
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil || c.Log.Level == "" {
		replace("Log", "log.level", fmt.Sprintf("unknown log level %q, using %s", c.Log.Level, defaults.Log.Level))
		c.Log.Level = defaults.Log.Level
	}

	dp := &c.DatePicker
	if !dp.Type.IsValid() {
		replace("DatePicker", "date_picker.type", fmt.Sprintf("type property is not valid, using %s", defaults.DatePicker.Type))
		dp.Type = defaults.DatePicker.Type
	}
	if !dp.SelectionMode.IsValid() {
		replace("DatePicker", "date_picker.selection_mode", fmt.Sprintf("selectionMode property is not valid, using %s", defaults.DatePicker.SelectionMode))
		dp.SelectionMode = defaults.DatePicker.SelectionMode
	}
	if dp.StartDate != "" {
		if _, err := time.Parse(DateLayout, dp.StartDate); err != nil {
			replace("DatePicker", "date_picker.start_date", fmt.Sprintf("start date %q is not YYYY-MM-DD, using today", dp.StartDate))
			dp.StartDate = ""
		}
	}
	known := daterange.PresetNames()
	kept := dp.Shortcuts[:0]
	for _, name := range dp.Shortcuts {
		if !slices.Contains(known, name) {
			replace("DatePicker", "date_picker.shortcuts", fmt.Sprintf("unknown shortcut %q dropped", name))
			continue
		}
		kept = append(kept, name)
	}
	dp.Shortcuts = kept
	if dp.MaxDays < 0 {
		replace("DatePicker", "date_picker.max_days", "max_days cannot be negative, ignoring")
		dp.MaxDays = 0
	}

	if c.Carousel.Interval < MinCarouselInterval {
		replace("Carousel", "carousel.interval", fmt.Sprintf("interval %s is below %s, using %s", c.Carousel.Interval, MinCarouselInterval, defaults.Carousel.Interval))
		c.Carousel.Interval = defaults.Carousel.Interval
	}

	return out
}

// Warnings returns configuration that is valid but probably not what was
// meant.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.DatePicker.UpToNow && !isRangeType(c.DatePicker.Type) {
		warnings = append(warnings, ValidationWarning{
			Category: "DatePicker",
			Item:     "date_picker.up_to_now",
			Message:  fmt.Sprintf("up_to_now has no effect for type %s", c.DatePicker.Type),
		})
	}
	if c.Select.ShowAll && !c.Select.Multiple {
		warnings = append(warnings, ValidationWarning{
			Category: "Select",
			Item:     "select.show_all",
			Message:  "show_all has no effect without multiple",
		})
	}
	for i, o := range c.Select.Options {
		if o.Group != "" && !slices.Contains(c.Select.Groups, o.Group) {
			warnings = append(warnings, ValidationWarning{
				Category: "Select",
				Item:     fmt.Sprintf("select.options[%d]", i),
				Message:  fmt.Sprintf("group %q is not listed in select.groups", o.Group),
			})
		}
	}
	for _, name := range c.Collapse.Active {
		if !slices.ContainsFunc(c.Collapse.Items, func(it CollapseItem) bool { return it.Name == name }) {
			warnings = append(warnings, ValidationWarning{
				Category: "Collapse",
				Item:     "collapse.active",
				Message:  fmt.Sprintf("no item named %q", name),
			})
		}
	}

	return warnings
}

// ValidateDeep reports every invalid value as a field error instead of
// substituting it, and checks the config and log file paths. The
// configPath argument is the config file location (empty skips the check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("theme", c.Theme, knownTheme),
		criterio.Run("log.level", c.Log.Level, logLevel),
		criterio.Run("log.file", c.Log.File, parentIsDirectory),
		c.validateDatePicker(),
		c.validateCarousel(),
	)
}

func (c *Config) validateDatePicker() error {
	dp := c.DatePicker
	var errs criterio.FieldErrorsBuilder

	if !dp.Type.IsValid() {
		errs = errs.Append("date_picker.type", fmt.Errorf("invalid type %q", dp.Type))
	}
	if !dp.SelectionMode.IsValid() {
		errs = errs.Append("date_picker.selection_mode", fmt.Errorf("invalid selection mode %q", dp.SelectionMode))
	}
	if dp.StartDate != "" {
		if _, err := time.Parse(DateLayout, dp.StartDate); err != nil {
			errs = errs.Append("date_picker.start_date", fmt.Errorf("expected YYYY-MM-DD: %w", err))
		}
	}
	known := daterange.PresetNames()
	for i, name := range dp.Shortcuts {
		if !slices.Contains(known, name) {
			errs = errs.Append(fmt.Sprintf("date_picker.shortcuts[%d]", i), fmt.Errorf("unknown shortcut %q, want one of %v", name, known))
		}
	}
	if dp.MaxDays < 0 {
		errs = errs.Append("date_picker.max_days", fmt.Errorf("cannot be negative"))
	}

	return errs.ToError()
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q, want one of %v", name, styles.ThemeNames())
	}
	return nil
}

func logLevel(level string) error {
	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("invalid level %q", level)
	}
	return nil
}

func (c *Config) validateCarousel() error {
	if c.Carousel.Interval < MinCarouselInterval {
		return criterio.NewFieldErrors("carousel.interval", fmt.Errorf("must be at least %s", MinCarouselInterval))
	}
	return nil
}

// parentIsDirectory validates that a file's directory exists or can be
// created.
func parentIsDirectory(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(filepath.Dir(path))
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("parent exists but is not a directory")
	}
	return nil
}

func isRangeType(t daterange.PickerType) bool {
	switch t {
	case daterange.TypeDateRange, daterange.TypeDateTimeRange, daterange.TypeTimeRange:
		return true
	default:
		return false
	}
}
