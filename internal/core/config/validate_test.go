package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tuikit/internal/core/daterange"
	"github.com/colonyops/tuikit/internal/core/styles"
)

func TestSanitize(t *testing.T) {
	t.Run("valid config is untouched", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.Empty(t, cfg.Sanitize(zerolog.Nop()))
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("invalid values are replaced and logged", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := DefaultConfig()
		cfg.Theme = "solarized"
		cfg.Log.Level = "loud"
		cfg.DatePicker.Type = "week"
		cfg.DatePicker.SelectionMode = "hour"
		cfg.DatePicker.StartDate = "03/15/2024"
		cfg.DatePicker.Shortcuts = []string{"today", "someday"}
		cfg.DatePicker.MaxDays = -1
		cfg.Carousel.Interval = 10 * time.Millisecond

		got := cfg.Sanitize(zerolog.New(&buf))

		items := make([]string, len(got))
		for i, w := range got {
			items[i] = w.Item
		}
		assert.Equal(t, []string{
			"theme",
			"log.level",
			"date_picker.type",
			"date_picker.selection_mode",
			"date_picker.start_date",
			"date_picker.shortcuts",
			"date_picker.max_days",
			"carousel.interval",
		}, items)

		assert.Equal(t, styles.DefaultTheme, cfg.Theme)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, daterange.TypeDateRange, cfg.DatePicker.Type)
		assert.Equal(t, daterange.GranularityDate, cfg.DatePicker.SelectionMode)
		assert.Empty(t, cfg.DatePicker.StartDate)
		assert.Equal(t, []string{"today"}, cfg.DatePicker.Shortcuts)
		assert.Zero(t, cfg.DatePicker.MaxDays)
		assert.Equal(t, 8*time.Second, cfg.Carousel.Interval)

		assert.Contains(t, buf.String(), `"level":"warn"`)
		assert.Contains(t, buf.String(), "type property is not valid")
	})
}

func TestWarnings(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.Warnings())

	cfg.DatePicker.Type = daterange.TypeDate
	cfg.DatePicker.UpToNow = true
	cfg.Select.ShowAll = true
	cfg.Select.Options = append(cfg.Select.Options, OptionConfig{Value: "salt", Group: "Spice"})
	cfg.Collapse.Active = []string{"missing"}

	items := make([]string, 0)
	for _, w := range cfg.Warnings() {
		items = append(items, w.Item)
	}
	assert.Equal(t, []string{
		"date_picker.up_to_now",
		"select.show_all",
		"select.options[5]",
		"collapse.active",
	}, items)
}

func TestValidateDeep(t *testing.T) {
	t.Run("defaults pass", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.NoError(t, cfg.ValidateDeep(""))
	})

	t.Run("reports every bad field", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Theme = "solarized"
		cfg.DatePicker.Type = "week"
		cfg.DatePicker.Shortcuts = []string{"today", "someday"}
		cfg.Carousel.Interval = time.Millisecond

		err := cfg.ValidateDeep("")

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		fields := make([]string, len(fieldErrs))
		for i, fe := range fieldErrs {
			fields[i] = fe.Field
		}
		assert.ElementsMatch(t, []string{
			"theme",
			"date_picker.type",
			"date_picker.shortcuts[1]",
			"carousel.interval",
		}, fields)
	})

	t.Run("config path is a directory", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.ValidateDeep(t.TempDir())

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Equal(t, "config_file", fieldErrs[0].Field)
	})

	t.Run("log file under a regular file", func(t *testing.T) {
		parent := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(parent, nil, 0o644))

		cfg := DefaultConfig()
		cfg.Log.File = filepath.Join(parent, "tuikit.log")

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, cfg.ValidateDeep(""), &fieldErrs)
		assert.Equal(t, "log.file", fieldErrs[0].Field)
	})

	t.Run("structural error comes first", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Select.Options = []OptionConfig{{}}
		err := cfg.ValidateDeep("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is required")
	})
}
