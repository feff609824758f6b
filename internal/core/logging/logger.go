// Package logging holds zerolog helpers shared by the commands and widgets.
package logging

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// Widget returns a component logger for a widget that also carries the
// command and widget names found in ctx. Widgets take it by pointer in
// their options.
func Widget(ctx context.Context, name string) *zerolog.Logger {
	l := Component(name).Hook(ContextHook{}).With().Ctx(WithWidget(ctx, name)).Logger()
	return &l
}
