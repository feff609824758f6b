package logging

import "context"

type contextKey string

const (
	commandKey contextKey = "command"
	widgetKey  contextKey = "widget"
)

// WithCommand adds the running subcommand name to the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// WithWidget adds the hosted widget name to the context.
func WithWidget(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, widgetKey, name)
}

// GetCommand retrieves the subcommand name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if v, ok := ctx.Value(commandKey).(string); ok {
		return v
	}
	return ""
}

// GetWidget retrieves the widget name from the context.
// Returns empty string if not present.
func GetWidget(ctx context.Context) string {
	if v, ok := ctx.Value(widgetKey).(string); ok {
		return v
	}
	return ""
}
