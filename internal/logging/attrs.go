package logging

import "log/slog"

const (
	// FieldComponent is the standardized key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized key for run correlation identifiers.
	FieldRunID = "run_id"
	// FieldSource is the standardized key for scan source identifiers.
	FieldSource = "source"
	// FieldPath is the standardized key for document or file paths.
	FieldPath = "path"
	// FieldNode is the standardized key for registry node identifiers.
	FieldNode = "node"
)

func String(key, value string) slog.Attr { return slog.String(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Int64(key string, value int64) slog.Attr { return slog.Int64(key, value) }

func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// Args converts attrs to the variadic any form slog methods expect.
func Args(attrs ...slog.Attr) []any {
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	return args
}

// WithComponent returns a logger tagged with a standardized component
// attribute. A nil base falls back to the no-op logger.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}
