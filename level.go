package taglog

// Level identifies the output stream a log call is routed to. Routing is
// static per call site: the caller picked Log, Warn, or Error, and the
// level is never computed from content. Numeric values mirror slog.
type Level int

const (
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

func (l Level) String() string {
	switch {
	case l >= LevelError:
		return "error"
	case l >= LevelWarn:
		return "warn"
	default:
		return "info"
	}
}
