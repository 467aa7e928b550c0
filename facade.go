package taglog

// Facade helpers using the global Singleton logger.
// Usage: taglog.Log(taglog.Tags("net|http"), "request served")

func Log(s Settings, args ...any)   { L().Log(s, args...) }
func Warn(s Settings, args ...any)  { L().Warn(s, args...) }
func Error(s Settings, args ...any) { L().Error(s, args...) }

// SetPattern installs a filter expression on the global logger.
func SetPattern(expr string) error { return L().SetPattern(expr) }

// ClearPattern removes filtering from the global logger.
func ClearPattern() { _ = L().SetPattern("") }
