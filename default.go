package taglog

// Default creates a logger writing unfiltered to the console sink.
func Default() *Logger {
	l, _ := NewBuilder().WithSink(NewConsoleSink()).Build()
	return l
}

// New creates a default logger (via Default()) and sets it as global.
// It returns the global logger for convenience.
func New() *Logger {
	l := Default()
	SetGlobal(l)
	return l
}

// UseSink sets a logger backed by the given sink as global. One line,
// explicit, no envs. It returns the logger for convenience.
func UseSink(s Sink, observers ...Observer) *Logger {
	l, _ := NewBuilder().WithSink(s).Build()
	for _, o := range observers {
		l.AddObserver(o)
	}
	SetGlobal(l)
	return l
}
