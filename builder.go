package taglog

// Config for constructing a Logger (Factory data structure).
type Config struct {
	Sink      Sink
	Pattern   string // optional initial filter expression; "" means no filtering
	Observers []Observer
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) WithSink(s Sink) *Builder {
	b.cfg.Sink = s
	return b
}

// WithPattern sets the initial filter expression, compiled by Build.
func (b *Builder) WithPattern(expr string) *Builder {
	b.cfg.Pattern = expr
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

// Build constructs the Logger (Factory + Builder). It fails when no sink
// was provided or when the initial pattern does not compile.
func (b *Builder) Build() (*Logger, error) {
	if b.cfg.Sink == nil {
		return nil, ErrNoSink
	}
	l := newLogger(b.cfg)
	if b.cfg.Pattern != "" {
		if err := l.SetPattern(b.cfg.Pattern); err != nil {
			return nil, err
		}
	}
	return l, nil
}
