package taglog

import "errors"

var (
	// ErrNoSink is returned by Builder.Build when no sink was configured.
	ErrNoSink = errors.New("taglog: no sink configured")

	// ErrMalformedPattern wraps every pattern compilation failure.
	// Use errors.Is to detect it regardless of the specific cause.
	ErrMalformedPattern = errors.New("malformed pattern")
)
