package pagination

import (
	"errors"
)

// Errors returned by a Sequence. Errors returned by a Fetcher are passed
// through unmodified and never wrapped in one of these.
var (
	// ErrExhausted is returned by Next when no further element will be yielded,
	// either because the data ran out or because the configured limit was reached.
	ErrExhausted = errors.New("sequence exhausted")

	// ErrIndexOutOfRange is returned by At for negative indices and for indices
	// at or past the length of the sequence.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidConfig is returned by NewSequence when the configuration is unusable.
	ErrInvalidConfig = errors.New("invalid sequence config")

	// ErrMalformedPage is returned when a response claims to be a page envelope
	// but cannot be used as one.
	ErrMalformedPage = errors.New("malformed page")
)
