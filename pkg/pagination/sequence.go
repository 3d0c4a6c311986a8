package pagination

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/Sternrassler/drf-depaginator/pkg/logging"
	"github.com/rs/zerolog"
)

// NoLimit disables the element limit of a Sequence.
const NoLimit = -1

// Config holds sequence configuration.
//
// Start from DefaultConfig: the zero value has Limit 0 and yields nothing.
type Config struct {
	// Limit caps the number of elements ever yielded, independent of page size.
	// Any negative value (see NoLimit) means unlimited. Zero yields nothing.
	Limit int

	// Offset is the absolute index of the first element to yield.
	// Elements before it are fetched (they share pages) but never yielded.
	Offset int

	// Name identifies the fetcher in log entries.
	// Derived from the fetcher when empty.
	Name string

	// Timeout bounds every single fetch call. Zero disables it.
	Timeout time.Duration

	// Logger receives diagnostics. Defaults to the "pagination" component logger.
	Logger *zerolog.Logger
}

// DefaultConfig returns an unlimited configuration starting at offset 0.
func DefaultConfig() Config {
	return Config{
		Limit:   NoLimit,
		Offset:  0,
		Timeout: 15 * time.Second,
	}
}

// shape records which kind of response the fetcher produced on its first call.
type shape int

const (
	shapeUnknown shape = iota
	shapePaged
	shapeUnpaged
)

// Sequence is the depaginated view over a Fetcher.
//
// Iteration (Next, All, Collect) and indexed access (At) share one cache and
// one fetch cursor, so mixing them never fetches a page twice. A Sequence is
// single pass: once iteration has advanced it cannot be rewound.
type Sequence[T any] struct {
	fetcher Fetcher[T]
	config  Config
	name    string
	logger  zerolog.Logger

	// cache holds every fetched element at its absolute index. Pages arrive in
	// order, so the cache is always the contiguous prefix [0, len(cache)).
	cache []T

	shape     shape
	pageSize  int
	count     int
	exhausted bool

	// pos is the absolute index of the next element to yield.
	pos int
}

// NewSequence creates a sequence over fetcher. No fetch is made until an
// element or the length is requested.
func NewSequence[T any](fetcher Fetcher[T], config Config) (*Sequence[T], error) {
	if fetcher == nil {
		return nil, fmt.Errorf("%w: fetcher is required", ErrInvalidConfig)
	}
	if config.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must be >= 0 (got %d)", ErrInvalidConfig, config.Offset)
	}
	if config.Limit < 0 {
		config.Limit = NoLimit
	}

	name := fetcherName(fetcher, config.Name)

	var logger zerolog.Logger
	if config.Logger != nil {
		logger = *config.Logger
	} else {
		logger = logging.NewLogger("pagination")
	}
	logger = logger.With().Str("fetcher", name).Logger()

	return &Sequence[T]{
		fetcher: fetcher,
		config:  config,
		name:    name,
		logger:  logger,
		pos:     config.Offset,
	}, nil
}

// Name returns the name the sequence uses for its fetcher.
func (s *Sequence[T]) Name() string {
	return s.name
}

// Length returns the number of elements the sequence yields in total,
// counting from its offset and capped by its limit.
//
// If nothing has been fetched yet, the first page is fetched to learn the
// total count. Later calls do not fetch.
func (s *Sequence[T]) Length(ctx context.Context) (int, error) {
	if s.shape == shapeUnknown {
		if err := s.fetchNext(ctx); err != nil {
			return 0, err
		}
	}

	n := s.count - s.config.Offset
	if n < 0 {
		n = 0
	}
	if s.config.Limit >= 0 && s.config.Limit < n {
		n = s.config.Limit
	}
	return n, nil
}

// Next returns the next element of the sequence. It returns ErrExhausted when
// the limit has been reached or the upstream data ran out. Fetcher errors are
// returned as is; the cursor does not advance, so a later call retries the
// same fetch.
func (s *Sequence[T]) Next(ctx context.Context) (T, error) {
	var zero T

	if s.limitReached() {
		return zero, ErrExhausted
	}

	ok, err := s.ensure(ctx, s.pos)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, ErrExhausted
	}

	v := s.cache[s.pos]
	s.pos++
	ItemsYielded.Inc()
	return v, nil
}

// All returns an iterator over the remaining elements.
//
// A fetch error is yielded once, with the zero element, and ends the
// iteration. Breaking out of the loop keeps the cursor where it stopped;
// a later call to All or Next resumes from there.
func (s *Sequence[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, err := s.Next(ctx)
			if errors.Is(err, ErrExhausted) {
				return
			}
			if err != nil {
				yield(v, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Collect drains the remaining elements into a slice.
func (s *Sequence[T]) Collect(ctx context.Context) ([]T, error) {
	var out []T
	for v, err := range s.All(ctx) {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// At returns the element at position i, counted from the configured offset.
//
// Pages are fetched in order up to the one holding the element; far indices
// force every page in between. Indices outside [0, Length) fail with
// ErrIndexOutOfRange.
func (s *Sequence[T]) At(ctx context.Context, i int) (T, error) {
	var zero T

	if i < 0 {
		IndexErrors.Inc()
		return zero, fmt.Errorf("%w: index %d", ErrIndexOutOfRange, i)
	}

	n, err := s.Length(ctx)
	if err != nil {
		return zero, err
	}
	if i >= n {
		IndexErrors.Inc()
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
	}

	abs := s.config.Offset + i
	ok, err := s.ensure(ctx, abs)
	if err != nil {
		return zero, err
	}
	if !ok {
		// The upstream count promised more elements than it delivered.
		IndexErrors.Inc()
		return zero, fmt.Errorf("%w: index %d, upstream exhausted after %d elements",
			ErrIndexOutOfRange, i, len(s.cache))
	}

	return s.cache[abs], nil
}

// limitReached reports whether the configured limit has been yielded.
func (s *Sequence[T]) limitReached() bool {
	return s.config.Limit >= 0 && s.pos-s.config.Offset >= s.config.Limit
}

// ensure fetches pages in order until the absolute index abs is cached or the
// upstream data is exhausted. It reports whether abs is available.
func (s *Sequence[T]) ensure(ctx context.Context, abs int) (bool, error) {
	for abs >= len(s.cache) && !s.exhausted {
		if err := s.fetchNext(ctx); err != nil {
			return false, err
		}
	}
	return abs < len(s.cache), nil
}

// fetchNext fetches the page following the cached prefix.
func (s *Sequence[T]) fetchNext(ctx context.Context) error {
	if s.exhausted {
		return nil
	}

	kind := fetchKindFirst
	var params PageParams
	if s.shape != shapeUnknown {
		kind = fetchKindNext
		params = PageParams{Limit: s.pageSize, Offset: len(s.cache)}
	}

	fetchCtx := ctx
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := s.fetcher.Fetch(fetchCtx, params)
	duration := time.Since(start)
	FetchDuration.Observe(duration.Seconds())

	if err != nil {
		FetchErrors.Inc()
		s.logger.Debug().
			Err(err).
			Int("limit", params.Limit).
			Int("offset", params.Offset).
			Dur("duration", duration).
			Msg("Page fetch failed")
		return err
	}
	FetchesTotal.WithLabelValues(kind).Inc()

	page, paged := resp.Page()
	if !paged {
		if s.shape == shapePaged {
			return fmt.Errorf("%w: unpaginated response at offset %d after a paginated first page",
				ErrMalformedPage, params.Offset)
		}
		s.acceptUnpaged(resp.Items())
		return nil
	}

	// Rejected pages must leave no state behind.
	if len(page.Results) == 0 && page.HasNext() {
		return fmt.Errorf("%w: empty page at offset %d announces more pages",
			ErrMalformedPage, params.Offset)
	}

	if s.shape == shapeUnknown {
		s.shape = shapePaged
		s.count = page.Count
		s.pageSize = len(page.Results)
	}

	s.cache = append(s.cache, page.Results...)
	if !page.HasNext() {
		s.exhausted = true
	}

	s.logger.Debug().
		Str("kind", kind).
		Int("limit", params.Limit).
		Int("offset", params.Offset).
		Int("results", len(page.Results)).
		Int("count", s.count).
		Bool("exhausted", s.exhausted).
		Dur("duration", duration).
		Msg("Page fetched")

	return nil
}

// acceptUnpaged treats items as the single and only page of the sequence.
func (s *Sequence[T]) acceptUnpaged(items []T) {
	s.shape = shapeUnpaged
	s.cache = append(s.cache, items...)
	s.count = len(items)
	s.exhausted = true

	UnpaginatedResponses.Inc()
	s.logger.Warn().
		Int("results", len(items)).
		Msgf("Fetcher %s returned an unpaginated response; treating it as the only page", s.name)
}
