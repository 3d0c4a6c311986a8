package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FetchesTotal tracks successful fetcher calls by kind ("first", "next").
	FetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "depaginator_fetches_total",
			Help: "Total number of successful page fetches",
		},
		[]string{"kind"},
	)

	// FetchErrors tracks fetcher calls that returned an error.
	FetchErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "depaginator_fetch_errors_total",
			Help: "Total number of page fetches that failed",
		},
	)

	// FetchDuration tracks how long a single fetcher call takes.
	FetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "depaginator_fetch_duration_seconds",
			Help:    "Duration of a single page fetch in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
	)

	// UnpaginatedResponses tracks sequences that fell back to treating a bare
	// response as the only page.
	UnpaginatedResponses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "depaginator_unpaginated_responses_total",
			Help: "Total number of fetchers that returned an unpaginated response",
		},
	)

	// ItemsYielded tracks elements handed out by Next and All.
	ItemsYielded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "depaginator_items_yielded_total",
			Help: "Total number of elements yielded by sequence iteration",
		},
	)

	// IndexErrors tracks out-of-range indexed accesses.
	IndexErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "depaginator_index_errors_total",
			Help: "Total number of out-of-range indexed accesses",
		},
	)
)

const (
	fetchKindFirst = "first"
	fetchKindNext  = "next"
)
