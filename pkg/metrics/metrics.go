// Package metrics documents the Prometheus metrics exported by the depaginator.
// Metrics are defined next to the code that records them (pkg/pagination) and
// registered through promauto on the default registerer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the registerer all depaginator metrics are registered with.
var Registry = prometheus.DefaultRegisterer

// Gatherer is the matching gatherer, for exposing metrics without importing
// promhttp defaults.
var Gatherer = prometheus.DefaultGatherer

// Names lists every metric family exported by the module.
var Names = []string{
	"depaginator_fetches_total",
	"depaginator_fetch_errors_total",
	"depaginator_fetch_duration_seconds",
	"depaginator_unpaginated_responses_total",
	"depaginator_items_yielded_total",
	"depaginator_index_errors_total",
}

// Metrics Documentation
//
// Sequence Metrics (pkg/pagination):
//   - depaginator_fetches_total{kind} (Counter): successful fetcher calls; kind is
//     "first" for the argument-less first page and "next" for limit/offset pages
//   - depaginator_fetch_errors_total (Counter): fetcher calls that returned an error
//   - depaginator_fetch_duration_seconds (Histogram): duration of one fetcher call
//   - depaginator_unpaginated_responses_total (Counter): sequences whose fetcher
//     returned a bare list instead of a page envelope
//   - depaginator_items_yielded_total (Counter): elements handed out by iteration
//   - depaginator_index_errors_total (Counter): out-of-range indexed accesses
//
// Example Prometheus Queries:
//
//   # Pages fetched per second
//   sum(rate(depaginator_fetches_total[5m]))
//
//   # Average elements per fetched page
//   rate(depaginator_items_yielded_total[5m]) / sum(rate(depaginator_fetches_total[5m]))
//
//   # APIs that do not paginate
//   increase(depaginator_unpaginated_responses_total[1h]) > 0
//
//   # P95 fetch latency
//   histogram_quantile(0.95, rate(depaginator_fetch_duration_seconds_bucket[5m]))
