package metrics_test

import (
	"context"
	"testing"

	"github.com/Sternrassler/drf-depaginator/pkg/logging"
	"github.com/Sternrassler/drf-depaginator/pkg/metrics"
	"github.com/Sternrassler/drf-depaginator/pkg/pagination"
	"github.com/prometheus/client_golang/prometheus"
)

func TestRegistry(t *testing.T) {
	if metrics.Registry != prometheus.DefaultRegisterer {
		t.Error("Registry should be the default Prometheus registerer")
	}
	if metrics.Gatherer != prometheus.DefaultGatherer {
		t.Error("Gatherer should be the default Prometheus gatherer")
	}
}

func TestNamesAreRegistered(t *testing.T) {
	// Vectors are only gathered once a labelled sample exists.
	fetch := pagination.FetcherFunc[int](func(ctx context.Context, p pagination.PageParams) (pagination.Response[int], error) {
		return pagination.Unpaged([]int{1}), nil
	})
	cfg := pagination.DefaultConfig()
	cfg.Logger = logging.Nop()
	seq, err := pagination.NewSequence[int](fetch, cfg)
	if err != nil {
		t.Fatalf("NewSequence() error = %v", err)
	}
	if _, err := seq.Collect(context.Background()); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	_, _ = seq.At(context.Background(), 5)

	families, err := metrics.Gatherer.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	found := make(map[string]bool, len(families))
	for _, f := range families {
		found[f.GetName()] = true
	}

	for _, name := range metrics.Names {
		if !found[name] {
			t.Errorf("metric %s not gathered", name)
		}
	}
}
