package pagination

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Fetcher retrieves one page of results.
//
// Implementations perform the actual transport. Errors are returned to the
// caller of the Sequence unchanged.
type Fetcher[T any] interface {
	Fetch(ctx context.Context, params PageParams) (Response[T], error)
}

// FetcherFunc adapts an ordinary function to the Fetcher interface.
type FetcherFunc[T any] func(ctx context.Context, params PageParams) (Response[T], error)

// Fetch calls f(ctx, params).
func (f FetcherFunc[T]) Fetch(ctx context.Context, params PageParams) (Response[T], error) {
	return f(ctx, params)
}

// Name returns the Go symbol of the wrapped function, e.g. "main.listPackages".
func (f FetcherFunc[T]) Name() string {
	if f == nil {
		return "<nil>"
	}
	fn := runtime.FuncForPC(reflect.ValueOf(f).Pointer())
	if fn == nil {
		return "<unknown>"
	}
	name := fn.Name()
	// Strip the package path, keep "pkg.func" (or "pkg.func.funcN" for closures).
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// namer is implemented by fetchers that can describe themselves in diagnostics.
type namer interface {
	Name() string
}

// fetcherName resolves the name used to identify f in log entries.
func fetcherName[T any](f Fetcher[T], configured string) string {
	if configured != "" {
		return configured
	}
	if n, ok := f.(namer); ok {
		if name := n.Name(); name != "" {
			return name
		}
	}
	return fmt.Sprintf("%T", f)
}
