package pagination_test

import (
	"context"
	"fmt"

	"github.com/Sternrassler/drf-depaginator/pkg/logging"
	"github.com/Sternrassler/drf-depaginator/pkg/pagination"
)

func ExampleSequence() {
	data := []string{"alpha", "beta", "gamma", "delta", "epsilon"}

	// A limit/offset API that serves two elements on its first page.
	fetch := pagination.FetcherFunc[string](func(ctx context.Context, p pagination.PageParams) (pagination.Response[string], error) {
		limit, offset := p.Limit, p.Offset
		if p.IsFirst() {
			limit, offset = 2, 0
		}
		end := min(offset+limit, len(data))

		var next string
		if end < len(data) {
			next = fmt.Sprintf("/?limit=%d&offset=%d", limit, end)
		}
		return pagination.Paged(pagination.Page[string]{
			Count:   len(data),
			Next:    next,
			Results: data[offset:end],
		}), nil
	})

	cfg := pagination.DefaultConfig()
	cfg.Offset = 1
	cfg.Limit = 3
	cfg.Logger = logging.Nop()

	seq, err := pagination.NewSequence[string](fetch, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx := context.Background()
	n, _ := seq.Length(ctx)
	fmt.Println("length:", n)

	last, _ := seq.At(ctx, 2)
	fmt.Println("at 2:", last)

	for v, err := range seq.All(ctx) {
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(v)
	}

	// Output:
	// length: 3
	// at 2: delta
	// beta
	// gamma
	// delta
}
