// Package pagination turns a page-at-a-time fetch function into one logical
// sequence of elements.
//
// APIs built on limit/offset pagination (for example Django REST Framework's
// LimitOffsetPagination) answer with an envelope of the form
//
//	{"count": 1023, "next": "...?limit=100&offset=100", "previous": null, "results": [...]}
//
// A Sequence hides that envelope. It requests pages lazily, in order, as the
// consumer asks for elements, and caches every element it has seen so that
// iteration and indexed access never fetch the same page twice.
//
// Example usage:
//
//	fetch := pagination.FetcherFunc[Package](func(ctx context.Context, p pagination.PageParams) (pagination.Response[Package], error) {
//		return api.ListPackages(ctx, p.Limit, p.Offset)
//	})
//
//	seq, err := pagination.NewSequence[Package](fetch, pagination.DefaultConfig())
//	if err != nil {
//		return err
//	}
//
//	for pkg, err := range seq.All(ctx) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(pkg.Name)
//	}
//
// The fetcher contract:
//   - The first call receives the zero PageParams. The fetcher picks its own
//     defaults for the first page.
//   - Every later call receives Limit set to the size of the first page and
//     Offset set to the absolute number of elements fetched so far.
//   - The page size is assumed constant across pages.
//   - A fetcher that returns Unpaged is treated as a non-paginating API: its
//     elements form the single and only page, and one warning is logged.
//
// Fetches are strictly sequential. There is no prefetching and no parallel
// fetching, because every offset depends on the page before it. A Sequence is
// not safe for concurrent use.
package pagination
