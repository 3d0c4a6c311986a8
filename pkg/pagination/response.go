package pagination

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

// PageParams are the arguments passed to a Fetcher.
//
// The zero value means "no arguments" and is only ever used for the first
// fetch of a Sequence. Later fetches always set both fields.
type PageParams struct {
	Limit  int `url:"limit,omitempty"`
	Offset int `url:"offset,omitempty"`
}

// IsFirst reports whether p is the argument-less first page request.
func (p PageParams) IsFirst() bool {
	return p == PageParams{}
}

// Values encodes p as query parameters (limit, offset).
// The zero value encodes to an empty set.
func (p PageParams) Values() (url.Values, error) {
	return query.Values(p)
}

// Page is the envelope returned by a paginating API.
type Page[T any] struct {
	// Count is the total number of elements across all pages.
	Count int `json:"count"`

	// Next is an opaque marker (usually a URL) that is non-empty while more
	// pages exist. Its content is never inspected.
	Next string `json:"next"`

	// Previous is carried for completeness and ignored.
	Previous string `json:"previous,omitempty"`

	// Results are the elements of this page.
	Results []T `json:"results"`
}

// HasNext reports whether the page signals that more pages follow.
func (p Page[T]) HasNext() bool {
	return p.Next != ""
}

// Response is the result of a single Fetcher call: either a page envelope
// or, for APIs that do not paginate, the bare list of elements.
//
// The zero Response is an empty unpaginated list.
type Response[T any] struct {
	page  *Page[T]
	items []T
}

// Paged wraps a page envelope.
func Paged[T any](p Page[T]) Response[T] {
	return Response[T]{page: &p}
}

// Unpaged wraps the response of an API that returned its elements directly.
func Unpaged[T any](items []T) Response[T] {
	return Response[T]{items: items}
}

// Paginated reports whether r carries a page envelope.
func (r Response[T]) Paginated() bool {
	return r.page != nil
}

// Page returns the envelope. ok is false for unpaginated responses.
func (r Response[T]) Page() (page Page[T], ok bool) {
	if r.page == nil {
		return Page[T]{}, false
	}
	return *r.page, true
}

// Items returns the elements carried by r regardless of its shape.
func (r Response[T]) Items() []T {
	if r.page != nil {
		return r.page.Results
	}
	return r.items
}
