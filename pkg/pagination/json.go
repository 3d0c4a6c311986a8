package pagination

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// RawFetcher returns the undecoded JSON body of one page request.
// The caller owns the transport; params are encoded with PageParams.Values.
type RawFetcher func(ctx context.Context, params PageParams) ([]byte, error)

// JSONFetcher adapts a RawFetcher into a Fetcher that decodes each body with
// DecodeJSON.
func JSONFetcher[T any](name string, raw RawFetcher) Fetcher[T] {
	return &jsonFetcher[T]{name: name, raw: raw}
}

type jsonFetcher[T any] struct {
	name string
	raw  RawFetcher
}

func (f *jsonFetcher[T]) Name() string {
	return f.name
}

func (f *jsonFetcher[T]) Fetch(ctx context.Context, params PageParams) (Response[T], error) {
	body, err := f.raw(ctx, params)
	if err != nil {
		return Response[T]{}, err
	}
	return DecodeJSON[T](body)
}

// DecodeJSON decodes a response body into a Response.
//
//   - A JSON array is an unpaginated response.
//   - An object with a "count" or "next" member is a page envelope; it must
//     also carry "count" and "results".
//   - Any other object is an unpaginated response holding that object as its
//     only element.
func DecodeJSON[T any](data []byte) (Response[T], error) {
	if !gjson.ValidBytes(data) {
		return Response[T]{}, fmt.Errorf("%w: invalid JSON", ErrMalformedPage)
	}

	doc := gjson.ParseBytes(data)
	switch {
	case doc.IsArray():
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return Response[T]{}, fmt.Errorf("decode results: %w", err)
		}
		return Unpaged(items), nil

	case doc.IsObject():
		count := doc.Get("count")
		next := doc.Get("next")
		if !count.Exists() && !next.Exists() {
			var item T
			if err := json.Unmarshal(data, &item); err != nil {
				return Response[T]{}, fmt.Errorf("decode result: %w", err)
			}
			return Unpaged([]T{item}), nil
		}
		return decodeEnvelope[T](doc)

	default:
		return Response[T]{}, fmt.Errorf("%w: unexpected JSON %s", ErrMalformedPage, doc.Type)
	}
}

// decodeEnvelope decodes a {count, next, previous, results} object.
func decodeEnvelope[T any](doc gjson.Result) (Response[T], error) {
	count := doc.Get("count")
	if count.Type != gjson.Number {
		return Response[T]{}, fmt.Errorf("%w: missing or non-numeric count", ErrMalformedPage)
	}

	results := doc.Get("results")
	if !results.IsArray() {
		return Response[T]{}, fmt.Errorf("%w: missing results", ErrMalformedPage)
	}

	var items []T
	if err := json.Unmarshal([]byte(results.Raw), &items); err != nil {
		return Response[T]{}, fmt.Errorf("decode results: %w", err)
	}

	return Paged(Page[T]{
		Count:    int(count.Int()),
		Next:     markerString(doc.Get("next")),
		Previous: markerString(doc.Get("previous")),
		Results:  items,
	}), nil
}

// markerString returns the opaque content of a next/previous member.
// null, false and missing members become "".
func markerString(r gjson.Result) string {
	switch r.Type {
	case gjson.Null, gjson.False:
		return ""
	case gjson.String:
		return r.Str
	default:
		return r.Raw
	}
}
