// Package testutil provides fetchers and a mock REST API for testing
// depaginated sequences.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Sternrassler/drf-depaginator/pkg/pagination"
)

// ErrScriptExhausted is returned by a ScriptedFetcher called more often than scripted.
var ErrScriptExhausted = errors.New("scripted fetcher: no response left")

// Step is one scripted fetcher answer.
type Step[T any] struct {
	Response pagination.Response[T]
	Err      error
}

// ScriptedFetcher answers calls with a fixed list of steps, in order, and
// records the parameters of every call.
type ScriptedFetcher[T any] struct {
	mu    sync.Mutex
	name  string
	steps []Step[T]
	calls []pagination.PageParams
}

// NewScriptedFetcher creates a fetcher that returns steps one per call.
func NewScriptedFetcher[T any](name string, steps ...Step[T]) *ScriptedFetcher[T] {
	return &ScriptedFetcher[T]{name: name, steps: steps}
}

// PageStep is shorthand for a successful paged step.
func PageStep[T any](count int, next string, results ...T) Step[T] {
	return Step[T]{Response: pagination.Paged(pagination.Page[T]{
		Count:   count,
		Next:    next,
		Results: results,
	})}
}

// ErrorStep is shorthand for a failing step.
func ErrorStep[T any](err error) Step[T] {
	return Step[T]{Err: err}
}

// Name implements the optional fetcher naming interface.
func (f *ScriptedFetcher[T]) Name() string {
	return f.name
}

// Fetch returns the next scripted step.
func (f *ScriptedFetcher[T]) Fetch(ctx context.Context, params pagination.PageParams) (pagination.Response[T], error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, params)
	if len(f.steps) == 0 {
		return pagination.Response[T]{}, ErrScriptExhausted
	}

	step := f.steps[0]
	f.steps = f.steps[1:]
	return step.Response, step.Err
}

// Calls returns the parameters of every call so far.
func (f *ScriptedFetcher[T]) Calls() []pagination.PageParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]pagination.PageParams(nil), f.calls...)
}

// CallCount returns the number of calls so far.
func (f *ScriptedFetcher[T]) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// SliceFetcher serves a slice the way a limit/offset REST API would: the
// first page uses DefaultLimit, later pages honour the passed parameters.
type SliceFetcher[T any] struct {
	mu           sync.Mutex
	data         []T
	defaultLimit int
	calls        []pagination.PageParams
}

// NewSliceFetcher creates a SliceFetcher over data with the given first-page size.
func NewSliceFetcher[T any](data []T, defaultLimit int) *SliceFetcher[T] {
	return &SliceFetcher[T]{data: data, defaultLimit: defaultLimit}
}

// Fetch returns the page described by params.
func (f *SliceFetcher[T]) Fetch(ctx context.Context, params pagination.PageParams) (pagination.Response[T], error) {
	if err := ctx.Err(); err != nil {
		return pagination.Response[T]{}, err
	}

	f.mu.Lock()
	f.calls = append(f.calls, params)
	f.mu.Unlock()

	limit, offset := params.Limit, params.Offset
	if params.IsFirst() {
		limit, offset = f.defaultLimit, 0
	}

	return pagination.Paged(SlicePage(f.data, limit, offset)), nil
}

// Calls returns the parameters of every call so far.
func (f *SliceFetcher[T]) Calls() []pagination.PageParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]pagination.PageParams(nil), f.calls...)
}

// SlicePage cuts the page [offset, offset+limit) out of data.
func SlicePage[T any](data []T, limit, offset int) pagination.Page[T] {
	start := min(offset, len(data))
	end := min(offset+limit, len(data))

	var next string
	if offset+limit < len(data) {
		next = fmt.Sprintf("/?limit=%d&offset=%d", limit, offset+limit)
	}

	return pagination.Page[T]{
		Count:   len(data),
		Next:    next,
		Results: data[start:end],
	}
}
