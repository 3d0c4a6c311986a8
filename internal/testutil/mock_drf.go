package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/Sternrassler/drf-depaginator/pkg/pagination"
)

// MockDRF is a mock REST API serving a list endpoint with Django REST
// Framework limit/offset pagination.
type MockDRF struct {
	server *httptest.Server

	mu           sync.RWMutex
	items        []any
	defaultLimit int
	bare         bool

	// Tracking
	RequestCount int
	LastQuery    string
}

// NewMockDRF creates a mock API serving items at any path.
func NewMockDRF(items []any, defaultLimit int) *MockDRF {
	mock := &MockDRF{
		items:        items,
		defaultLimit: defaultLimit,
	}

	mock.server = httptest.NewServer(http.HandlerFunc(mock.handle))
	return mock
}

// URL returns the mock server URL.
func (m *MockDRF) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockDRF) Close() {
	m.server.Close()
}

// SetBare switches the endpoint between a paginated envelope and a bare JSON list.
func (m *MockDRF) SetBare(bare bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bare = bare
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockDRF) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// GetLastQuery returns the raw query string of the latest request.
func (m *MockDRF) GetLastQuery() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.LastQuery
}

// RawFetcher returns a fetcher that GETs the mock endpoint with params encoded
// as query values.
func (m *MockDRF) RawFetcher(client *http.Client) pagination.RawFetcher {
	return func(ctx context.Context, params pagination.PageParams) ([]byte, error) {
		q, err := params.Values()
		if err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.URL()+"/?"+q.Encode(), nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}
}

func (m *MockDRF) handle(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.RequestCount++
	m.LastQuery = r.URL.RawQuery
	items, bare, defaultLimit := m.items, m.bare, m.defaultLimit
	m.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if bare {
		_ = json.NewEncoder(w).Encode(items)
		return
	}

	limit, err := queryInt(r, "limit", defaultLimit)
	if err != nil || limit <= 0 {
		http.Error(w, `{"detail": "invalid limit"}`, http.StatusBadRequest)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil || offset < 0 {
		http.Error(w, `{"detail": "invalid offset"}`, http.StatusBadRequest)
		return
	}

	page := SlicePage(items, limit, offset)
	body := map[string]any{
		"count":    page.Count,
		"next":     nil,
		"previous": nil,
		"results":  page.Results,
	}
	if page.HasNext() {
		body["next"] = m.URL() + page.Next
	}
	if offset > 0 {
		body["previous"] = fmt.Sprintf("%s/?limit=%d&offset=%d", m.URL(), limit, max(offset-limit, 0))
	}

	_ = json.NewEncoder(w).Encode(body)
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
