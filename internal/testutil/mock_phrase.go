// Package testutil provides a mock Phrase API server for tests.
package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"
)

// MockResponse defines a canned response.
type MockResponse struct {
	StatusCode int
	Body       string
	// Headers are sent verbatim. Without a Content-Type entry the response
	// carries no Content-Type at all.
	Headers map[string]string
	Delay   time.Duration
}

// RecordedRequest is a request received by the mock. Path is decoded,
// EscapedPath is the path as sent on the wire.
type RecordedRequest struct {
	Method      string
	Path        string
	EscapedPath string
	RawQuery    string
	Header      http.Header
	Body        []byte
}

// MockPhrase is a configurable mock Phrase API server.
type MockPhrase struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]http.HandlerFunc

	requests         []RecordedRequest
	conditionalCount int
	remaining        int
}

// NewMockPhrase starts a mock server. Unknown routes answer
// 404 {"message":"Not Found"}.
func NewMockPhrase() *MockPhrase {
	mock := &MockPhrase{
		handlers:  make(map[string]http.HandlerFunc),
		remaining: 1000,
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		mock.mu.Lock()
		mock.requests = append(mock.requests, RecordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			EscapedPath: r.URL.EscapedPath(),
			RawQuery:    r.URL.RawQuery,
			Header:      r.Header.Clone(),
			Body:        body,
		})
		if r.Header.Get("If-None-Match") != "" {
			mock.conditionalCount++
		}
		if mock.remaining > 0 {
			mock.remaining--
		}
		remaining := mock.remaining
		handler, exists := mock.handlers[route(r.Method, r.URL.Path)]
		mock.mu.Unlock()

		w.Header().Set("X-Rate-Limit-Limit", "1000")
		w.Header().Set("X-Rate-Limit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-Rate-Limit-Reset", strconv.FormatInt(time.Now().Add(5*time.Minute).Unix(), 10))

		if exists {
			handler(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not Found"}`))
	}))

	return mock
}

func route(method, path string) string {
	return method + " " + path
}

// URL returns the mock server URL.
func (m *MockPhrase) URL() string {
	return m.server.URL
}

// Client returns an HTTP client for the mock server.
func (m *MockPhrase) Client() *http.Client {
	return m.server.Client()
}

// Close shuts down the mock server.
func (m *MockPhrase) Close() {
	m.server.Close()
}

// Reset clears the recorded requests.
func (m *MockPhrase) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = nil
	m.conditionalCount = 0
}

// Handle sets a custom handler for method and path.
func (m *MockPhrase) Handle(method, path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[route(method, path)] = handler
}

// SetResponse configures a canned response for method and path.
func (m *MockPhrase) SetResponse(method, path string, resp MockResponse) {
	m.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}

		// Stop net/http from sniffing a Content-Type.
		w.Header()["Content-Type"] = nil
		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}

		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetResource serves body under GET path with an ETag and answers
// 304 Not Modified when If-None-Match carries the current ETag. Calling
// it again replaces the resource version.
func (m *MockPhrase) SetResource(path, contentType, body, etag string) {
	m.Handle(http.MethodGet, path, func(w http.ResponseWriter, r *http.Request) {
		if etag != "" {
			w.Header().Set("ETag", etag)
			if r.Header.Get("If-None-Match") == etag {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	})
}

// Requests returns a copy of the recorded requests.
func (m *MockPhrase) Requests() []RecordedRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]RecordedRequest(nil), m.requests...)
}

// LastRequest returns the most recent request.
func (m *MockPhrase) LastRequest() (RecordedRequest, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.requests) == 0 {
		return RecordedRequest{}, false
	}
	return m.requests[len(m.requests)-1], true
}

// RequestCount returns the number of requests made to the server.
func (m *MockPhrase) RequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.requests)
}

// ConditionalCount returns the number of requests sent with If-None-Match.
func (m *MockPhrase) ConditionalCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.conditionalCount
}
