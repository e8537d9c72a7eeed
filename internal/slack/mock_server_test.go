package slack

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// mockSlackServer creates a test HTTP server that mocks Slack API responses
// and serves emoji and icon files
type mockSlackServer struct {
	server   *httptest.Server
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	hits     map[string]int
}

func newMockSlackServer() *mockSlackServer {
	m := &mockSlackServer{
		handlers: make(map[string]http.HandlerFunc),
		hits:     make(map[string]int),
	}

	m.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		m.mu.Lock()
		m.hits[path]++
		handler, ok := m.handlers[path]
		m.mu.Unlock()

		if ok {
			handler(w, r)
			return
		}

		http.Error(w, "mock not found: "+path, http.StatusNotFound)
	}))

	return m
}

func (m *mockSlackServer) close() {
	m.server.Close()
}

func (m *mockSlackServer) addHandler(path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// addJSON registers a handler answering with resp as JSON
func (m *mockSlackServer) addJSON(path string, resp any) {
	m.addHandler(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})
}

func (m *mockSlackServer) hitCount(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits[path]
}

func (m *mockSlackServer) url(path string) string {
	return m.server.URL + path
}
