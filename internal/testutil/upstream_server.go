package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// Route describes the canned answer of the fake upstream for one path.
type Route struct {
	Status int    // defaults to 200
	Body   string // written as application/json
	// Drop closes the connection without answering, simulating a transport failure.
	Drop bool
}

// UpstreamServer is an httptest server impersonating the TVmaze API.
type UpstreamServer struct {
	*httptest.Server
	hits atomic.Int64
}

// Hits returns the number of requests served so far.
func (s *UpstreamServer) Hits() int64 {
	return s.hits.Load()
}

// NewUpstreamServer starts a fake upstream answering routes keyed by request URI
// (path plus query, e.g. "/schedule/web?date=2023-01-01"). Unknown URIs get a TVmaze 404.
// The server is closed when the test ends.
func NewUpstreamServer(t *testing.T, routes map[string]Route) *UpstreamServer {
	t.Helper()
	s := &UpstreamServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)

		route, ok := routes[r.URL.RequestURI()]
		if !ok {
			w.Header().Set("Content-Type", "application/json; charset=UTF-8")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(NotFoundJSON))
			return
		}

		if route.Drop {
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Errorf("response writer does not support hijacking")
				return
			}
			conn, _, err := hj.Hijack()
			if err != nil {
				t.Errorf("hijack failed: %v", err)
				return
			}
			_ = conn.Close()
			return
		}

		status := route.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(route.Body))
	}))
	t.Cleanup(s.Close)
	return s
}
