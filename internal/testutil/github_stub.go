package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// GitHubStub is an httptest server that records every request it serves.
type GitHubStub struct {
	*httptest.Server

	mu       sync.Mutex
	requests int
	lastPath string
	lastHdr  http.Header
}

// NewGitHubStub starts a stub server backed by handler. It is closed when
// the test ends.
func NewGitHubStub(t testing.TB, handler http.Handler) *GitHubStub {
	t.Helper()

	s := &GitHubStub{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests++
		s.lastPath = r.URL.EscapedPath()
		s.lastHdr = r.Header.Clone()
		s.mu.Unlock()

		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

// Requests returns how many requests the stub has served.
func (s *GitHubStub) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// LastPath returns the escaped path of the most recent request.
func (s *GitHubStub) LastPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPath
}

// LastHeader returns the headers of the most recent request, or nil.
func (s *GitHubStub) LastHeader() http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastHdr
}

// Respond returns a handler that writes status and body with a JSON content type.
func Respond(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// Users serves /users/{login} from a map of login to body. Unknown logins
// get GitHub's 404 payload.
func Users(bodies map[string]string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/", func(w http.ResponseWriter, r *http.Request) {
		login := r.URL.Path[len("/users/"):]
		if body, ok := bodies[login]; ok {
			Respond(http.StatusOK, body).ServeHTTP(w, r)
			return
		}
		Respond(http.StatusNotFound, `{"message": "Not Found"}`).ServeHTTP(w, r)
	})
	return mux
}
