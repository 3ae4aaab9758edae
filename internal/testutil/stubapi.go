package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// Recorded is what the stub saw of one request.
type Recorded struct {
	Method string
	Path   string
	Query  string
	Body   string
	Header http.Header
}

// Values parses the recorded query string.
func (r *Recorded) Values() url.Values {
	v, _ := url.ParseQuery(r.Query)
	return v
}

// StubAPI answers every request with the same status and JSON body and keeps
// the last request it received. The server is closed when the test ends.
type StubAPI struct {
	server *httptest.Server

	mu     sync.Mutex
	status int
	reply  string
	last   *Recorded
	calls  int
}

// NewStubAPI starts a stub that replies 200 with `{}` until Reply is called.
func NewStubAPI(t testing.TB) *StubAPI {
	t.Helper()
	api := &StubAPI{status: http.StatusOK, reply: `{}`}
	api.server = httptest.NewServer(http.HandlerFunc(api.serve))
	t.Cleanup(api.server.Close)
	return api
}

// URL is the base URL to point an adapter at.
func (a *StubAPI) URL() string { return a.server.URL }

// Reply sets the status and body for subsequent requests.
func (a *StubAPI) Reply(status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status, a.reply = status, body
}

// Last returns the most recent request, or nil before the first one.
func (a *StubAPI) Last() *Recorded {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}

// Calls counts the requests received so far.
func (a *StubAPI) Calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

func (a *StubAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	a.mu.Lock()
	a.calls++
	a.last = &Recorded{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Body:   string(body),
		Header: r.Header.Clone(),
	}
	status, reply := a.status, a.reply
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, reply)
}
