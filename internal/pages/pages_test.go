package pages

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tamilwords/internal/config"
	"tamilwords/internal/testutil"
)

func TestRoutes_ExactlyTwoEntries(t *testing.T) {
	got := Routes()

	require.Len(t, got, 2)
	assert.Equal(t, "/", got[0].Path)
	assert.Equal(t, MainPage, got[0].Page)
	assert.Equal(t, "/admin", got[1].Path)
	assert.Equal(t, AdminPage, got[1].Page)
}

func TestRoutes_ReturnsCopy(t *testing.T) {
	got := Routes()
	got[0].Path = "/changed"

	assert.Equal(t, "/", Routes()[0].Path)
}

func TestTable_Match(t *testing.T) {
	tests := []struct {
		target   string
		wantPage Page
		wantOK   bool
	}{
		{target: "/", wantPage: MainPage, wantOK: true},
		{target: "", wantPage: MainPage, wantOK: true},
		{target: "/?q=அரசன்", wantPage: MainPage, wantOK: true},
		{target: "/admin", wantPage: AdminPage, wantOK: true},
		{target: "/admin?tab=collections", wantPage: AdminPage, wantOK: true},
		{target: "/admin/", wantOK: false},
		{target: "/admin/collections", wantOK: false},
		{target: "/unknown", wantOK: false},
	}

	table := NewTable()
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			route, ok := table.Match(tt.target)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantPage, route.Page)
			} else {
				assert.Equal(t, Route{}, route)
			}
		})
	}
}

func TestTable_Path(t *testing.T) {
	table := NewTable()

	path, err := table.Path("admin")
	require.NoError(t, err)
	assert.Equal(t, "/admin", path)

	_, err = table.Path("settings")
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestNavigator_History(t *testing.T) {
	// Arrange
	nav := NewTable().NewNavigator()
	require.Equal(t, MainPage, nav.Current().Page)

	// Act
	route, err := nav.Push("/admin")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, AdminPage, route.Page)
	assert.Equal(t, AdminPage, nav.Current().Page)

	back, ok := nav.Back()
	assert.True(t, ok)
	assert.Equal(t, MainPage, back.Page)

	_, ok = nav.Back()
	assert.False(t, ok, "cannot go back past the first entry")

	forward, ok := nav.Forward()
	assert.True(t, ok)
	assert.Equal(t, AdminPage, forward.Page)

	_, ok = nav.Forward()
	assert.False(t, ok)
}

func TestNavigator_PushDropsForwardHistory(t *testing.T) {
	nav := NewTable().NewNavigator()
	_, err := nav.Push("/admin")
	require.NoError(t, err)
	nav.Back()

	_, err = nav.Push("/?q=x")
	require.NoError(t, err)

	_, ok := nav.Forward()
	assert.False(t, ok)
	assert.Equal(t, "/?q=x", nav.CurrentPath())
}

func TestNavigator_UnmatchedPathLeavesHistory(t *testing.T) {
	nav := NewTable().NewNavigator()
	_, err := nav.Push("/admin")
	require.NoError(t, err)

	_, err = nav.Push("/missing")

	assert.ErrorIs(t, err, ErrNoRoute)
	assert.Equal(t, AdminPage, nav.Current().Page)
	back, ok := nav.Back()
	assert.True(t, ok)
	assert.Equal(t, MainPage, back.Page)
}

func newTestHandler(t *testing.T, cfg *config.Config) *Handler {
	t.Helper()
	h, err := NewHandler(cfg, "/assets/app.js", testutil.Logger())
	require.NoError(t, err)
	return h
}

func TestHandler_ServesPages(t *testing.T) {
	h := newTestHandler(t, config.Default())

	tests := []struct {
		path     string
		wantPage string
	}{
		{path: "/", wantPage: string(MainPage)},
		{path: "/admin", wantPage: string(AdminPage)},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://tamil.example.org:5173"+tt.path, nil)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			body := rec.Body.String()
			assert.Contains(t, body, `data-page="`+tt.wantPage+`"`)
			assert.Contains(t, body, `data-api-url="http://tamil.example.org:8000"`)
			assert.Contains(t, body, `src="/assets/app.js"`)
		})
	}
}

func TestHandler_UnmatchedPathIs404(t *testing.T) {
	h := newTestHandler(t, config.Default())

	for _, path := range []string{"/missing", "/admin/extra", "/search"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.NotContains(t, rec.Body.String(), "data-page", path)
	}
}

func TestHandler_RejectsOtherMethods(t *testing.T) {
	h := newTestHandler(t, config.Default())
	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandler_OverrideWinsOverRequestHost(t *testing.T) {
	cfg := config.Default()
	cfg.APIURL = "https://api.example.org"
	h := newTestHandler(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "http://localhost:5173/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Contains(t, rec.Body.String(), `data-api-url="https://api.example.org"`)
}

func TestEnvironmentFromRequest(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://192.168.1.20:5173/", nil)
		env := EnvironmentFromRequest(req)
		assert.Equal(t, config.Environment{Scheme: "http", Host: "192.168.1.20:5173"}, env)
	})

	t.Run("tls", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "https://tamil.example.org/", nil)
		req.TLS = &tls.ConnectionState{}
		assert.Equal(t, "https", EnvironmentFromRequest(req).Scheme)
	})

	t.Run("forwarded", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://10.0.0.5:5173/", nil)
		req.Header.Set("X-Forwarded-Proto", "https, http")
		req.Header.Set("X-Forwarded-Host", "tamil.example.org")
		env := EnvironmentFromRequest(req)
		assert.Equal(t, config.Environment{Scheme: "https", Host: "tamil.example.org"}, env)
	})
}
