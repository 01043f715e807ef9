package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_IssuesCookieOnFirstVisit(t *testing.T) {
	var seen string
	h := Middleware("sf_session", time.Hour)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = IDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sf_session", cookies[0].Name)
	assert.Equal(t, seen, cookies[0].Value)
}

func TestMiddleware_ReusesExistingCookie(t *testing.T) {
	var seen string
	h := Middleware("sf_session", time.Hour)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = IDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sf_session", Value: "existing-id"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "existing-id", seen)
	assert.Empty(t, rec.Result().Cookies())
}

func TestRegistry_LazyCreateAndReuse(t *testing.T) {
	built := 0
	reg := NewRegistry(time.Hour, func(id string) *int {
		built++
		n := 0
		return &n
	})

	a := reg.Get("s1")
	b := reg.Get("s1")
	assert.Same(t, a, b)
	assert.Equal(t, 1, built)

	reg.Get("s2")
	assert.Equal(t, 2, built)
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_SweepEvictsIdleSessions(t *testing.T) {
	reg := NewRegistry(10*time.Millisecond, func(id string) string { return id })

	reg.Get("old")
	time.Sleep(20 * time.Millisecond)
	reg.Get("fresh")

	removed := reg.Sweep()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, reg.Len())
}
