package clientid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{ lines int }

func (l *nopLogger) Info(ctx context.Context, msg string, args ...any) { l.lines++ }

func TestIssue(t *testing.T) {
	i := NewIssuer("")
	assert.Equal(t, DefaultCookieName, i.Name())

	c := i.Issue(nil)
	require.NotNil(t, c)
	assert.Equal(t, "clientId", c.Name)
	_, err := uuid.Parse(c.Value)
	assert.NoError(t, err, "cookie value should be a UUID")

	other := i.Issue(nil)
	require.NotNil(t, other)
	assert.NotEqual(t, c.Value, other.Value)

	assert.Nil(t, i.Issue(&http.Cookie{Name: "clientId", Value: "abc"}))
}

func TestMiddleware(t *testing.T) {
	log := &nopLogger{}
	issued := 0
	h := NewIssuer("").Middleware(log, func() { issued++ })(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("without cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "clientId", cookies[0].Name)
		assert.NotEmpty(t, cookies[0].Value)
	})

	t.Run("with cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "clientId", Value: "known"})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Empty(t, rec.Result().Cookies())
	})

	assert.Equal(t, 1, issued)
	assert.Equal(t, 1, log.lines)
}
