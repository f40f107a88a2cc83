package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New()
	m.Observe("/concerts/{id}", http.MethodGet, http.StatusNotFound, 3*time.Millisecond)
	m.Observe("/concerts/{id}", http.MethodGet, http.StatusNotFound, 5*time.Millisecond)
	m.CookieIssued()
	m.ConcertCreated()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues("/concerts/{id}", http.MethodGet, "404")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.cookiesIssued))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.concertsStored))
}

func TestHandler(t *testing.T) {
	m := New()
	m.CookieIssued()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "concerts_client_cookies_issued_total 1"))
}
