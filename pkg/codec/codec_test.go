package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title string `json:"title"`
}

func TestNegotiate(t *testing.T) {
	cases := []struct {
		accept string
		want   string
	}{
		{"", MediaJSON},
		{"application/json", MediaJSON},
		{"application/cbor", MediaCBOR},
		{"text/html, application/cbor;q=0.9", MediaCBOR},
		{"*/*", MediaJSON},
		{"text/plain", MediaJSON},
		{"application/json; charset=utf-8", MediaJSON},
		{"application/cbor;q=0, application/json", MediaJSON},
		{"application/cbor;q=0", MediaJSON},
		{"application/json;q=0.1, application/cbor;q=1", MediaCBOR},
		{"application/json;q=0, */*", MediaCBOR},
		{"application/*;q=0.5, application/cbor;q=0.8", MediaCBOR},
		{"text/html;q=0.9, application/json;q=0.2, */*;q=0", MediaJSON},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Negotiate(tc.accept), "accept %q", tc.accept)
	}
}

func TestDecode(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Halcyon Days"}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		var p payload
		require.NoError(t, Decode(req, &p))
		assert.Equal(t, "Halcyon Days", p.Title)
	})

	t.Run("no content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Bare"}`))
		var p payload
		require.NoError(t, Decode(req, &p))
		assert.Equal(t, "Bare", p.Title)
	})

	t.Run("cbor", func(t *testing.T) {
		b, err := cbor.Marshal(payload{Title: "Binary"})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(b))
		req.Header.Set("Content-Type", MediaCBOR)
		var p payload
		require.NoError(t, Decode(req, &p))
		assert.Equal(t, "Binary", p.Title)
	})

	t.Run("unsupported", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("title=x"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		var p payload
		assert.True(t, errors.Is(Decode(req, &p), ErrUnsupportedMediaType))
	})

	t.Run("trailing json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x"} junk`))
		var p payload
		assert.True(t, errors.Is(Decode(req, &p), ErrTrailingData))
	})

	t.Run("trailing whitespace", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{\"title\":\"x\"}\n"))
		var p payload
		require.NoError(t, Decode(req, &p))
		assert.Equal(t, "x", p.Title)
	})

	t.Run("trailing cbor", func(t *testing.T) {
		b, err := cbor.Marshal(payload{Title: "Binary"})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(append(b, 0x01)))
		req.Header.Set("Content-Type", MediaCBOR)
		var p payload
		assert.Error(t, Decode(req, &p))
	})

	t.Run("malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
		var p payload
		assert.Error(t, Decode(req, &p))
	})
}

func TestEncode(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, Encode(rec, req, http.StatusCreated, payload{Title: "Out"}))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, MediaJSON, rec.Header().Get("Content-Type"))
		var p payload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
		assert.Equal(t, "Out", p.Title)
	})

	t.Run("cbor", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept", MediaCBOR)
		require.NoError(t, Encode(rec, req, http.StatusOK, []payload{{Title: "A"}, {Title: "B"}}))
		assert.Equal(t, MediaCBOR, rec.Header().Get("Content-Type"))
		var ps []payload
		require.NoError(t, cbor.Unmarshal(rec.Body.Bytes(), &ps))
		require.Len(t, ps, 2)
		assert.Equal(t, "B", ps[1].Title)
	})
}
