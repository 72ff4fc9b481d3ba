package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/astromitts/gifterator3000/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteError(rec, http.StatusConflict, "exchange_locked", "Assignments are locked.")

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var body httpx.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "exchange_locked", body.Error)
	require.Equal(t, "Assignments are locked.", body.ErrorDescription)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}

	decode := func(body string) (payload, error) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		var p payload
		err := httpx.DecodeJSON(req, &p)
		return p, err
	}

	t.Run("valid", func(t *testing.T) {
		p, err := decode(`{"title":"Holiday"}`)
		require.NoError(t, err)
		require.Equal(t, "Holiday", p.Title)
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := decode("")
		require.ErrorContains(t, err, "empty")
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := decode(`{"title":"x","owner":"y"}`)
		require.ErrorContains(t, err, "malformed JSON")
	})

	t.Run("trailing object", func(t *testing.T) {
		_, err := decode(`{"title":"x"}{"title":"y"}`)
		require.ErrorContains(t, err, "single JSON object")
	})

	t.Run("too large", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"`+strings.Repeat("a", 64)+`"}`))
		req.Body = http.MaxBytesReader(rec, req.Body, 16)

		var p payload
		require.ErrorContains(t, httpx.DecodeJSON(req, &p), "exceeds 16 bytes")
	})
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mark("first"), mark("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestRecoverer(t *testing.T) {
	h := httpx.Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "server_error")
}
