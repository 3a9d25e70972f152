package googlebooks

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"txtchange/config"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	books "google.golang.org/api/books/v1"
	"google.golang.org/api/option"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := books.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newClient(svc, &config.GoogleBooksConfig{RequestsPerSecond: 100, MaxRetries: 1}, logger)
}

func TestLookupISBN_Success(t *testing.T) {
	var query string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"items":[{"volumeInfo":{
			"title":"Calculus",
			"authors":["James Stewart","Other"],
			"description":"Limits",
			"categories":["Mathematics"],
			"imageLinks":{"thumbnail":"http://img/thumb"}}}]}`)
	})

	meta, err := c.LookupISBN(context.Background(), "9780538497817")
	require.NoError(t, err)
	assert.Equal(t, "isbn:9780538497817", query)
	assert.Equal(t, "Calculus", meta.Title)
	assert.Equal(t, "James Stewart", meta.Author)
	assert.Equal(t, "Mathematics", meta.ExternalCategory)
	assert.Equal(t, "http://img/thumb", meta.ImageURL)
	assert.Equal(t, "Limits", meta.Description)
}

func TestLookupISBN_DefaultsForMissingTitleAuthorCategory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"items":[{"volumeInfo":{"description":"d","imageLinks":{"thumbnail":"t"}}}]}`)
	})

	meta, err := c.LookupISBN(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "Unknown Title", meta.Title)
	assert.Equal(t, "Unknown Author", meta.Author)
	assert.Equal(t, "Unknown", meta.ExternalCategory)
}

func TestLookupISBN_NoResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"totalItems":0}`)
	})

	_, err := c.LookupISBN(context.Background(), "000")
	assert.True(t, errors.Is(err, domainerrors.ErrLookupNoResults))
}

func TestLookupISBN_MissingDescriptionFails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"items":[{"volumeInfo":{"title":"x","imageLinks":{"thumbnail":"t"}}}]}`)
	})

	_, err := c.LookupISBN(context.Background(), "000")
	assert.True(t, errors.Is(err, domainerrors.ErrLookupFailed))
}

func TestLookupISBN_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		_, _ = io.WriteString(w, `{"items":[{"volumeInfo":{"description":"d","imageLinks":{"thumbnail":"t"}}}]}`)
	})

	_, err := c.LookupISBN(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLookupISBN_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, strings.TrimSpace(`{"error":{"code":400,"message":"bad"}}`))
	})

	_, err := c.LookupISBN(context.Background(), "123")
	assert.True(t, errors.Is(err, domainerrors.ErrLookupFailed))
	assert.Equal(t, int32(1), calls.Load())
}
