package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	pshttp "github.com/fwojciec/pagescan/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns page HTML", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body>hi</body></html>"))
		}))
		defer srv.Close()

		fetcher := pshttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>hi</body></html>", html)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		fetcher := pshttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
	})

	t.Run("close is a no-op", func(t *testing.T) {
		t.Parallel()

		fetcher := pshttp.NewFetcher()
		assert.NoError(t, fetcher.Close())
	})
}

func TestImageFetcher_FetchImage(t *testing.T) {
	t.Parallel()

	t.Run("returns raw bytes", func(t *testing.T) {
		t.Parallel()

		var accept string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accept = r.Header.Get("Accept")
			_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
		}))
		defer srv.Close()

		fetcher := pshttp.NewImageFetcher()

		data, err := fetcher.FetchImage(context.Background(), srv.URL+"/a.png")
		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
		assert.Equal(t, "image/*", accept)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		fetcher := pshttp.NewImageFetcher()

		_, err := fetcher.FetchImage(context.Background(), srv.URL+"/a.png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 403")
	})
}
