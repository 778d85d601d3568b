package metadata

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extractor/internal/domain"
)

const acmePage = `<!doctype html><html><head>
<meta property="og:title" content="Acme AI">
<meta property="og:description" content="Acme AI writes blog posts.">
</head><body></body></html>`

func TestDirectFetchReadsOpenGraph(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(acmePage))
	}))
	defer server.Close()

	s := NewDirectFetchStrategy(DirectConfig{})
	fragment, err := s.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, domain.ScrapedFragment{
		Title:   "Acme AI",
		Snippet: "Acme AI writes blog posts.",
		Link:    server.URL,
	}, fragment)
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestDirectFetchDecodesCompressedBodies(t *testing.T) {
	var gz, br bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, _ = gw.Write([]byte(acmePage))
	require.NoError(t, gw.Close())
	bw := brotli.NewWriter(&br)
	_, _ = bw.Write([]byte(acmePage))
	require.NoError(t, bw.Close())

	for encoding, body := range map[string][]byte{"gzip": gz.Bytes(), "br": br.Bytes()} {
		t.Run(encoding, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Encoding", encoding)
				_, _ = w.Write(body)
			}))
			defer server.Close()

			fragment, err := NewDirectFetchStrategy(DirectConfig{}).Fetch(context.Background(), server.URL)
			require.NoError(t, err)
			assert.Equal(t, "Acme AI", fragment.Title)
		})
	}
}

func TestDirectFetchFailures(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(acmePage))
		}))
		defer server.Close()

		_, err := NewDirectFetchStrategy(DirectConfig{}).Fetch(context.Background(), server.URL)
		require.EqualError(t, err, "unexpected status 403")
	})

	t.Run("no metadata", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html><body>challenge</body></html>`))
		}))
		defer server.Close()

		_, err := NewDirectFetchStrategy(DirectConfig{}).Fetch(context.Background(), server.URL)
		require.ErrorIs(t, err, errNoMetadata)
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer server.Close()

		start := time.Now()
		_, err := NewDirectFetchStrategy(DirectConfig{Timeout: 50 * time.Millisecond}).Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("too many redirects", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			http.Redirect(w, r, "/next", http.StatusFound)
		}))
		defer server.Close()

		_, err := NewDirectFetchStrategy(DirectConfig{}).Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stopped after 5 redirects")
		assert.Equal(t, int32(6), hits.Load())
	})
}

func TestDirectFetchFollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/home", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/home", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(acmePage))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	fragment, err := NewDirectFetchStrategy(DirectConfig{}).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, server.URL, fragment.Link)
}
