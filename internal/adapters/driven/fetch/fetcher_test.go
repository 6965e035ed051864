package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pluginsmith/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte("# Remote"))
	}))
	defer server.Close()

	content, contentType, err := New().Fetch(context.Background(), server.URL+"/readme.md")
	require.NoError(t, err)
	assert.Equal(t, "# Remote", string(content))
	assert.Equal(t, "text/markdown; charset=utf-8", contentType)
}

func TestFetch_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, _, err := New().Fetch(context.Background(), server.URL+"/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := New().Fetch(ctx, server.URL)
	assert.Error(t, err)
}
