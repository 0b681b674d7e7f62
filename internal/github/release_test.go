package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/release-helper/internal/history"
)

func TestClient_LatestRelease(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/o/r/releases/latest":
			w.Write([]byte(`{"tag_name":"v1.4.0","html_url":"https://github.com/o/r/releases/tag/v1.4.0"}`))
		case "/repos/o/empty/releases/latest":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Not Found"}`))
		case "/repos/o/private/releases/latest":
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Bad credentials"}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer server.Close()

	c := newTestClient(t, server)

	tag, url, err := c.LatestRelease(context.Background(), "o", "r")
	require.NoError(t, err)
	assert.Equal(t, "v1.4.0", tag)
	assert.Equal(t, "https://github.com/o/r/releases/tag/v1.4.0", url)

	tag, _, err = c.LatestRelease(context.Background(), "o", "empty")
	require.NoError(t, err)
	assert.Empty(t, tag)

	_, _, err = c.LatestRelease(context.Background(), "o", "private")
	require.Error(t, err)
	assert.True(t, history.IsAuthError(err))
}
