package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilClientIsSafe(t *testing.T) {
	var c *Client

	img, err := c.FindForSlide(context.Background(), "problem", nil)
	assert.NoError(t, err)
	assert.Nil(t, img)

	_, err = c.Fetch(context.Background(), "https://example.com/x.png")
	assert.Error(t, err)
}

func TestNewClientWithoutKey(t *testing.T) {
	assert.Nil(t, NewClient("", nil))
}

func TestFallbackQueriesCoverSlideKinds(t *testing.T) {
	for _, kind := range []string{
		"problem", "solution", "market", "model", "traction",
		"team", "ask", "customer", "competition", "roadmap",
	} {
		assert.NotEmpty(t, fallbackQueries[kind], "missing fallback query for %s", kind)
	}
}

func TestFetch(t *testing.T) {
	t.Run("returns body bytes", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("image-bytes"))
		}))
		defer srv.Close()

		c := NewClient("test-key", nil)
		data, err := c.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, []byte("image-bytes"), data)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		c := NewClient("test-key", nil)
		_, err := c.Fetch(context.Background(), srv.URL)
		assert.Error(t, err)
	})
}
