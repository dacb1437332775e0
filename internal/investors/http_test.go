package investors

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupInvestorsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	h := NewHandler(NewMatcher(stubEnhancer{matches: "- Fund A\n- Fund B"}))
	h.Register(router.Group("/api/v1/investors"))
	return router
}

func TestMatchEndpoint(t *testing.T) {
	router := setupInvestorsRouter(t)

	t.Run("post with answers", func(t *testing.T) {
		body := strings.NewReader(`{"answers":{"startupName":"Acme","oneLiner":"Payments"}}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/investors/match", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Fund A")
	})

	t.Run("post with empty body rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/investors/match", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get with fragment query", func(t *testing.T) {
		payload := base64.RawURLEncoding.EncodeToString([]byte(`{"startupName":"Acme"}`))
		fragment := url.QueryEscape("#investors=" + payload)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/investors/match?fragment="+fragment, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Fund B")
	})

	t.Run("get without fragment rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/investors/match", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get with malformed payload rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/investors/match?fragment=investors%3D%25%25%25", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
