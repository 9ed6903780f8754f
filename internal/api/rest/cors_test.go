//go:build unit
// +build unit

package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testFrontendURL = "http://localhost:5173"

func newCORSTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(CORS(testFrontendURL + "/"))
	r.GET("/", Health)
	r.POST("/employees", func(ctx *gin.Context) { ctx.Status(http.StatusCreated) })
	return r
}

func TestCORS_AllowedOriginPreflight(t *testing.T) {
	r := newCORSTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/employees", nil)
	req.Header.Set("Origin", testFrontendURL)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Custom-Header")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, testFrontendURL, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "Content-Type, X-Custom-Header", w.Header().Get("Access-Control-Allow-Headers"))
	for _, method := range []string{"GET", "POST", "PUT", "PATCH", "DELETE"} {
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), method)
	}
}

func TestCORS_AllowedOriginSimpleRequest(t *testing.T) {
	r := newCORSTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/employees", nil)
	req.Header.Set("Origin", testFrontendURL)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, testFrontendURL, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_DisallowedOriginPreflight(t *testing.T) {
	r := newCORSTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/employees", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_DisallowedOriginSimpleRequest(t *testing.T) {
	r := newCORSTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/employees", nil)
	req.Header.Set("Origin", "http://evil.example")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_HealthAlwaysSucceeds(t *testing.T) {
	r := newCORSTestRouter()

	for _, origin := range []string{"", testFrontendURL, "http://evil.example"} {
		t.Run("origin="+origin, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if origin != "" {
				req.Header.Set("Origin", origin)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"status":"HRMS Lite Backend Running"}`, w.Body.String())
		})
	}
}

func TestCORS_MixedCaseFrontendURL(t *testing.T) {
	r := gin.New()
	r.Use(CORS("http://LocalHost:5173"))
	r.GET("/", Health)

	for _, origin := range []string{"http://LocalHost:5173", "http://localhost:5173"} {
		t.Run("origin="+origin, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", origin)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}
