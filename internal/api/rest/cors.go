package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// AllowedMethods lists every method the frontend origin may use.
var AllowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
	http.MethodOptions,
}

const (
	headerOrigin         = "Origin"
	headerRequestMethod  = "Access-Control-Request-Method"
	headerRequestHeaders = "Access-Control-Request-Headers"
	headerAllowHeaders   = "Access-Control-Allow-Headers"
)

// CORS allows credentialed cross-origin requests from frontendURL only.
// Preflights from that origin are granted whatever headers they ask for.
// Other origins receive no CORS headers: their simple requests are still
// served, their preflights are rejected with 400.
func CORS(frontendURL string) gin.HandlerFunc {
	allowed := strings.ToLower(strings.TrimRight(strings.TrimSpace(frontendURL), "/"))

	handler := cors.New(cors.Config{
		AllowOrigins:     []string{allowed},
		AllowMethods:     AllowedMethods,
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	return func(ctx *gin.Context) {
		origin := strings.ToLower(ctx.GetHeader(headerOrigin))
		if origin == "" {
			ctx.Next()
			return
		}

		preflight := ctx.Request.Method == http.MethodOptions && ctx.GetHeader(headerRequestMethod) != ""

		if origin != allowed {
			if preflight {
				respondError(ctx, http.StatusBadRequest, "Disallowed CORS origin")
				return
			}
			ctx.Next()
			return
		}

		// The handler matches the raw header against its lower-cased allow-list.
		ctx.Request.Header.Set(headerOrigin, origin)

		// No AllowHeaders are configured, so the handler leaves this header alone.
		if preflight {
			if requested := ctx.GetHeader(headerRequestHeaders); requested != "" {
				ctx.Header(headerAllowHeaders, requested)
			}
		}

		handler(ctx)
	}
}
