package bridge

import (
	"mime"
	"net/http"
	"strings"

	"github.com/shellbridge/shellbridge/internal/cmderr"
)

// checkOrigin rejects browser requests sent from origins that are not in
// Options.AllowedOrigins. Requests without an Origin header don't come from
// a web page and go through.
func (s *Server) checkOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" || s.isOriginAllowed(origin) {
			next.ServeHTTP(w, r)
			return
		}
		s.logger.WarnContext(r.Context(), "rejected request from unknown origin", "origin", origin, "path", r.URL.Path)
		jsonToHTTPHandler(func(*http.Request) jsonResponse {
			return jsonResponse{err: cmderr.Forbidden("origin %q is not allowed", origin)}
		})(w, r)
	})
}

func (s *Server) isOriginAllowed(origin string) bool {
	for _, allowed := range s.allowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// isJSONRequest reports whether the request body is declared as JSON.
// Browsers can't send that content type cross-origin without a preflight.
func isJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}
