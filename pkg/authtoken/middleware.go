package authtoken

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tillpoint/posaccess/pkg/logger"
	"github.com/tillpoint/posaccess/pkg/rbac"
)

// ErrorHandlerFunc writes the response for a rejected request. err is the
// Verify error, or ErrInvalidToken for a malformed Authorization header.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)

// MiddlewareConfig configures MiddlewareWithConfig.
type MiddlewareConfig struct {
	Verifier     *Verifier
	ErrorHandler ErrorHandlerFunc // defaults to a plain-text 401
}

// Middleware authenticates bearer tokens. A missing header passes the
// request on without a principal; a malformed or invalid token gets 401.
func Middleware(v *Verifier) func(http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{Verifier: v})
}

// MiddlewareWithConfig is Middleware with a custom rejection writer.
func MiddlewareWithConfig(cfg MiddlewareConfig) func(http.Handler) http.Handler {
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		}
	}
	v := cfg.Verifier

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(header)
			if !ok {
				cfg.ErrorHandler(w, r, errors.Join(ErrInvalidToken, errMalformedHeader))
				return
			}
			principal, err := v.Verify(token)
			if err != nil {
				v.log.DebugContext(r.Context(), "token rejected", logger.Error(err))
				cfg.ErrorHandler(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(rbac.WithPrincipal(r.Context(), principal)))
		})
	}
}

var errMalformedHeader = errors.New("authtoken: malformed authorization header")

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
