package identity

import (
	"encoding/json"
	"net/http"
	"slices"

	"go.uber.org/zap"

	"team-registry/internal/domain"
)

// Middleware resolves identity evidence once per request and stores the
// result on the context. Malformed or unknown evidence leaves the request
// anonymous; handlers that need identity reject it as unauthenticated.
func Middleware(provider Provider, config *Config, log *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := resolve(r, provider, config, log)
			if user != nil {
				user.IsAdmin = slices.Contains(user.Groups, config.AdminGroup)
				r = r.WithContext(WithUser(r.Context(), user))
			}

			next.ServeHTTP(w, r)
		})
	}
}

func resolve(r *http.Request, provider Provider, config *Config, log *zap.Logger) *domain.User {
	if raw := r.Header.Get(config.UserHeader); raw != "" {
		var payload struct {
			Email  string   `json:"email"`
			Groups []string `json:"groups"`
		}

		err := json.Unmarshal([]byte(raw), &payload)
		if err != nil || payload.Email == "" {
			log.Warn("identity: malformed user header", zap.Error(err))
			return nil
		}

		return &domain.User{
			Email:  payload.Email,
			Groups: payload.Groups,
		}
	}

	cookie, err := r.Cookie(config.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	user, err := provider.GetUserByEmail(r.Context(), cookie.Value)
	if err != nil {
		log.Warn("identity: lookup failed", zap.String("email", cookie.Value), zap.Error(err))
		return nil
	}

	return user
}
