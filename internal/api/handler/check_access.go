package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"team-registry/internal/access"
	"team-registry/internal/api"
	"team-registry/internal/identity"
	"team-registry/internal/repository"
)

// CheckAccess answers whether the caller may administer the team. Denial is
// a regular 200 with hasAccess false, only missing identity is an error.
func CheckAccess(repo repository.Repository, requestTimeout time.Duration, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		slug := chi.URLParam(r, "teamSlug")

		user, authed := identity.FromContext(r.Context())
		if !authed {
			logger.Warn("CheckAccess: no identity", zap.String("slug", slug))
			api.WriteApiError(w, logger, api.ErrUnauthenticated, api.CodeUnauthenticated, http.StatusUnauthorized)
			return
		}

		team, ok := fetchApprovedTeam(ctx, repo, slug, "CheckAccess", w, logger)
		if !ok {
			return
		}

		writeJSON(w, logger, http.StatusOK, api.AccessResponse{
			HasAccess: access.Allowed(user, team),
		})
	}
}
