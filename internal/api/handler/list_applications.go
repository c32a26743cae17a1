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

// ListApplications serves a team's applications to its own members.
func ListApplications(repo repository.Repository, requestTimeout time.Duration, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		slug := chi.URLParam(r, "teamSlug")

		user, authed := identity.FromContext(r.Context())
		if !authed {
			logger.Warn("ListApplications: no identity", zap.String("slug", slug))
			api.WriteApiError(w, logger, api.ErrUnauthenticated, api.CodeUnauthenticated, http.StatusUnauthorized)
			return
		}

		team, ok := fetchApprovedTeam(ctx, repo, slug, "ListApplications", w, logger)
		if !ok {
			return
		}

		if !access.Allowed(user, team) {
			logger.Warn("ListApplications: access denied",
				zap.String("slug", slug),
				zap.String("email", user.Email),
			)
			api.WriteApiError(w, logger, api.ErrForbidden, api.CodeForbidden, http.StatusForbidden)
			return
		}

		apps, err := repo.ListApplications(ctx, team.ID)
		if err != nil {
			logger.Error("ListApplications: failed to list applications", zap.String("slug", slug), zap.Error(err))
			WriteError(w, logger, "failed to list applications", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, http.StatusOK, applicationsToAPI(apps))
	}
}
