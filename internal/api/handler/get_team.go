package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"team-registry/internal/repository"
)

// GetTeam serves a team's full record plus its applications. Pending and
// rejected teams are invisible here, they exist only on the admin surface.
func GetTeam(repo repository.Repository, requestTimeout time.Duration, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		slug := chi.URLParam(r, "teamSlug")

		team, ok := fetchApprovedTeam(ctx, repo, slug, "GetTeam", w, logger)
		if !ok {
			return
		}

		apps, err := repo.ListApplications(ctx, team.ID)
		if err != nil {
			logger.Error("GetTeam: failed to list applications", zap.String("slug", slug), zap.Error(err))
			WriteError(w, logger, "failed to list applications", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, http.StatusOK, teamWithApps(team, apps))

		logger.Info("GetTeam: successfully served team", zap.String("slug", slug))
	}
}
