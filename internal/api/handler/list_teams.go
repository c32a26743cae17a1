package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"team-registry/internal/api"
	"team-registry/internal/repository"
)

// ListTeams serves the public discovery listing. Only approved teams appear,
// projected down to identity and PRC group.
func ListTeams(repo repository.Repository, requestTimeout time.Duration, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		teams, err := repo.ListApprovedTeams(ctx)
		if err != nil {
			logger.Error("ListTeams: failed to list teams", zap.Error(err))
			WriteError(w, logger, "failed to list teams", http.StatusInternalServerError)
			return
		}

		out := make([]api.TeamSummary, len(teams))
		for i, t := range teams {
			out[i] = api.TeamSummary{
				ID:       t.ID,
				Slug:     t.Slug,
				TeamName: t.TeamName,
				PRCGroup: t.PRCGroup,
			}
		}

		writeJSON(w, logger, http.StatusOK, out)
	}
}
