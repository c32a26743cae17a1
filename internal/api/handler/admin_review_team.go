package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"team-registry/internal/api"
	"team-registry/internal/domain"
	"team-registry/internal/repository"
)

// AdminReviewTeam decides a registration request. Approve moves the team to
// approved and is idempotent; reject marks the row rejected, keeping it for
// audit instead of deleting it. Addressed by team id, not slug.
func AdminReviewTeam(repo repository.Repository, requestTimeout time.Duration, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		user, ok := requireAdmin(w, r, "AdminReviewTeam", logger)
		if !ok {
			return
		}

		teamID := chi.URLParam(r, "teamID")

		var req api.ReviewTeamRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Warn("AdminReviewTeam: failed to decode body", zap.Error(err))
			WriteError(w, logger, "failed to decode body", http.StatusBadRequest)
			return
		}

		var status domain.TeamStatus
		switch req.Action {
		case api.ReviewActionApprove:
			status = domain.TeamStatusApproved
		case api.ReviewActionReject:
			status = domain.TeamStatusRejected
		default:
			logger.Warn("AdminReviewTeam: invalid action", zap.String("action", req.Action))
			api.WriteApiError(w, logger, api.ErrInvalidAction, api.CodeInvalidAction, http.StatusBadRequest)
			return
		}

		team, err := repo.SetTeamStatus(ctx, teamID, status)
		if err != nil {
			if errors.Is(err, repository.ErrTeamNotFound) {
				logger.Warn("AdminReviewTeam: team not found", zap.String("team_id", teamID))
				msg := fmt.Sprintf("%s %s", teamID, api.ErrNotFound)
				api.WriteApiError(w, logger, msg, api.CodeNotFound, http.StatusNotFound)
				return
			}

			logger.Error("AdminReviewTeam: failed to set status", zap.String("team_id", teamID), zap.Error(err))
			WriteError(w, logger, "failed to set status", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, http.StatusOK, teamToAPI(team))

		logger.Info("AdminReviewTeam: successfully reviewed team",
			zap.String("team_id", teamID),
			zap.String("action", req.Action),
			zap.String("email", user.Email),
		)
	}
}
