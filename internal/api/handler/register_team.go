package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"team-registry/internal/api"
	"team-registry/internal/api/validate"
	"team-registry/internal/domain"
	"team-registry/internal/identity"
	"team-registry/internal/repository"
)

// RegisterTeam creates a pending team from a registration submission. Slug
// uniqueness is enforced by the database constraint, a violation maps to
// DUPLICATE_SLUG rather than a generic failure.
func RegisterTeam(repo repository.Repository, requestTimeout time.Duration, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		var req api.RegisterTeamRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Warn("RegisterTeam: failed to decode body", zap.Error(err))
			WriteError(w, logger, "failed to decode body", http.StatusBadRequest)
			return
		}

		fieldErrs := validate.Registration(&req)
		if len(fieldErrs) > 0 {
			logger.Warn("RegisterTeam: validation failed", zap.Int("field_errors", len(fieldErrs)))
			api.WriteValidationError(w, logger, fieldErrs)
			return
		}

		requestedBy := req.RequestedBy
		if user, ok := identity.FromContext(r.Context()); ok {
			requestedBy = user.Email
		}

		team := &domain.Team{
			ID:           uuid.NewString(),
			Slug:         req.Slug,
			TeamName:     req.TeamName,
			PRCGroup:     req.PRCGroup,
			VPName:       req.VPName,
			DirectorName: req.DirectorName,
			Email:        req.Email,
			Slack:        req.Slack,
			RequestedBy:  requestedBy,
			Status:       domain.TeamStatusPending,
		}

		err = repo.CreateTeam(ctx, team)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateSlug) {
				logger.Warn("RegisterTeam: slug already taken", zap.String("slug", req.Slug))
				msg := fmt.Sprintf("%s: %s", req.Slug, api.ErrDuplicateSlug)
				api.WriteApiError(w, logger, msg, api.CodeDuplicateSlug, http.StatusConflict)
				return
			}

			logger.Error("RegisterTeam: failed to save team", zap.Error(err))
			WriteError(w, logger, "failed to save team", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, http.StatusOK, teamToAPI(team))

		logger.Info("RegisterTeam: successfully registered team",
			zap.String("slug", team.Slug),
			zap.String("requested_by", team.RequestedBy),
		)
	}
}
