package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"team-registry/internal/access"
	"team-registry/internal/api"
	"team-registry/internal/api/validate"
	"team-registry/internal/domain"
	"team-registry/internal/identity"
	"team-registry/internal/repository"
)

// UpdateTeam edits a team's contact fields. The policy check runs here like
// on every other mutating route, membership in the team's PRC group is
// required. Slug and PRC group are not editable.
func UpdateTeam(repo repository.Repository, requestTimeout time.Duration, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		slug := chi.URLParam(r, "teamSlug")

		user, authed := identity.FromContext(r.Context())
		if !authed {
			logger.Warn("UpdateTeam: no identity", zap.String("slug", slug))
			api.WriteApiError(w, logger, api.ErrUnauthenticated, api.CodeUnauthenticated, http.StatusUnauthorized)
			return
		}

		team, ok := fetchApprovedTeam(ctx, repo, slug, "UpdateTeam", w, logger)
		if !ok {
			return
		}

		if !access.Allowed(user, team) {
			logger.Warn("UpdateTeam: access denied",
				zap.String("slug", slug),
				zap.String("email", user.Email),
			)
			api.WriteApiError(w, logger, api.ErrForbidden, api.CodeForbidden, http.StatusForbidden)
			return
		}

		var req api.UpdateTeamRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Warn("UpdateTeam: failed to decode body", zap.Error(err))
			WriteError(w, logger, "failed to decode body", http.StatusBadRequest)
			return
		}

		fieldErrs := validate.TeamUpdate(&req)
		if len(fieldErrs) > 0 {
			logger.Warn("UpdateTeam: validation failed", zap.Int("field_errors", len(fieldErrs)))
			api.WriteValidationError(w, logger, fieldErrs)
			return
		}

		updated, err := repo.UpdateTeamContacts(ctx, slug, &domain.TeamUpdate{
			TeamName:     req.TeamName,
			VPName:       req.VPName,
			DirectorName: req.DirectorName,
			Email:        req.Email,
			Slack:        req.Slack,
		})
		if err != nil {
			if errors.Is(err, repository.ErrTeamNotFound) {
				api.WriteApiError(w, logger, api.ErrNotFound, api.CodeNotFound, http.StatusNotFound)
				return
			}

			logger.Error("UpdateTeam: failed to update team", zap.String("slug", slug), zap.Error(err))
			WriteError(w, logger, "failed to update team", http.StatusInternalServerError)
			return
		}

		apps, err := repo.ListApplications(ctx, updated.ID)
		if err != nil {
			logger.Error("UpdateTeam: failed to list applications", zap.String("slug", slug), zap.Error(err))
			WriteError(w, logger, "failed to list applications", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, http.StatusOK, teamWithApps(updated, apps))

		logger.Info("UpdateTeam: successfully updated team",
			zap.String("slug", slug),
			zap.String("email", user.Email),
		)
	}
}
