package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"team-registry/internal/access"
	"team-registry/internal/api"
	"team-registry/internal/api/validate"
	"team-registry/internal/domain"
	"team-registry/internal/identity"
	"team-registry/internal/repository"
)

// CreateApplication registers an application under an approved team. The
// chain is identity, team lookup, policy, validation, and only then the
// insert, so a denied caller never reaches storage.
func CreateApplication(repo repository.Repository, requestTimeout time.Duration, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		slug := chi.URLParam(r, "teamSlug")

		user, authed := identity.FromContext(r.Context())
		if !authed {
			logger.Warn("CreateApplication: no identity", zap.String("slug", slug))
			api.WriteApiError(w, logger, api.ErrUnauthenticated, api.CodeUnauthenticated, http.StatusUnauthorized)
			return
		}

		team, ok := fetchApprovedTeam(ctx, repo, slug, "CreateApplication", w, logger)
		if !ok {
			return
		}

		if !access.Allowed(user, team) {
			logger.Warn("CreateApplication: access denied",
				zap.String("slug", slug),
				zap.String("email", user.Email),
			)
			api.WriteApiError(w, logger, api.ErrForbidden, api.CodeForbidden, http.StatusForbidden)
			return
		}

		var req api.CreateApplicationRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Warn("CreateApplication: failed to decode body", zap.Error(err))
			WriteError(w, logger, "failed to decode body", http.StatusBadRequest)
			return
		}

		fieldErrs := validate.Application(&req)
		if len(fieldErrs) > 0 {
			logger.Warn("CreateApplication: validation failed", zap.Int("field_errors", len(fieldErrs)))
			api.WriteValidationError(w, logger, fieldErrs)
			return
		}

		app := &domain.Application{
			ID:          uuid.NewString(),
			AppName:     req.AppName,
			CarID:       req.CarID,
			Description: req.Description,
			VP:          req.VP,
			Dir:         req.Dir,
			EngDir:      req.EngDir,
			EngDir2:     req.EngDir2,
			Slack:       req.Slack,
			Email:       req.Email,
			SnowGroup:   req.SnowGroup,
			TeamID:      team.ID,
		}

		err = repo.CreateApplication(ctx, app)
		if err != nil {
			logger.Error("CreateApplication: failed to save application",
				zap.String("slug", slug),
				zap.Error(err),
			)
			WriteError(w, logger, "failed to save application", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, http.StatusOK, applicationToAPI(app))

		logger.Info("CreateApplication: successfully registered application",
			zap.String("app_name", app.AppName),
			zap.String("slug", slug),
			zap.String("email", user.Email),
		)
	}
}
