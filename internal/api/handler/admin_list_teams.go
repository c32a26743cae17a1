package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"team-registry/internal/api"
	"team-registry/internal/domain"
	"team-registry/internal/identity"
	"team-registry/internal/repository"
)

// AdminListTeams lists every team in every state, newest first. Requires the
// platform-admin capability.
func AdminListTeams(repo repository.Repository, requestTimeout time.Duration, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		user, ok := requireAdmin(w, r, "AdminListTeams", logger)
		if !ok {
			return
		}

		teams, err := repo.ListAllTeams(ctx)
		if err != nil {
			logger.Error("AdminListTeams: failed to list teams", zap.Error(err))
			WriteError(w, logger, "failed to list teams", http.StatusInternalServerError)
			return
		}

		out := make([]api.Team, len(teams))
		for i := range teams {
			out[i] = teamToAPI(&teams[i])
		}

		writeJSON(w, logger, http.StatusOK, out)

		logger.Info("AdminListTeams: successfully served teams",
			zap.Int("count", len(out)),
			zap.String("email", user.Email),
		)
	}
}

// requireAdmin answers 401 without identity and 403 without the admin
// capability. Returns false if a response has been written.
func requireAdmin(w http.ResponseWriter, r *http.Request, op string, logger *zap.Logger) (*domain.User, bool) {
	user, authed := identity.FromContext(r.Context())
	if !authed {
		logger.Warn(op + ": no identity")
		api.WriteApiError(w, logger, api.ErrUnauthenticated, api.CodeUnauthenticated, http.StatusUnauthorized)
		return nil, false
	}

	if !user.IsAdmin {
		logger.Warn(op+": not a platform admin", zap.String("email", user.Email))
		api.WriteApiError(w, logger, api.ErrForbidden, api.CodeForbidden, http.StatusForbidden)
		return nil, false
	}

	return user, true
}
