package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"team-registry/internal/api"
	"team-registry/internal/domain"
	"team-registry/internal/repository"
)

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, logger *zap.Logger, errMessage string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Status:  statusCode,
		Message: errMessage,
	}

	err := json.NewEncoder(w).Encode(resp)
	if err != nil {
		logger.Error("WriteError: failed to encoding response", zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		logger.Error("writeJSON: failed to encode response", zap.Error(err))
	}
}

// fetchApprovedTeam resolves a slug to an approved team. Pending and
// rejected teams answer NOT_FOUND on every non-admin surface. Returns false
// if a response has already been written.
func fetchApprovedTeam(ctx context.Context, repo repository.Repository, slug string, op string, w http.ResponseWriter, logger *zap.Logger) (*domain.Team, bool) {
	team, err := repo.GetTeamBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			logger.Warn(op+": team not found", zap.String("slug", slug))
			msg := fmt.Sprintf("%s %s", slug, api.ErrNotFound)
			api.WriteApiError(w, logger, msg, api.CodeNotFound, http.StatusNotFound)
			return nil, false
		}

		logger.Error(op+": get team failed", zap.Error(err))
		WriteError(w, logger, "get team failed", http.StatusInternalServerError)
		return nil, false
	}

	if team.Status != domain.TeamStatusApproved {
		logger.Warn(op+": team not approved", zap.String("slug", slug), zap.String("status", string(team.Status)))
		msg := fmt.Sprintf("%s %s", slug, api.ErrNotFound)
		api.WriteApiError(w, logger, msg, api.CodeNotFound, http.StatusNotFound)
		return nil, false
	}

	return team, true
}
