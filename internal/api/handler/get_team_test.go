package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"team-registry/internal/api"
	"team-registry/internal/domain"
	"team-registry/internal/repository"
)

func TestGetTeam_Success(t *testing.T) {
	team := approvedTeam()
	apps := []domain.Application{
		{ID: "app-1", AppName: "Billing", TeamID: team.ID},
	}

	repo := new(MockRepository)
	repo.On("GetTeamBySlug", mock.Anything, "team1").Return(team, nil)
	repo.On("ListApplications", mock.Anything, team.ID).Return(apps, nil)

	req := withSlug(newJSONRequest(t, http.MethodGet, "/teams/team1", nil), "team1")
	w := httptest.NewRecorder()

	GetTeam(repo, testTimeout, zap.NewNop())(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got api.Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "team1", got.Slug)
	require.Len(t, got.Applications, 1)
	assert.Equal(t, "Billing", got.Applications[0].AppName)
}

func TestGetTeam_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetTeamBySlug", mock.Anything, "missing").Return(nil, repository.ErrTeamNotFound)

	req := withSlug(newJSONRequest(t, http.MethodGet, "/teams/missing", nil), "missing")
	w := httptest.NewRecorder()

	GetTeam(repo, testTimeout, zap.NewNop())(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	e := decodeErrorEnvelope(t, w)
	assert.Equal(t, api.CodeNotFound, e.Error.Code)
}

func TestGetTeam_PendingTeamHidden(t *testing.T) {
	team := approvedTeam()
	team.Status = domain.TeamStatusPending

	repo := new(MockRepository)
	repo.On("GetTeamBySlug", mock.Anything, "team1").Return(team, nil)

	req := withSlug(newJSONRequest(t, http.MethodGet, "/teams/team1", nil), "team1")
	w := httptest.NewRecorder()

	GetTeam(repo, testTimeout, zap.NewNop())(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	repo.AssertNotCalled(t, "ListApplications", mock.Anything, mock.Anything)
}

func TestGetTeam_RejectedTeamHidden(t *testing.T) {
	team := approvedTeam()
	team.Status = domain.TeamStatusRejected

	repo := new(MockRepository)
	repo.On("GetTeamBySlug", mock.Anything, "team1").Return(team, nil)

	req := withSlug(newJSONRequest(t, http.MethodGet, "/teams/team1", nil), "team1")
	w := httptest.NewRecorder()

	GetTeam(repo, testTimeout, zap.NewNop())(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTeams_ProjectsApprovedOnly(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListApprovedTeams", mock.Anything).Return([]domain.TeamSummary{
		{ID: "id-1", Slug: "team1", TeamName: "Team One", PRCGroup: "team1-prc"},
	}, nil)

	req := newJSONRequest(t, http.MethodGet, "/teams", nil)
	w := httptest.NewRecorder()

	ListTeams(repo, testTimeout, zap.NewNop())(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []api.TeamSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "team1-prc", got[0].PRCGroup)
}
