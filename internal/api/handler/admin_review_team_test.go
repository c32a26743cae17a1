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

const teamID = "11111111-1111-1111-1111-111111111111"

func reviewRequest(t *testing.T, action string, user *domain.User) *http.Request {
	t.Helper()

	req := newJSONRequest(t, http.MethodPatch, "/admin/teams/"+teamID, api.ReviewTeamRequest{Action: action})
	req = withTeamID(req, teamID)
	if user != nil {
		req = withUser(req, user)
	}
	return req
}

func TestAdminReviewTeam_Approve(t *testing.T) {
	team := approvedTeam()

	repo := new(MockRepository)
	repo.On("SetTeamStatus", mock.Anything, teamID, domain.TeamStatusApproved).Return(team, nil)

	w := httptest.NewRecorder()
	AdminReviewTeam(repo, testTimeout, zap.NewNop())(w, reviewRequest(t, "approve", adminUser()))

	require.Equal(t, http.StatusOK, w.Code)

	var got api.Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, string(domain.TeamStatusApproved), got.Status)
	repo.AssertExpectations(t)
}

func TestAdminReviewTeam_RejectKeepsRow(t *testing.T) {
	team := approvedTeam()
	team.Status = domain.TeamStatusRejected

	repo := new(MockRepository)
	repo.On("SetTeamStatus", mock.Anything, teamID, domain.TeamStatusRejected).Return(team, nil)

	w := httptest.NewRecorder()
	AdminReviewTeam(repo, testTimeout, zap.NewNop())(w, reviewRequest(t, "reject", adminUser()))

	require.Equal(t, http.StatusOK, w.Code)

	var got api.Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, string(domain.TeamStatusRejected), got.Status)
	repo.AssertExpectations(t)
}

func TestAdminReviewTeam_InvalidAction(t *testing.T) {
	repo := new(MockRepository)

	w := httptest.NewRecorder()
	AdminReviewTeam(repo, testTimeout, zap.NewNop())(w, reviewRequest(t, "defer", adminUser()))

	require.Equal(t, http.StatusBadRequest, w.Code)
	e := decodeErrorEnvelope(t, w)
	assert.Equal(t, api.CodeInvalidAction, e.Error.Code)
	repo.AssertNotCalled(t, "SetTeamStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminReviewTeam_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("SetTeamStatus", mock.Anything, teamID, domain.TeamStatusApproved).
		Return(nil, repository.ErrTeamNotFound)

	w := httptest.NewRecorder()
	AdminReviewTeam(repo, testTimeout, zap.NewNop())(w, reviewRequest(t, "approve", adminUser()))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminReviewTeam_RequiresAdmin(t *testing.T) {
	repo := new(MockRepository)

	w := httptest.NewRecorder()
	AdminReviewTeam(repo, testTimeout, zap.NewNop())(w, reviewRequest(t, "approve", memberUser()))

	require.Equal(t, http.StatusForbidden, w.Code)
	repo.AssertNotCalled(t, "SetTeamStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminReviewTeam_RequiresIdentity(t *testing.T) {
	repo := new(MockRepository)

	w := httptest.NewRecorder()
	AdminReviewTeam(repo, testTimeout, zap.NewNop())(w, reviewRequest(t, "approve", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminListTeams_AllStates(t *testing.T) {
	pending := *approvedTeam()
	pending.Status = domain.TeamStatusPending
	rejected := *approvedTeam()
	rejected.Status = domain.TeamStatusRejected

	repo := new(MockRepository)
	repo.On("ListAllTeams", mock.Anything).Return([]domain.Team{*approvedTeam(), pending, rejected}, nil)

	req := withUser(newJSONRequest(t, http.MethodGet, "/admin/teams", nil), adminUser())
	w := httptest.NewRecorder()

	AdminListTeams(repo, testTimeout, zap.NewNop())(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []api.Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 3)
}

func TestAdminListTeams_RequiresAdmin(t *testing.T) {
	repo := new(MockRepository)

	req := withUser(newJSONRequest(t, http.MethodGet, "/admin/teams", nil), memberUser())
	w := httptest.NewRecorder()

	AdminListTeams(repo, testTimeout, zap.NewNop())(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	repo.AssertNotCalled(t, "ListAllTeams", mock.Anything)
}
