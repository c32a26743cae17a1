package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"team-registry/internal/api"
	"team-registry/internal/domain"
	"team-registry/internal/identity"
)

const testTimeout = 5 * time.Second

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withSlug(r *http.Request, slug string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("teamSlug", slug)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withTeamID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("teamID", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withUser(r *http.Request, user *domain.User) *http.Request {
	return r.WithContext(identity.WithUser(r.Context(), user))
}

type errorEnvelope struct {
	Error struct {
		Code    string           `json:"code"`
		Message string           `json:"message"`
		Fields  []api.FieldError `json:"fields"`
	} `json:"error"`
}

func decodeErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()

	var e errorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func approvedTeam() *domain.Team {
	return &domain.Team{
		ID:           "11111111-1111-1111-1111-111111111111",
		Slug:         "team1",
		TeamName:     "Team One",
		PRCGroup:     "team1-prc",
		VPName:       "VP Name",
		DirectorName: "Director Name",
		Email:        "team1@example.com",
		Slack:        "#team1",
		RequestedBy:  "user1@example.com",
		Status:       domain.TeamStatusApproved,
	}
}

func memberUser() *domain.User {
	return &domain.User{
		Email:  "user1@example.com",
		Groups: []string{"team1-prc", "team2-prc"},
	}
}

func adminUser() *domain.User {
	return &domain.User{
		Email:   "admin@example.com",
		Groups:  []string{"registry-admins"},
		IsAdmin: true,
	}
}
