package repository

import (
	"context"
	"errors"

	"team-registry/internal/domain"
)

var (
	ErrTeamNotFound  = errors.New("team not found")
	ErrDuplicateSlug = errors.New("team slug already taken")
	ErrUserNotFound  = errors.New("user not found")
)

type Repository interface {
	CreateTeam(ctx context.Context, team *domain.Team) error
	GetTeamBySlug(ctx context.Context, slug string) (*domain.Team, error)
	GetTeamByID(ctx context.Context, id string) (*domain.Team, error)
	ListApprovedTeams(ctx context.Context) ([]domain.TeamSummary, error)
	ListAllTeams(ctx context.Context) ([]domain.Team, error)
	UpdateTeamContacts(ctx context.Context, slug string, update *domain.TeamUpdate) (*domain.Team, error)
	SetTeamStatus(ctx context.Context, id string, status domain.TeamStatus) (*domain.Team, error)

	CreateApplication(ctx context.Context, app *domain.Application) error
	ListApplications(ctx context.Context, teamID string) ([]domain.Application, error)

	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	Close()
}
