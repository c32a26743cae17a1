package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"team-registry/internal/domain"
)

type Config struct {
	Host     string        `env:"POSTGRES_HOST" env-required:"true"`
	Port     string        `env:"POSTGRES_PORT" env-required:"true"`
	User     string        `env:"POSTGRES_USER" env-required:"true"`
	Password string        `env:"POSTGRES_PASSWORD" env-required:"true"`
	Database string        `env:"POSTGRES_DATABASE" env-required:"true"`
	Timeout  time.Duration `env:"POSTGRES_TIMEOUT" env-default:"5s"`
	MaxConns int           `env:"POSTGRES_MAX_CONNECTIONS" env-default:"10"`
	MinConns int           `env:"POSTGRES_MIN_CONNECTIONS" env-default:"1"`
}

type Client struct {
	pool    *pgxpool.Pool
	logger  *zap.Logger
	timeout time.Duration
}

type teamRow struct {
	ID           string    `db:"id"`
	Slug         string    `db:"slug"`
	TeamName     string    `db:"team_name"`
	PRCGroup     string    `db:"prc_group"`
	VPName       string    `db:"vp_name"`
	DirectorName string    `db:"director_name"`
	Email        string    `db:"email"`
	Slack        string    `db:"slack"`
	RequestedBy  string    `db:"requested_by"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r *teamRow) toDomain() *domain.Team {
	return &domain.Team{
		ID:           r.ID,
		Slug:         r.Slug,
		TeamName:     r.TeamName,
		PRCGroup:     r.PRCGroup,
		VPName:       r.VPName,
		DirectorName: r.DirectorName,
		Email:        r.Email,
		Slack:        r.Slack,
		RequestedBy:  r.RequestedBy,
		Status:       domain.TeamStatus(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type applicationRow struct {
	ID          string    `db:"id"`
	AppName     string    `db:"app_name"`
	CarID       string    `db:"car_id"`
	Description string    `db:"description"`
	VP          string    `db:"vp"`
	Dir         string    `db:"dir"`
	EngDir      string    `db:"eng_dir"`
	EngDir2     string    `db:"eng_dir2"`
	Slack       string    `db:"slack"`
	Email       string    `db:"email"`
	SnowGroup   string    `db:"snow_group"`
	TeamID      string    `db:"team_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r *applicationRow) toDomain() domain.Application {
	return domain.Application{
		ID:          r.ID,
		AppName:     r.AppName,
		CarID:       r.CarID,
		Description: r.Description,
		VP:          r.VP,
		Dir:         r.Dir,
		EngDir:      r.EngDir,
		EngDir2:     r.EngDir2,
		Slack:       r.Slack,
		Email:       r.Email,
		SnowGroup:   r.SnowGroup,
		TeamID:      r.TeamID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type userRow struct {
	ID     string   `db:"id"`
	Email  string   `db:"email"`
	Groups []string `db:"groups"`
}
