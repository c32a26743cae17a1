package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"team-registry/internal/domain"
	"team-registry/internal/repository"
)

const pgUniqueViolation = "23505"

func New(ctx context.Context, config *Config, logger *zap.Logger) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, config.Timeout)
	defer cancel()

	dsn := buildDSN(config)

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	err = pool.Ping(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &Client{
		pool:    pool,
		logger:  logger,
		timeout: config.Timeout,
	}, nil
}

func (c *Client) CreateTeam(ctx context.Context, team *domain.Team) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.pool.QueryRow(ctx, queryCreateTeam,
		team.ID,
		team.Slug,
		team.TeamName,
		team.PRCGroup,
		team.VPName,
		team.DirectorName,
		team.Email,
		team.Slack,
		team.RequestedBy,
		string(team.Status),
	).Scan(&team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			c.logger.Warn(repository.ErrDuplicateSlug.Error(), zap.String("slug", team.Slug))
			return fmt.Errorf("%w: %s", repository.ErrDuplicateSlug, team.Slug)
		}

		c.logger.Error("failed to create team", zap.Error(err), zap.String("slug", team.Slug))
		return fmt.Errorf("failed to create team: %s: %w", team.Slug, err)
	}

	c.logger.Info("successfully stored team to database", zap.String("slug", team.Slug))
	return nil
}

func (c *Client) GetTeamBySlug(ctx context.Context, slug string) (*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var row teamRow
	err := pgxscan.Get(ctx, c.pool, &row, queryGetTeamBySlug, slug)
	if err != nil {
		if pgxscan.NotFound(err) {
			c.logger.Warn(repository.ErrTeamNotFound.Error(), zap.String("slug", slug))
			return nil, repository.ErrTeamNotFound
		}

		c.logger.Error("failed to get team by slug", zap.String("slug", slug), zap.Error(err))
		return nil, fmt.Errorf("failed to get team by slug: %w", err)
	}

	return row.toDomain(), nil
}

func (c *Client) GetTeamByID(ctx context.Context, id string) (*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var row teamRow
	err := pgxscan.Get(ctx, c.pool, &row, queryGetTeamByID, id)
	if err != nil {
		if pgxscan.NotFound(err) {
			c.logger.Warn(repository.ErrTeamNotFound.Error(), zap.String("team_id", id))
			return nil, repository.ErrTeamNotFound
		}

		c.logger.Error("failed to get team by id", zap.String("team_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get team by id: %w", err)
	}

	return row.toDomain(), nil
}

func (c *Client) ListApprovedTeams(ctx context.Context) ([]domain.TeamSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	rows, err := c.pool.Query(ctx, queryListApprovedTeams)
	if err != nil {
		c.logger.Error("failed to list approved teams", zap.Error(err))
		return nil, fmt.Errorf("failed to list approved teams: %w", err)
	}
	defer rows.Close()

	teams := make([]domain.TeamSummary, 0)
	for rows.Next() {
		var t domain.TeamSummary

		err = rows.Scan(&t.ID, &t.Slug, &t.TeamName, &t.PRCGroup)
		if err != nil {
			c.logger.Error("failed to scan team summary", zap.Error(err))
			return nil, fmt.Errorf("failed to scan team summary: %w", err)
		}

		teams = append(teams, t)
	}
	err = rows.Err()
	if err != nil {
		c.logger.Error("rows error", zap.Error(err))
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return teams, nil
}

func (c *Client) ListAllTeams(ctx context.Context) ([]domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var rows []teamRow
	err := pgxscan.Select(ctx, c.pool, &rows, queryListAllTeams)
	if err != nil {
		c.logger.Error("failed to list teams", zap.Error(err))
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]domain.Team, 0, len(rows))
	for i := range rows {
		teams = append(teams, *rows[i].toDomain())
	}

	return teams, nil
}

func (c *Client) UpdateTeamContacts(ctx context.Context, slug string, update *domain.TeamUpdate) (*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var row teamRow
	err := pgxscan.Get(ctx, c.pool, &row, queryUpdateTeamContacts,
		slug,
		update.TeamName,
		update.VPName,
		update.DirectorName,
		update.Email,
		update.Slack,
	)
	if err != nil {
		if pgxscan.NotFound(err) {
			c.logger.Warn(repository.ErrTeamNotFound.Error(), zap.String("slug", slug))
			return nil, repository.ErrTeamNotFound
		}

		c.logger.Error("failed to update team contacts", zap.String("slug", slug), zap.Error(err))
		return nil, fmt.Errorf("failed to update team contacts: %w", err)
	}

	c.logger.Info("successfully updated team contacts", zap.String("slug", slug))
	return row.toDomain(), nil
}

func (c *Client) SetTeamStatus(ctx context.Context, id string, status domain.TeamStatus) (*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var row teamRow
	err := pgxscan.Get(ctx, c.pool, &row, querySetTeamStatus, id, string(status))
	if err != nil {
		if pgxscan.NotFound(err) {
			c.logger.Warn(repository.ErrTeamNotFound.Error(), zap.String("team_id", id))
			return nil, repository.ErrTeamNotFound
		}

		c.logger.Error("failed to set team status", zap.String("team_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to set team status: %w", err)
	}

	c.logger.Info("successfully set team status",
		zap.String("team_id", id),
		zap.String("status", string(status)),
	)
	return row.toDomain(), nil
}

func (c *Client) CreateApplication(ctx context.Context, app *domain.Application) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.pool.QueryRow(ctx, queryCreateApplication,
		app.ID,
		app.AppName,
		app.CarID,
		app.Description,
		app.VP,
		app.Dir,
		app.EngDir,
		app.EngDir2,
		app.Slack,
		app.Email,
		app.SnowGroup,
		app.TeamID,
	).Scan(&app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		c.logger.Error("failed to create application",
			zap.String("app_name", app.AppName),
			zap.String("team_id", app.TeamID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to create application: %s: %w", app.AppName, err)
	}

	c.logger.Info("successfully stored application to database",
		zap.String("app_name", app.AppName),
		zap.String("team_id", app.TeamID),
	)
	return nil
}

func (c *Client) ListApplications(ctx context.Context, teamID string) ([]domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var rows []applicationRow
	err := pgxscan.Select(ctx, c.pool, &rows, queryListApplications, teamID)
	if err != nil {
		c.logger.Error("failed to list applications", zap.String("team_id", teamID), zap.Error(err))
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	apps := make([]domain.Application, 0, len(rows))
	for i := range rows {
		apps = append(apps, rows[i].toDomain())
	}

	return apps, nil
}

func (c *Client) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var row userRow
	err := pgxscan.Get(ctx, c.pool, &row, queryGetUserByEmail, email)
	if err != nil {
		if pgxscan.NotFound(err) {
			c.logger.Warn(repository.ErrUserNotFound.Error(), zap.String("email", email))
			return nil, repository.ErrUserNotFound
		}

		c.logger.Error("failed to get user", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &domain.User{
		Email:  row.Email,
		Groups: row.Groups,
	}, nil
}

func (c *Client) Close() {
	c.pool.Close()
}

func buildDSN(config *Config) string {
	dsn := fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s pool_max_conns=%d pool_min_conns=%d",
		config.User,
		config.Password,
		config.Host,
		config.Port,
		config.Database,
		config.MaxConns,
		config.MinConns,
	)

	return dsn
}
