package handler

import (
	"team-registry/internal/api"
	"team-registry/internal/domain"
)

func teamToAPI(t *domain.Team) api.Team {
	return api.Team{
		ID:           t.ID,
		Slug:         t.Slug,
		TeamName:     t.TeamName,
		PRCGroup:     t.PRCGroup,
		VPName:       t.VPName,
		DirectorName: t.DirectorName,
		Email:        t.Email,
		Slack:        t.Slack,
		RequestedBy:  t.RequestedBy,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func teamWithApps(t *domain.Team, apps []domain.Application) api.Team {
	out := teamToAPI(t)
	out.Applications = applicationsToAPI(apps)
	return out
}

func applicationToAPI(a *domain.Application) api.Application {
	return api.Application{
		ID:          a.ID,
		AppName:     a.AppName,
		CarID:       a.CarID,
		Description: a.Description,
		VP:          a.VP,
		Dir:         a.Dir,
		EngDir:      a.EngDir,
		EngDir2:     a.EngDir2,
		Slack:       a.Slack,
		Email:       a.Email,
		SnowGroup:   a.SnowGroup,
		TeamID:      a.TeamID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func applicationsToAPI(apps []domain.Application) []api.Application {
	out := make([]api.Application, len(apps))
	for i := range apps {
		out[i] = applicationToAPI(&apps[i])
	}
	return out
}
