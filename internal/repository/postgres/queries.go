package postgres

const (
	queryCreateTeam = `insert into team_registry.teams
    		(id, slug, team_name, prc_group, vp_name, director_name, email, slack, requested_by, status)
    		values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    		returning created_at, updated_at`

	queryGetTeamBySlug = `select id, slug, team_name, prc_group, vp_name, director_name,
    		email, slack, requested_by, status, created_at, updated_at
    		from team_registry.teams where slug = $1`

	queryGetTeamByID = `select id, slug, team_name, prc_group, vp_name, director_name,
    		email, slack, requested_by, status, created_at, updated_at
    		from team_registry.teams where id = $1`

	queryListApprovedTeams = `select id, slug, team_name, prc_group
    		from team_registry.teams where status = 'approved' order by team_name`

	queryListAllTeams = `select id, slug, team_name, prc_group, vp_name, director_name,
    		email, slack, requested_by, status, created_at, updated_at
    		from team_registry.teams order by created_at desc`

	queryUpdateTeamContacts = `update team_registry.teams
    		set team_name = $2, vp_name = $3, director_name = $4, email = $5, slack = $6, updated_at = now()
    		where slug = $1
    		returning id, slug, team_name, prc_group, vp_name, director_name,
    		email, slack, requested_by, status, created_at, updated_at`

	querySetTeamStatus = `update team_registry.teams
    		set status = $2, updated_at = now()
    		where id = $1
    		returning id, slug, team_name, prc_group, vp_name, director_name,
    		email, slack, requested_by, status, created_at, updated_at`

	queryCreateApplication = `insert into team_registry.applications
    		(id, app_name, car_id, description, vp, dir, eng_dir, eng_dir2, slack, email, snow_group, team_id)
    		values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    		returning created_at, updated_at`

	queryListApplications = `select id, app_name, car_id, description, vp, dir, eng_dir, eng_dir2,
    		slack, email, snow_group, team_id, created_at, updated_at
    		from team_registry.applications where team_id = $1 order by created_at`

	queryGetUserByEmail = `select id, email, groups from team_registry.users where email = $1`
)
