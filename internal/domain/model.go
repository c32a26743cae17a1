package domain

import "time"

type TeamStatus string

const (
	TeamStatusPending  TeamStatus = "pending"
	TeamStatusApproved TeamStatus = "approved"
	TeamStatusRejected TeamStatus = "rejected"
)

// Team is the top-level tenant entity. A team starts out pending and is
// moved to approved or rejected by a platform admin. Rejected rows are kept
// for audit and never surface outside the admin listing.
type Team struct {
	ID           string
	Slug         string
	TeamName     string
	PRCGroup     string
	VPName       string
	DirectorName string
	Email        string
	Slack        string
	RequestedBy  string
	Status       TeamStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TeamSummary is the projection served by the public team listing.
type TeamSummary struct {
	ID       string
	Slug     string
	TeamName string
	PRCGroup string
}

// TeamUpdate carries the contact fields a team member may edit. Slug and
// PRC group are fixed at registration.
type TeamUpdate struct {
	TeamName     string
	VPName       string
	DirectorName string
	Email        string
	Slack        string
}

// Application is a registered software system owned by exactly one team.
type Application struct {
	ID          string
	AppName     string
	CarID       string
	Description string
	VP          string
	Dir         string
	EngDir      string
	EngDir2     string
	Slack       string
	Email       string
	SnowGroup   string
	TeamID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// User is a resolved identity. IsAdmin is derived during resolution from
// membership in the configured platform-admin group, it is not stored.
type User struct {
	Email   string
	Groups  []string
	IsAdmin bool
}
