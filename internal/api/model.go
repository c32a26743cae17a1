package api

import "time"

type Team struct {
	ID           string        `json:"id"`
	Slug         string        `json:"slug"`
	TeamName     string        `json:"teamName"`
	PRCGroup     string        `json:"prcGroup"`
	VPName       string        `json:"vpName"`
	DirectorName string        `json:"directorName"`
	Email        string        `json:"email"`
	Slack        string        `json:"slack"`
	RequestedBy  string        `json:"requestedBy"`
	Status       string        `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
	Applications []Application `json:"applications,omitempty"`
}

// TeamSummary is the projection of the public team listing.
type TeamSummary struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	TeamName string `json:"teamName"`
	PRCGroup string `json:"prcGroup"`
}

type RegisterTeamRequest struct {
	TeamName     string `json:"teamName"`
	Slug         string `json:"slug"`
	PRCGroup     string `json:"prcGroup"`
	VPName       string `json:"vpName"`
	DirectorName string `json:"directorName"`
	Email        string `json:"email"`
	Slack        string `json:"slack"`
	RequestedBy  string `json:"requestedBy"`
}

type UpdateTeamRequest struct {
	TeamName     string `json:"teamName"`
	VPName       string `json:"vpName"`
	DirectorName string `json:"directorName"`
	Email        string `json:"email"`
	Slack        string `json:"slack"`
}

type Application struct {
	ID          string    `json:"id"`
	AppName     string    `json:"appName"`
	CarID       string    `json:"carId"`
	Description string    `json:"description"`
	VP          string    `json:"vp"`
	Dir         string    `json:"dir"`
	EngDir      string    `json:"engDir"`
	EngDir2     string    `json:"engDir2,omitempty"`
	Slack       string    `json:"slack"`
	Email       string    `json:"email"`
	SnowGroup   string    `json:"snowGroup"`
	TeamID      string    `json:"teamId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateApplicationRequest struct {
	AppName     string `json:"appName"`
	CarID       string `json:"carId"`
	Description string `json:"description"`
	VP          string `json:"vp"`
	Dir         string `json:"dir"`
	EngDir      string `json:"engDir"`
	EngDir2     string `json:"engDir2"`
	Slack       string `json:"slack"`
	Email       string `json:"email"`
	SnowGroup   string `json:"snowGroup"`
}

type AccessResponse struct {
	HasAccess bool `json:"hasAccess"`
}

const (
	ReviewActionApprove = "approve"
	ReviewActionReject  = "reject"
)

type ReviewTeamRequest struct {
	Action string `json:"action"`
}
