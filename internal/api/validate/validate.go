// Package validate checks request payloads field by field. Every check runs,
// so a response carries all failing fields at once rather than the first.
package validate

import (
	"net/mail"
	"regexp"

	"team-registry/internal/api"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

func Registration(req *api.RegisterTeamRequest) []api.FieldError {
	var errs []api.FieldError

	errs = appendMinLen(errs, "teamName", req.TeamName, 2, "Team name must be at least 2 characters.")
	if len(req.Slug) < 2 {
		errs = append(errs, api.FieldError{Field: "slug", Message: "Slug must be at least 2 characters."})
	} else if !slugPattern.MatchString(req.Slug) {
		errs = append(errs, api.FieldError{Field: "slug", Message: "Slug can only contain lowercase letters, numbers, and hyphens."})
	}
	errs = appendMinLen(errs, "prcGroup", req.PRCGroup, 2, "PRC group must be at least 2 characters.")
	errs = appendMinLen(errs, "vpName", req.VPName, 2, "VP name must be at least 2 characters.")
	errs = appendMinLen(errs, "directorName", req.DirectorName, 2, "Director name must be at least 2 characters.")
	errs = appendEmail(errs, "email", req.Email)
	errs = appendRequired(errs, "slack", req.Slack, "Slack channel is required.")

	return errs
}

func TeamUpdate(req *api.UpdateTeamRequest) []api.FieldError {
	var errs []api.FieldError

	errs = appendMinLen(errs, "teamName", req.TeamName, 2, "Team name must be at least 2 characters.")
	errs = appendMinLen(errs, "vpName", req.VPName, 2, "VP name must be at least 2 characters.")
	errs = appendMinLen(errs, "directorName", req.DirectorName, 2, "Director name must be at least 2 characters.")
	errs = appendEmail(errs, "email", req.Email)
	errs = appendRequired(errs, "slack", req.Slack, "Slack channel is required.")

	return errs
}

func Application(req *api.CreateApplicationRequest) []api.FieldError {
	var errs []api.FieldError

	errs = appendRequired(errs, "appName", req.AppName, "Application name is required.")
	errs = appendRequired(errs, "carId", req.CarID, "CAR ID is required.")
	errs = appendRequired(errs, "description", req.Description, "Description is required.")
	errs = appendRequired(errs, "vp", req.VP, "VP name is required.")
	errs = appendRequired(errs, "dir", req.Dir, "Director name is required.")
	errs = appendRequired(errs, "engDir", req.EngDir, "Engineering Director is required.")
	errs = appendRequired(errs, "slack", req.Slack, "Slack channel is required.")
	errs = appendEmail(errs, "email", req.Email)
	errs = appendRequired(errs, "snowGroup", req.SnowGroup, "Snow group is required.")

	return errs
}

func appendRequired(errs []api.FieldError, field, value, message string) []api.FieldError {
	if value == "" {
		errs = append(errs, api.FieldError{Field: field, Message: message})
	}
	return errs
}

func appendMinLen(errs []api.FieldError, field, value string, min int, message string) []api.FieldError {
	if len(value) < min {
		errs = append(errs, api.FieldError{Field: field, Message: message})
	}
	return errs
}

func appendEmail(errs []api.FieldError, field, value string) []api.FieldError {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		errs = append(errs, api.FieldError{Field: field, Message: "Please enter a valid email address."})
	}
	return errs
}
