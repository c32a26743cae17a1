package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"team-registry/internal/api"
)

func validRegistration() api.RegisterTeamRequest {
	return api.RegisterTeamRequest{
		TeamName:     "Team One",
		Slug:         "team1",
		PRCGroup:     "team1-prc",
		VPName:       "VP Name",
		DirectorName: "Director Name",
		Email:        "team1@example.com",
		Slack:        "#team1",
	}
}

func validApplication() api.CreateApplicationRequest {
	return api.CreateApplicationRequest{
		AppName:     "Billing",
		CarID:       "CAR-1",
		Description: "billing service",
		VP:          "VP Name",
		Dir:         "Director Name",
		EngDir:      "Eng Director",
		Slack:       "#billing",
		Email:       "billing@example.com",
		SnowGroup:   "billing-snow",
	}
}

func TestRegistrationValid(t *testing.T) {
	req := validRegistration()
	assert.Empty(t, Registration(&req))
}

func TestRegistrationCollectsAllErrors(t *testing.T) {
	req := api.RegisterTeamRequest{}

	errs := Registration(&req)

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}

	assert.ElementsMatch(t,
		[]string{"teamName", "slug", "prcGroup", "vpName", "directorName", "email", "slack"},
		fields,
	)
}

func TestRegistrationSlugFormat(t *testing.T) {
	req := validRegistration()
	req.Slug = "Team One!"

	errs := Registration(&req)

	assert.Len(t, errs, 1)
	assert.Equal(t, "slug", errs[0].Field)
	assert.Contains(t, errs[0].Message, "lowercase")
}

func TestRegistrationEmailFormat(t *testing.T) {
	req := validRegistration()
	req.Email = "not-an-address"

	errs := Registration(&req)

	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}

func TestApplicationValid(t *testing.T) {
	req := validApplication()
	assert.Empty(t, Application(&req))

	// secondary engineering director is optional
	req.EngDir2 = ""
	assert.Empty(t, Application(&req))
}

func TestApplicationCollectsAllErrors(t *testing.T) {
	req := validApplication()
	req.AppName = ""
	req.CarID = ""
	req.Email = "nope"

	errs := Application(&req)

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}

	assert.ElementsMatch(t, []string{"appName", "carId", "email"}, fields)
}

func TestTeamUpdateValid(t *testing.T) {
	req := api.UpdateTeamRequest{
		TeamName:     "Team One",
		VPName:       "VP Name",
		DirectorName: "Director Name",
		Email:        "team1@example.com",
		Slack:        "#team1",
	}

	assert.Empty(t, TeamUpdate(&req))
}
