package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"team-registry/internal/domain"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		groups   []string
		prcGroup string
		want     bool
	}{
		{
			name:     "member of the team group",
			groups:   []string{"team1-prc", "team2-prc"},
			prcGroup: "team1-prc",
			want:     true,
		},
		{
			name:     "member of another team only",
			groups:   []string{"team1-prc", "team2-prc"},
			prcGroup: "team3-prc",
			want:     false,
		},
		{
			name:     "no groups at all",
			groups:   nil,
			prcGroup: "team1-prc",
			want:     false,
		},
		{
			name:     "admin group does not grant team access",
			groups:   []string{"registry-admins"},
			prcGroup: "team1-prc",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &domain.User{Email: "user@example.com", Groups: tt.groups}
			team := &domain.Team{Slug: "team", PRCGroup: tt.prcGroup}

			assert.Equal(t, tt.want, Allowed(user, team))
		})
	}
}

func TestAllowedNilArguments(t *testing.T) {
	team := &domain.Team{PRCGroup: "team1-prc"}
	user := &domain.User{Groups: []string{"team1-prc"}}

	assert.False(t, Allowed(nil, team))
	assert.False(t, Allowed(user, nil))
}
