// Package access holds the team access policy. Membership in a team's PRC
// group grants full read and write over that team's settings and
// applications; lacking it denies everything. There is no role hierarchy.
package access

import (
	"slices"

	"team-registry/internal/domain"
)

// Allowed reports whether the user may read or write the team's data.
func Allowed(user *domain.User, team *domain.Team) bool {
	if user == nil || team == nil {
		return false
	}

	return slices.Contains(user.Groups, team.PRCGroup)
}
