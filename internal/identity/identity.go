// Package identity resolves request credential evidence into a user record.
// Two transports are accepted, a cookie holding the user's email and a
// gateway-injected header holding a serialized user object, but resolution
// happens exactly once per request and everything downstream sees only the
// resolved domain.User.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"team-registry/internal/domain"
	"team-registry/internal/repository"
)

type Config struct {
	AdminGroup  string `env:"AUTH_ADMIN_GROUP" env-default:"registry-admins"`
	CookieName  string `env:"AUTH_COOKIE_NAME" env-default:"authEmail"`
	UserHeader  string `env:"AUTH_USER_HEADER" env-default:"X-User-Info"`
	StaticUsers string `env:"AUTH_STATIC_USERS"`
}

// Provider looks up a directory record for a credential email. Satisfied by
// the postgres client and by Static.
type Provider interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Static is an in-memory directory keyed by email, used in tests and in
// deployments without a user table.
type Static struct {
	users map[string]domain.User
}

func NewStatic(users []domain.User) *Static {
	m := make(map[string]domain.User, len(users))
	for _, u := range users {
		m[strings.ToLower(u.Email)] = u
	}
	return &Static{users: m}
}

func (s *Static) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := s.users[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	out := u
	return &out, nil
}

// ParseStaticUsers decodes the AUTH_STATIC_USERS value, a JSON array of
// {"email","groups"} objects.
func ParseStaticUsers(raw string) ([]domain.User, error) {
	var entries []struct {
		Email  string   `json:"email"`
		Groups []string `json:"groups"`
	}

	err := json.Unmarshal([]byte(raw), &entries)
	if err != nil {
		return nil, fmt.Errorf("failed to parse static users: %w", err)
	}

	users := make([]domain.User, 0, len(entries))
	for _, e := range entries {
		users = append(users, domain.User{
			Email:  e.Email,
			Groups: e.Groups,
		})
	}

	return users, nil
}

type contextKey struct{}

func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// FromContext returns the resolved user, if the request carried valid
// identity evidence.
func FromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(contextKey{}).(*domain.User)
	return user, ok && user != nil
}
