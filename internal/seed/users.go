package seed

import (
	"context"
	"fmt"
	"time"

	"noteauth/internal/model"
	"noteauth/internal/repository"
)

// DefaultUsers returns the three fixed accounts the auth API starts with,
// one per role.
func DefaultUsers(now time.Time) []model.User {
	return []model.User{
		{ID: 1, Email: "berkAdmin@mail.com", Password: "berkAdmin", Role: model.RoleAdministrator, CreatedAt: now},
		{ID: 2, Email: "berkEditor@mail.com", Password: "berkEditor", Role: model.RoleEditor, CreatedAt: now},
		{ID: 3, Email: "berkReader@mail.com", Password: "berkReader", Role: model.RoleReader, CreatedAt: now},
	}
}

// Users inserts users when the store holds no users yet and reports how many
// were created. A store that already has users is left untouched.
func Users(ctx context.Context, repo repository.UserRepository, users []model.User) (int, error) {
	existing, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	seeded := 0
	for i := range users {
		if err := repo.Create(ctx, &users[i]); err != nil {
			return seeded, fmt.Errorf("create user %s: %w", users[i].Email, err)
		}
		seeded++
	}
	return seeded, nil
}
