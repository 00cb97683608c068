package store

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"shades-backend/internal/domain"
)

// Users is the read-only credential store. Seeded passwords are hashed once
// at construction.
type Users struct {
	users []domain.User
}

func NewUsers(cost int, seeds []Credential) (*Users, error) {
	const op = "store.NewUsers"

	users := make([]domain.User, 0, len(seeds))
	for _, s := range seeds {
		hashed, err := bcrypt.GenerateFromPassword([]byte(s.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("%s: hash password of %q: %w", op, s.ID, err)
		}
		users = append(users, domain.User{
			ID:       s.ID,
			Email:    s.Email,
			Password: string(hashed),
		})
	}
	return &Users{users: users}, nil
}

// Match returns the user whose email and password both match.
func (u *Users) Match(email, password string) (domain.User, bool) {
	for _, user := range u.users {
		if user.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil {
			return user, true
		}
	}
	return domain.User{}, false
}

func (u *Users) ByID(id string) (domain.User, bool) {
	for _, user := range u.users {
		if user.ID == id {
			return user, true
		}
	}
	return domain.User{}, false
}
