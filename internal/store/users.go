package store

import (
	"sync"

	"github.com/heliotrack/solar-installations/internal/auth"
)

// User is an account that can authenticate against the API.
type User struct {
	ID       int       `json:"id"`
	UUID     string    `json:"uuid"`
	Username string    `json:"username"`
	Password string    `json:"password"`
	Role     auth.Role `json:"role"`
}

// UserStore is a read-only in-memory collection of user accounts.
type UserStore struct {
	mu    sync.RWMutex
	users []User
}

func NewUserStore(seed []User) *UserStore {
	s := &UserStore{}
	s.users = append(s.users, seed...)
	return s
}

// FindByCredentials returns the user matching both username and password, or
// false when no account matches.
func (s *UserStore) FindByCredentials(username, password string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return u, true
		}
	}
	return User{}, false
}
