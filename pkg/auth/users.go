package auth

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials indicates a failed sign-in attempt.
var ErrInvalidCredentials = errors.New("invalid credentials")

// User represents one entry in the static credential file.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"` // bcrypt hash
}

// UserStore authenticates against a JSON credential file. The file is
// re-read on every call, matching how the rest of the system treats the
// filesystem as the only cross-request state.
type UserStore struct {
	path string
}

// NewUserStore creates a store backed by the given file.
func NewUserStore(path string) (store *UserStore) {
	store = &UserStore{path: path}
	return store
}

// Load reads and parses the credential file.
func (s *UserStore) Load() (users []User, err error) {
	var data []byte
	data, err = os.ReadFile(s.path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read users file: %s", s.path)
		return users, err
	}

	err = json.Unmarshal(data, &users)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse users file: %s", s.path)
		return users, err
	}

	return users, err
}

// Authenticate verifies a username/password pair against the file.
func (s *UserStore) Authenticate(username, password string) (user User, err error) {
	var users []User
	users, err = s.Load()
	if err != nil {
		return user, err
	}

	for _, candidate := range users {
		if candidate.Username != username {
			continue
		}
		err = bcrypt.CompareHashAndPassword([]byte(candidate.Password), []byte(password))
		if err != nil {
			err = ErrInvalidCredentials
			return user, err
		}
		user = candidate
		return user, err
	}

	err = ErrInvalidCredentials
	return user, err
}

// Exists reports whether a username is present in the file.
func (s *UserStore) Exists(username string) (found bool, err error) {
	var users []User
	users, err = s.Load()
	if err != nil {
		return found, err
	}

	for _, candidate := range users {
		if candidate.Username == username {
			found = true
			return found, err
		}
	}

	return found, err
}

// HashPassword produces a bcrypt hash suitable for the users file.
func HashPassword(password string) (hash string, err error) {
	var hashBytes []byte
	hashBytes, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		err = errors.Wrap(err, "failed to hash password")
		return hash, err
	}

	hash = string(hashBytes)
	return hash, err
}
