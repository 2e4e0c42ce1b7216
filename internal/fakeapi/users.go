package fakeapi

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/Bharathisthe/Testing/internal/api/types"
	"golang.org/x/crypto/bcrypt"
)

var (
	errEmptyUsername  = errors.New("invalid username: must not be empty")
	errSpacedUsername = errors.New("invalid username: must not contain whitespace")
	errEmptyPasscode  = errors.New("invalid passcode: must not be empty")
)

type userStore struct {
	hashes map[string][]byte
}

func newUserStore(users map[string]string, cost int) (*userStore, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	s := &userStore{hashes: make(map[string][]byte, len(users))}
	for name, passcode := range users {
		if err := validateCredentials(types.Credentials{Username: name, Passcode: passcode}); err != nil {
			return nil, fmt.Errorf("user %q: %w", name, err)
		}
		h, err := bcrypt.GenerateFromPassword([]byte(passcode), cost)
		if err != nil {
			return nil, fmt.Errorf("hash passcode for %q: %w", name, err)
		}
		s.hashes[strings.ToLower(name)] = h
	}
	return s, nil
}

// authenticate reports whether the passcode matches. Usernames compare
// case-insensitively, as email addresses do.
func (s *userStore) authenticate(username, passcode string) bool {
	h, ok := s.hashes[strings.ToLower(username)]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(h, []byte(passcode)) == nil
}

func validateCredentials(c types.Credentials) error {
	if c.Username == "" {
		return errEmptyUsername
	}
	if strings.IndexFunc(c.Username, unicode.IsSpace) >= 0 {
		return errSpacedUsername
	}
	if c.Passcode == "" {
		return errEmptyPasscode
	}
	return nil
}
