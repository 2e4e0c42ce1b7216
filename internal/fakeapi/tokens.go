package fakeapi

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	ErrMissingToken = errors.New("unauthorized: missing auth token")
	ErrInvalidToken = errors.New("unauthorized: invalid token")
	ErrExpiredToken = errors.New("unauthorized: token expired")
	ErrRevokedToken = errors.New("unauthorized: invalid token, session already ended")
)

type claims struct {
	jwt.RegisteredClaims
}

// Session is what a valid token resolves to.
type Session struct {
	ID        string
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type tokenManager struct {
	secret  []byte
	ttl     time.Duration
	revoked *lru.Cache[string, time.Time]
	now     func() time.Time
}

func newTokenManager(secret string, ttl time.Duration, revokedCapacity int) (*tokenManager, error) {
	if secret == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return nil, fmt.Errorf("generate token secret: %w", err)
		}
		secret = base64.StdEncoding.EncodeToString(b)
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	if revokedCapacity <= 0 {
		revokedCapacity = 4096
	}
	revoked, err := lru.New[string, time.Time](revokedCapacity)
	if err != nil {
		return nil, fmt.Errorf("revocation cache: %w", err)
	}
	return &tokenManager{
		secret:  []byte(secret),
		ttl:     ttl,
		revoked: revoked,
		now:     time.Now,
	}, nil
}

func (m *tokenManager) issue(username string) (string, error) {
	now := m.now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *tokenManager) validate(raw string) (*Session, error) {
	if raw == "" {
		return nil, ErrMissingToken
	}
	parsed, err := jwt.ParseWithClaims(raw, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || c.ID == "" || c.Subject == "" || c.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}
	if m.revoked.Contains(c.ID) {
		return nil, ErrRevokedToken
	}
	s := &Session{
		ID:        c.ID,
		Username:  c.Subject,
		ExpiresAt: c.ExpiresAt.Time,
	}
	if c.IssuedAt != nil {
		s.IssuedAt = c.IssuedAt.Time
	}
	return s, nil
}

// revoke ends a session. Past capacity the oldest revocations fall out.
func (m *tokenManager) revoke(s *Session) {
	m.revoked.Add(s.ID, s.ExpiresAt)
}
