package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Store is the session context injected into the API client: tokens, the
// cached client IP and short-lived one-shot flags. Implementations are not
// safe for concurrent mutation; the portal runs on a single goroutine except
// for the dashboard fan-out, which only reads.
type Store interface {
	AccessToken() string
	SetAccessToken(token string) error
	RefreshToken() string
	SetTokens(access, refresh string) error
	// Clear drops both tokens. Cached IP and flags survive a logout.
	Clear() error

	ClientIP() string
	SetClientIP(ip string) error

	// SetFlag raises a one-shot cross-command flag; TakeFlag reports and
	// clears it in one step (read-once-then-delete).
	SetFlag(name string) error
	TakeFlag(name string) (bool, error)
}

var ErrNoSession = errors.New("no active session")

// FlagWalletRefresh signals that a gateway round-trip completed and the next
// wallet screen must refetch.
const FlagWalletRefresh = "wallet_refresh"

// Identity is whatever the backend put into the access token. The portal
// only displays it; signatures are verified server-side.
type Identity struct {
	Subject string
	Name    string
	Role    string
	Expires time.Time
}

type accessClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Whoami decodes the stored access token without verifying it.
func Whoami(s Store) (Identity, error) {
	token := s.AccessToken()
	if token == "" {
		return Identity{}, ErrNoSession
	}

	var claims accessClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return Identity{}, err
	}

	id := Identity{
		Subject: claims.Subject,
		Name:    claims.Name,
		Role:    claims.Role,
	}
	if claims.ExpiresAt != nil {
		id.Expires = claims.ExpiresAt.Time
	}
	return id, nil
}
