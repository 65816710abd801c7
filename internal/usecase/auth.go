package usecase

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionToken is the opaque cookie value handed to a logged-in client.
type SessionToken string

type Authenticator interface {
	Authenticate(ctx context.Context, c Credentials) (SessionToken, error)
}

// StaticAuthenticator checks against one configured username/password pair.
// An empty configured pair rejects everyone.
type StaticAuthenticator struct {
	username string
	password string
	newToken func() string
}

func NewStaticAuthenticator(username, password string) *StaticAuthenticator {
	return &StaticAuthenticator{
		username: username,
		password: password,
		newToken: uuid.NewString,
	}
}

func (a *StaticAuthenticator) Authenticate(_ context.Context, c Credentials) (SessionToken, error) {
	if a.username == "" || a.password == "" {
		return "", ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(c.Username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(c.Password), []byte(a.password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return SessionToken(a.newToken()), nil
}
