package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"arton_garage/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// IAuthUseCase guards the back-office with a single administrator account.
type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (Session, error)
	Authenticate(token string) (string, error)
}

type AuthUseCase struct {
	username     string
	passwordHash []byte
	issuer       interfaces.ITokenIssuer
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

// NewAuthUseCase takes the admin username and the bcrypt hash of its password.
func NewAuthUseCase(username string, passwordHash []byte, issuer interfaces.ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{username: username, passwordHash: passwordHash, issuer: issuer}
}

func (u *AuthUseCase) Login(_ context.Context, username, password string) (Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || len(u.passwordHash) == 0 {
		return Session{}, ErrInvalidCredentials
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(u.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		log.Printf("[auth][usecase] login rejected username=%q", username)
		return Session{}, ErrInvalidCredentials
	}

	token, exp, err := u.issuer.Issue(username)
	if err != nil {
		return Session{}, err
	}
	log.Printf("[auth][usecase] login ok username=%q expires_at=%s", username, exp.Format(time.RFC3339))
	return Session{Token: token, Username: username, ExpiresAt: exp}, nil
}

// Authenticate returns the subject of a valid token.
func (u *AuthUseCase) Authenticate(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrUnauthorized
	}
	subject, err := u.issuer.Validate(token)
	if err != nil {
		return "", errors.Join(ErrUnauthorized, err)
	}
	return subject, nil
}
