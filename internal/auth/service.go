// Package auth runs the register / login / logout / session-check flow.
// It is the only writer of the session store.
package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode/utf8"

	"reportboard/client/internal/config"
	"reportboard/client/internal/models"
	"reportboard/client/internal/session"
)

var (
	// ErrInvalidCredentialsLength is returned by Register for a short username or password.
	ErrInvalidCredentialsLength = errors.New("username or password too short")
	// ErrMissingCredentials is returned by Login when a field is empty.
	ErrMissingCredentials = errors.New("username and password required")
)

// API is the subset of the backend client used for authentication.
type API interface {
	Register(ctx context.Context, creds models.Credentials) error
	Login(ctx context.Context, creds models.Credentials) (string, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.MeResult, error)
}

// Service handles the business logic for accounts and sessions.
type Service struct {
	API     API
	Session *session.Store
}

// NewService creates a new auth service.
func NewService(api API, store *session.Store) *Service {
	return &Service{API: api, Session: store}
}

// Register validates the input locally and creates the account. It does not log in.
func (s *Service) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if utf8.RuneCountInString(username) < config.MinUsernameLength ||
		utf8.RuneCountInString(password) < config.MinPasswordLength {
		return ErrInvalidCredentialsLength
	}
	return s.API.Register(ctx, models.Credentials{Username: username, Password: password})
}

// Login opens a session and records the username the server returned.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrMissingCredentials
	}

	user, err := s.API.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		return "", err
	}
	s.Session.Authenticate(user)
	log.Printf("INFO: logged in as %s", user)
	return user, nil
}

// Logout closes the session. On failure the local session is left as it was.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.API.Logout(ctx); err != nil {
		return err
	}
	s.Session.Clear()
	log.Println("INFO: logged out")
	return nil
}

// CheckMe asks the backend for the session owner. Any failure leaves the
// client Anonymous; the resulting state is returned.
func (s *Service) CheckMe(ctx context.Context) session.State {
	me, err := s.API.Me(ctx)
	switch {
	case err != nil:
		log.Printf("WARN: session check failed, continuing anonymously: %v", err)
		s.Session.Clear()
	case me.Authenticated:
		s.Session.Authenticate(me.Username)
	default:
		s.Session.Clear()
	}
	return s.Session.Current()
}
