package auth

import (
	"context"

	"github.com/fithouse/console/pkg/session"
	"github.com/fithouse/console/pkg/validate"
)

type api interface {
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
}

type sessionStore interface {
	Save(sess session.Session) error
	Clear() error
}

// Service handles sign-in and sign-out, persisting the session on success.
type Service struct {
	api     api
	session sessionStore
}

func NewService(a *API, store *session.Store) *Service {
	return &Service{api: a, session: store}
}

// Login validates the credentials, signs in and stores the resulting session.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := validate.Required(email, "Ingresa email y contraseña"); err != nil {
		return nil, err
	}
	if err := validate.Required(password, "Ingresa email y contraseña"); err != nil {
		return nil, err
	}

	result, err := s.api.Login(ctx, Credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	if err := s.session.Save(session.Session{
		Token:   result.Token,
		User:    result.User,
		Company: result.Company,
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// Logout drops the stored session. Safe to call when no session exists.
func (s *Service) Logout() error {
	return s.session.Clear()
}
