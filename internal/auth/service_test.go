package auth

import (
	"context"
	"testing"

	pkgerrors "github.com/fithouse/console/pkg/errors"
	"github.com/fithouse/console/pkg/session"
)

type stubAPI struct {
	result *LoginResult
	err    error
	creds  *Credentials
}

func (s *stubAPI) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	s.creds = &creds
	return s.result, s.err
}

type stubStore struct {
	saved   *session.Session
	cleared bool
	err     error
}

func (s *stubStore) Save(sess session.Session) error {
	s.saved = &sess
	return s.err
}

func (s *stubStore) Clear() error {
	s.cleared = true
	return s.err
}

func TestLoginRequiresCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"missing email", "", "secret"},
		{"missing password", "ana@test.co", ""},
		{"missing both", "", ""},
		{"whitespace only", "  ", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &stubAPI{}
			svc := &Service{api: api, session: &stubStore{}}

			_, err := svc.Login(context.Background(), tt.email, tt.password)
			appErr := pkgerrors.As(err)
			if appErr == nil || appErr.Message() != "Ingresa email y contraseña" {
				t.Fatalf("err = %v", err)
			}
			if api.creds != nil {
				t.Fatal("request must not be sent without credentials")
			}
		})
	}
}

func TestLoginPersistsSession(t *testing.T) {
	api := &stubAPI{result: &LoginResult{
		Token:   "tok-123",
		User:    []byte(`{"id":"u1"}`),
		Company: []byte(`{"id":"co1"}`),
	}}
	store := &stubStore{}
	svc := &Service{api: api, session: store}

	result, err := svc.Login(context.Background(), "ana@test.co", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token != "tok-123" {
		t.Fatalf("token = %q", result.Token)
	}
	if store.saved == nil || store.saved.Token != "tok-123" {
		t.Fatalf("saved = %+v", store.saved)
	}
	if string(store.saved.User) != `{"id":"u1"}` {
		t.Fatalf("user = %s", store.saved.User)
	}
}

func TestLoginDoesNotPersistOnFailure(t *testing.T) {
	api := &stubAPI{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "Credenciales inválidas")}
	store := &stubStore{}
	svc := &Service{api: api, session: store}

	if _, err := svc.Login(context.Background(), "ana@test.co", "bad"); err == nil {
		t.Fatal("expected error")
	}
	if store.saved != nil {
		t.Fatal("failed login must not persist a session")
	}
}

func TestLogoutClears(t *testing.T) {
	store := &stubStore{}
	svc := &Service{api: &stubAPI{}, session: store}

	if err := svc.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if !store.cleared {
		t.Fatal("session must be cleared")
	}
}
