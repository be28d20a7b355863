package auth

import (
	"context"

	"github.com/fithouse/console/pkg/rest"
)

// API talks to the auth endpoints.
type API struct {
	rest *rest.Client
}

func NewAPI(c *rest.Client) *API {
	return &API{rest: c}
}

// Login exchanges credentials for a token.
func (a *API) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var env rest.Envelope
	if err := a.rest.Post(ctx, "/auth/login", creds, &env); err != nil {
		return nil, err
	}

	var result LoginResult
	if err := env.Decode(&result, "Credenciales inválidas"); err != nil {
		return nil, err
	}
	return &result, nil
}
