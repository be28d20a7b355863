package dashboard

import (
	"context"

	"github.com/fithouse/console/pkg/rest"
)

// API talks to the dashboard endpoint.
type API struct {
	rest *rest.Client
}

func NewAPI(c *rest.Client) *API {
	return &API{rest: c}
}

// Get fetches the raw dashboard payload.
func (a *API) Get(ctx context.Context) (*DashboardDTO, error) {
	var env rest.Envelope
	if err := a.rest.Get(ctx, "/dashboard", nil, &env); err != nil {
		return nil, err
	}

	var dto DashboardDTO
	if err := env.Decode(&dto, "Error al obtener el dashboard"); err != nil {
		return nil, err
	}
	return &dto, nil
}
