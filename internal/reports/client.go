package reports

import (
	"context"
	"net/url"
	"strings"

	pkgerrors "github.com/fithouse/console/pkg/errors"
	"github.com/fithouse/console/pkg/rest"
)

// API talks to the report endpoints.
type API struct {
	rest *rest.Client
}

func NewAPI(c *rest.Client) *API {
	return &API{rest: c}
}

// Informe fetches the raw sales report for a date range. Both bounds are
// required, in YYYY-MM-DD.
func (a *API) Informe(ctx context.Context, dateFrom, dateTo string) (*ReportDTO, error) {
	from := strings.TrimSpace(dateFrom)
	to := strings.TrimSpace(dateTo)
	if from == "" || to == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date_from y date_to son obligatorios")
	}

	query := url.Values{}
	query.Set("date_from", from)
	query.Set("date_to", to)

	var env rest.Envelope
	if err := a.rest.Get(ctx, "/reports/informe", query, &env); err != nil {
		return nil, err
	}

	var dto ReportDTO
	if err := env.Decode(&dto, "Error al generar el informe"); err != nil {
		return nil, err
	}
	return &dto, nil
}
