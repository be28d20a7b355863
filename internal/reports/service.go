package reports

import (
	"context"
	"strings"

	pkgerrors "github.com/fithouse/console/pkg/errors"
)

type api interface {
	Informe(ctx context.Context, dateFrom, dateTo string) (*ReportDTO, error)
}

// Service exposes the report operations the app consumes.
type Service struct {
	api api
}

func NewService(a *API) *Service {
	return &Service{api: a}
}

// GetReport fetches and normalizes the sales report for a date range.
func (s *Service) GetReport(ctx context.Context, dateFrom, dateTo string) (*Report, error) {
	from := strings.TrimSpace(dateFrom)
	to := strings.TrimSpace(dateTo)
	if from == "" || to == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Las fechas desde y hasta son obligatorias")
	}
	raw, err := s.api.Informe(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return FromAPI(raw), nil
}
