package sales

import (
	"context"

	"github.com/fithouse/console/pkg/pagination"
)

type api interface {
	List(ctx context.Context, params ListParams) ([]SaleDTO, pagination.Pagination, error)
}

// Service exposes the sales operations the app consumes.
type Service struct {
	api api
}

func NewService(a *API) *Service {
	return &Service{api: a}
}

// ListSales returns a normalized page of sales.
func (s *Service) ListSales(ctx context.Context, params ListParams) (*ListResult, error) {
	raw, page, err := s.api.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return &ListResult{Data: FromAPIList(raw), Pagination: page}, nil
}
