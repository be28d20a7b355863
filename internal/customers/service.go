package customers

import (
	"context"

	"github.com/fithouse/console/pkg/pagination"
	"github.com/fithouse/console/pkg/validate"
)

type api interface {
	List(ctx context.Context, params ListParams) ([]CustomerDTO, pagination.Pagination, error)
	Get(ctx context.Context, id string) (*CustomerDTO, error)
	Create(ctx context.Context, payload CreatePayload) (*CustomerDTO, error)
	Update(ctx context.Context, id string, payload UpdatePayload) (*CustomerDTO, error)
	Left(ctx context.Context) (string, []CustomerDTO, error)
}

// Service exposes the customer operations the app consumes.
type Service struct {
	api api
}

func NewService(a *API) *Service {
	return &Service{api: a}
}

// ListCustomers returns a normalized page of customers.
func (s *Service) ListCustomers(ctx context.Context, params ListParams) (*ListResult, error) {
	raw, page, err := s.api.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return &ListResult{Data: FromAPIList(raw), Pagination: page}, nil
}

// GetCustomer returns one normalized customer.
func (s *Service) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	if err := validate.Required(id, "ID de customer requerido"); err != nil {
		return nil, err
	}
	raw, err := s.api.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromAPI(raw), nil
}

// CreateCustomer builds the wire payload from the form, checks it against the
// payload's shared rules and creates the customer.
func (s *Service) CreateCustomer(ctx context.Context, form CreateForm) (*Customer, error) {
	payload := BuildCreatePayload(form)
	if err := validate.Struct(payload); err != nil {
		return nil, err
	}
	raw, err := s.api.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	return FromAPI(raw), nil
}

// UpdateCustomer applies a partial update.
func (s *Service) UpdateCustomer(ctx context.Context, id string, payload UpdatePayload) (*Customer, error) {
	if err := validate.Required(id, "ID de customer requerido"); err != nil {
		return nil, err
	}
	raw, err := s.api.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	return FromAPI(raw), nil
}

// MarkAsLeft flags a customer as departed. The flag is always sent as true,
// the operation is not a toggle.
func (s *Service) MarkAsLeft(ctx context.Context, id string) (*Customer, error) {
	if err := validate.Required(id, "ID de customer requerido"); err != nil {
		return nil, err
	}
	left := true
	raw, err := s.api.Update(ctx, id, UpdatePayload{MarkedAsLeft: &left})
	if err != nil {
		return nil, err
	}
	return FromAPI(raw), nil
}

// LeftCustomers returns the full set of departed customers for client-side
// pagination.
func (s *Service) LeftCustomers(ctx context.Context) (*LeftResult, error) {
	message, raw, err := s.api.Left(ctx)
	if err != nil {
		return nil, err
	}
	return &LeftResult{Message: message, Data: FromAPIList(raw)}, nil
}
