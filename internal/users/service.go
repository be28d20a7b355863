package users

import (
	"context"
	"strings"

	"github.com/fithouse/console/pkg/pagination"
	"github.com/fithouse/console/pkg/validate"
)

type api interface {
	List(ctx context.Context, params ListParams) ([]UserDTO, pagination.Pagination, error)
	Get(ctx context.Context, id string) (*UserDTO, error)
	Create(ctx context.Context, payload CreatePayload) (*UserDTO, error)
	Update(ctx context.Context, id string, payload UpdatePayload) (*UserDTO, error)
}

// Service exposes the user operations the app consumes.
type Service struct {
	api api
}

func NewService(a *API) *Service {
	return &Service{api: a}
}

// ListUsers returns a normalized page of users.
func (s *Service) ListUsers(ctx context.Context, params ListParams) (*ListResult, error) {
	raw, page, err := s.api.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return &ListResult{Data: FromAPIList(raw), Pagination: page}, nil
}

// GetUser returns one normalized user.
func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	if err := validate.Required(id, "ID de usuario requerido"); err != nil {
		return nil, err
	}
	raw, err := s.api.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	return FromAPI(raw), nil
}

// CreateUser builds the wire payload from the form, checks it against the
// payload's shared rules and creates the user.
func (s *Service) CreateUser(ctx context.Context, form CreateForm) (*User, error) {
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

// UpdateUserStatus switches a user between active and inactive. The status is
// trimmed and lowercased before the whitelist check.
func (s *Service) UpdateUserStatus(ctx context.Context, id, status string) (*User, error) {
	if err := validate.Required(id, "ID de usuario requerido"); err != nil {
		return nil, err
	}
	normalized := strings.ToLower(strings.TrimSpace(status))
	if err := validate.OneOf(normalized, []string{"active", "inactive"}, `Estado debe ser "active" o "inactive"`); err != nil {
		return nil, err
	}
	raw, err := s.api.Update(ctx, strings.TrimSpace(id), UpdatePayload{Status: normalized})
	if err != nil {
		return nil, err
	}
	return FromAPI(raw), nil
}
