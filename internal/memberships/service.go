package memberships

import (
	"context"

	"github.com/fithouse/console/pkg/pagination"
	"github.com/fithouse/console/pkg/validate"
)

type api interface {
	List(ctx context.Context, params ListParams) ([]MembershipDTO, pagination.Pagination, error)
	Create(ctx context.Context, payload CreatePayload) (*MembershipDTO, error)
	Update(ctx context.Context, id string, payload UpdatePayload) (*MembershipDTO, error)
}

// Service exposes the membership plan operations the app consumes.
type Service struct {
	api api
}

func NewService(a *API) *Service {
	return &Service{api: a}
}

// ListMemberships returns a normalized page of plans.
func (s *Service) ListMemberships(ctx context.Context, params ListParams) (*ListResult, error) {
	raw, page, err := s.api.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return &ListResult{Data: FromAPIList(raw), Pagination: page}, nil
}

// CreateMembership builds the wire payload from the form and creates the plan.
func (s *Service) CreateMembership(ctx context.Context, form CreateForm) (*Membership, error) {
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

// UpdateMembershipStatus switches a plan between active and inactive. The
// status check is literal, no trimming or case folding.
func (s *Service) UpdateMembershipStatus(ctx context.Context, id, status string) (*Membership, error) {
	if err := validate.Required(id, "ID de membresía requerido"); err != nil {
		return nil, err
	}
	if err := validate.OneOf(status, []string{"active", "inactive"}, `El estado debe ser "active" o "inactive"`); err != nil {
		return nil, err
	}
	raw, err := s.api.Update(ctx, id, UpdatePayload{Status: status})
	if err != nil {
		return nil, err
	}
	return FromAPI(raw), nil
}
