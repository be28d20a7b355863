package subscriptions

import (
	"context"
	"strings"
	"time"

	"github.com/fithouse/console/pkg/validate"
)

type api interface {
	ForCustomer(ctx context.Context, customerID string) (*SubscriptionDTO, []SubscriptionDTO, error)
	Expiring(ctx context.Context) (string, []ExpiringItemDTO, error)
	Expired(ctx context.Context, params ExpiredParams) (*ExpiredResult, error)
	Create(ctx context.Context, payload CreatePayload) (*CreateResult, error)
}

// Service exposes the customer-membership operations the app consumes.
type Service struct {
	api api
	now func() time.Time
}

func NewService(a *API) *Service {
	return &Service{api: a, now: time.Now}
}

// CustomerMemberships returns the normalized current plan and history of one
// customer.
func (s *Service) CustomerMemberships(ctx context.Context, customerID string) (*CustomerMemberships, error) {
	if err := validate.Required(customerID, "ID de customer requerido"); err != nil {
		return nil, err
	}
	current, history, err := s.api.ForCustomer(ctx, strings.TrimSpace(customerID))
	if err != nil {
		return nil, err
	}
	return CustomerMembershipsFromAPI(current, history, s.now()), nil
}

// ExpiringMemberships returns the full normalized set of subscriptions close
// to expiring; callers paginate it client-side.
func (s *Service) ExpiringMemberships(ctx context.Context) (*ExpiringResult, error) {
	message, raw, err := s.api.Expiring(ctx)
	if err != nil {
		return nil, err
	}
	return ExpiringListFromAPI(message, raw), nil
}

// ExpiredMemberships returns a page of expired subscriptions.
func (s *Service) ExpiredMemberships(ctx context.Context, params ExpiredParams) (*ExpiredResult, error) {
	return s.api.Expired(ctx, params)
}

// AssignMembership gives a customer a plan. Both identifiers are trimmed and
// checked against the payload's shared rules before the request.
func (s *Service) AssignMembership(ctx context.Context, customerID, membershipID string) (*CreateResult, error) {
	payload := CreatePayload{
		CustomerID:   strings.TrimSpace(customerID),
		MembershipID: strings.TrimSpace(membershipID),
	}
	if err := validate.Struct(payload); err != nil {
		return nil, err
	}
	return s.api.Create(ctx, payload)
}
