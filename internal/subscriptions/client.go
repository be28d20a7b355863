package subscriptions

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fithouse/console/pkg/pagination"
	"github.com/fithouse/console/pkg/rest"
	"github.com/fithouse/console/pkg/validate"
)

// DefaultExpiredLimit is the page size of the expired listing when the
// caller does not pick one.
const DefaultExpiredLimit = 20

// API talks to the customer-membership endpoints.
type API struct {
	rest *rest.Client
}

func NewAPI(c *rest.Client) *API {
	return &API{rest: c}
}

type customerMembershipsEnvelope struct {
	CurrentMembership *SubscriptionDTO  `json:"current_membership"`
	Memberships       []SubscriptionDTO `json:"memberships"`
}

// ForCustomer fetches the current plan and history of one customer.
func (a *API) ForCustomer(ctx context.Context, customerID string) (*SubscriptionDTO, []SubscriptionDTO, error) {
	if err := validate.Required(customerID, "ID de customer requerido"); err != nil {
		return nil, nil, err
	}

	var env rest.Envelope
	if err := a.rest.Get(ctx, "/customers/"+url.PathEscape(customerID)+"/memberships", nil, &env); err != nil {
		return nil, nil, err
	}

	var body customerMembershipsEnvelope
	if err := env.Decode(&body, "Error al obtener membresías del customer"); err != nil {
		return nil, nil, err
	}
	return body.CurrentMembership, body.Memberships, nil
}

// Expiring fetches every subscription that is close to expiring or already
// expired. The endpoint is flat, no pagination parameters apply.
func (a *API) Expiring(ctx context.Context) (string, []ExpiringItemDTO, error) {
	var env rest.Envelope
	if err := a.rest.Get(ctx, "/customer-memberships/expiring", nil, &env); err != nil {
		return "", nil, err
	}

	var data []ExpiringItemDTO
	if err := env.DecodeLoose(&data, "Error al obtener suscripciones por vencer"); err != nil {
		return "", nil, err
	}
	return env.Message, data, nil
}

type expiredEnvelope struct {
	Data       []SubscriptionDTO     `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}

// Expired fetches a page of expired subscriptions. The status filter is
// always "expired"; customer_status is only sent when it narrows the set.
func (a *API) Expired(ctx context.Context, params ExpiredParams) (*ExpiredResult, error) {
	page := params.Page
	if page <= 0 {
		page = 1
	}
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultExpiredLimit
	}

	query := url.Values{}
	query.Set("status", "expired")
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if params.CustomerStatus != "" && params.CustomerStatus != "all" {
		query.Set("customer_status", params.CustomerStatus)
	}

	var env rest.Envelope
	if err := a.rest.Get(ctx, "/customer-memberships", query, &env); err != nil {
		return nil, err
	}

	// Older backends answer success with no body, the listing tolerates it.
	var body expiredEnvelope
	if err := env.DecodeLoose(&body, "Error al obtener membresías expiradas"); err != nil {
		return nil, err
	}
	if body.Data == nil {
		body.Data = []SubscriptionDTO{}
	}
	body.Pagination = pagination.Normalize(&body.Pagination, page, limit)
	return &ExpiredResult{Data: body.Data, Pagination: body.Pagination}, nil
}

// Create assigns a plan to a customer.
func (a *API) Create(ctx context.Context, payload CreatePayload) (*CreateResult, error) {
	var env rest.Envelope
	if err := a.rest.Post(ctx, "/customer-memberships", payload, &env); err != nil {
		return nil, err
	}

	result := &CreateResult{Message: env.Message}
	if err := env.DecodeLoose(&result.Data, "Error al asignar membresía al customer"); err != nil {
		return nil, err
	}
	return result, nil
}
