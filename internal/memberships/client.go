package memberships

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fithouse/console/pkg/pagination"
	"github.com/fithouse/console/pkg/rest"
	"github.com/fithouse/console/pkg/validate"
)

// DefaultLimit is the page size the memberships listing asks for when the
// caller does not pick one.
const DefaultLimit = 10

// API talks to the membership endpoints.
type API struct {
	rest *rest.Client
}

func NewAPI(c *rest.Client) *API {
	return &API{rest: c}
}

type listEnvelope struct {
	Data       []MembershipDTO       `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}

// List fetches a page of membership plans. Status filters the listing when
// set; an empty status lists every plan.
func (a *API) List(ctx context.Context, params ListParams) ([]MembershipDTO, pagination.Pagination, error) {
	page := params.Page
	if page <= 0 {
		page = 1
	}
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if params.Status != "" {
		query.Set("status", params.Status)
	}

	var env rest.Envelope
	if err := a.rest.Get(ctx, "/memberships", query, &env); err != nil {
		return nil, pagination.Pagination{}, err
	}

	var body listEnvelope
	if err := env.Decode(&body, "Error al obtener membresías"); err != nil {
		return nil, pagination.Pagination{}, err
	}
	body.Pagination = pagination.Normalize(&body.Pagination, page, limit)
	return body.Data, body.Pagination, nil
}

// Create registers a new membership plan.
func (a *API) Create(ctx context.Context, payload CreatePayload) (*MembershipDTO, error) {
	var env rest.Envelope
	if err := a.rest.Post(ctx, "/memberships", payload, &env); err != nil {
		return nil, err
	}

	var dto MembershipDTO
	if err := env.Decode(&dto, "Error al crear membresía"); err != nil {
		return nil, err
	}
	return &dto, nil
}

// Update applies a partial update to a membership plan.
func (a *API) Update(ctx context.Context, id string, payload UpdatePayload) (*MembershipDTO, error) {
	if err := validate.Required(id, "ID de membresía requerido"); err != nil {
		return nil, err
	}

	var env rest.Envelope
	if err := a.rest.Put(ctx, "/memberships/"+url.PathEscape(id), payload, &env); err != nil {
		return nil, err
	}

	var dto MembershipDTO
	if err := env.Decode(&dto, "Error al actualizar membresía"); err != nil {
		return nil, err
	}
	return &dto, nil
}
