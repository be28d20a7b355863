package customers

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fithouse/console/pkg/pagination"
	"github.com/fithouse/console/pkg/rest"
	"github.com/fithouse/console/pkg/validate"
)

// DefaultLimit is the page size the customers listing asks for when the
// caller does not pick one.
const DefaultLimit = 10

// API talks to the customer endpoints.
type API struct {
	rest *rest.Client
}

func NewAPI(c *rest.Client) *API {
	return &API{rest: c}
}

type listEnvelope struct {
	Data       []CustomerDTO         `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}

// List fetches a page of customers.
func (a *API) List(ctx context.Context, params ListParams) ([]CustomerDTO, pagination.Pagination, error) {
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

	var env rest.Envelope
	if err := a.rest.Get(ctx, "/customers", query, &env); err != nil {
		return nil, pagination.Pagination{}, err
	}

	var body listEnvelope
	if err := env.Decode(&body, "Error al cargar customers"); err != nil {
		return nil, pagination.Pagination{}, err
	}
	body.Pagination = pagination.Normalize(&body.Pagination, page, limit)
	return body.Data, body.Pagination, nil
}

// Get fetches one customer by id.
func (a *API) Get(ctx context.Context, id string) (*CustomerDTO, error) {
	if err := validate.Required(id, "ID de customer requerido"); err != nil {
		return nil, err
	}

	var env rest.Envelope
	if err := a.rest.Get(ctx, "/customers/"+url.PathEscape(id), nil, &env); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := env.Decode(&dto, "Customer no encontrado"); err != nil {
		return nil, err
	}
	return &dto, nil
}

// Create registers a new customer.
func (a *API) Create(ctx context.Context, payload CreatePayload) (*CustomerDTO, error) {
	var env rest.Envelope
	if err := a.rest.Post(ctx, "/customers", payload, &env); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := env.Decode(&dto, "Error al crear customer"); err != nil {
		return nil, err
	}
	return &dto, nil
}

// Update applies a partial update to a customer.
func (a *API) Update(ctx context.Context, id string, payload UpdatePayload) (*CustomerDTO, error) {
	if err := validate.Required(id, "ID de customer requerido"); err != nil {
		return nil, err
	}

	var env rest.Envelope
	if err := a.rest.Put(ctx, "/customers/"+url.PathEscape(id), payload, &env); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := env.DecodeLoose(&dto, "Error al actualizar customer"); err != nil {
		return nil, err
	}
	return &dto, nil
}

// Left fetches every customer marked as departed. The endpoint is flat, no
// pagination parameters apply.
func (a *API) Left(ctx context.Context) (string, []CustomerDTO, error) {
	var env rest.Envelope
	if err := a.rest.Get(ctx, "/customers/left", nil, &env); err != nil {
		return "", nil, err
	}

	var data []CustomerDTO
	if err := env.DecodeLoose(&data, "Error al cargar customers retirados"); err != nil {
		return "", nil, err
	}
	if data == nil {
		data = []CustomerDTO{}
	}
	return env.Message, data, nil
}
