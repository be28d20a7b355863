package users

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fithouse/console/pkg/pagination"
	"github.com/fithouse/console/pkg/rest"
	"github.com/fithouse/console/pkg/validate"
)

// DefaultLimit is the page size the users listing asks for when the caller
// does not pick one.
const DefaultLimit = 20

// API talks to the user endpoints.
type API struct {
	rest *rest.Client
}

func NewAPI(c *rest.Client) *API {
	return &API{rest: c}
}

type listEnvelope struct {
	Data       []UserDTO             `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}

// List fetches a page of users.
func (a *API) List(ctx context.Context, params ListParams) ([]UserDTO, pagination.Pagination, error) {
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
	if err := a.rest.Get(ctx, "/users", query, &env); err != nil {
		return nil, pagination.Pagination{}, err
	}

	var body listEnvelope
	if err := env.Decode(&body, "Error al obtener usuarios"); err != nil {
		return nil, pagination.Pagination{}, err
	}
	body.Pagination = pagination.Normalize(&body.Pagination, page, limit)
	return body.Data, body.Pagination, nil
}

// Get fetches one user by id.
func (a *API) Get(ctx context.Context, id string) (*UserDTO, error) {
	if err := validate.Required(id, "ID de usuario requerido"); err != nil {
		return nil, err
	}

	var env rest.Envelope
	if err := a.rest.Get(ctx, "/users/"+url.PathEscape(id), nil, &env); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := env.Decode(&dto, "Usuario no encontrado"); err != nil {
		return nil, err
	}
	return &dto, nil
}

// Create registers a new user.
func (a *API) Create(ctx context.Context, payload CreatePayload) (*UserDTO, error) {
	var env rest.Envelope
	if err := a.rest.Post(ctx, "/users", payload, &env); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := env.Decode(&dto, "Error al crear usuario"); err != nil {
		return nil, err
	}
	return &dto, nil
}

// Update applies a partial update to a user.
func (a *API) Update(ctx context.Context, id string, payload UpdatePayload) (*UserDTO, error) {
	if err := validate.Required(id, "ID de usuario requerido"); err != nil {
		return nil, err
	}

	var env rest.Envelope
	if err := a.rest.Put(ctx, "/users/"+url.PathEscape(id), payload, &env); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := env.Decode(&dto, "Error al actualizar usuario"); err != nil {
		return nil, err
	}
	return &dto, nil
}
