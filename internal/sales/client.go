package sales

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/fithouse/console/pkg/pagination"
	"github.com/fithouse/console/pkg/rest"
)

// DefaultLimit is the page size the sales listing asks for when the caller
// does not pick one.
const DefaultLimit = 20

// API talks to the sales endpoints.
type API struct {
	rest *rest.Client
}

func NewAPI(c *rest.Client) *API {
	return &API{rest: c}
}

type listEnvelope struct {
	Data       []SaleDTO             `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}

// List fetches a page of sales. Filters are trimmed and only sent when
// non-empty.
func (a *API) List(ctx context.Context, params ListParams) ([]SaleDTO, pagination.Pagination, error) {
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
	setTrimmed(query, "user_name", params.UserName)
	setTrimmed(query, "membership_id", params.MembershipID)
	setTrimmed(query, "date_from", params.DateFrom)
	setTrimmed(query, "date_to", params.DateTo)

	var env rest.Envelope
	if err := a.rest.Get(ctx, "/sales", query, &env); err != nil {
		return nil, pagination.Pagination{}, err
	}

	var body listEnvelope
	if err := env.Decode(&body, "Error al obtener ventas"); err != nil {
		return nil, pagination.Pagination{}, err
	}
	body.Pagination = pagination.Normalize(&body.Pagination, page, limit)
	return body.Data, body.Pagination, nil
}

func setTrimmed(query url.Values, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		query.Set(key, v)
	}
}
