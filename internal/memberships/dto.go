package memberships

import (
	"strconv"
	"strings"

	"github.com/fithouse/console/pkg/pagination"
	"github.com/shopspring/decimal"
)

// WireInt tolerates the number-or-string typing some backend versions use for
// counters, defaulting to 0 when the value does not parse.
type WireInt int

func (n *WireInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = WireInt(f)
	return nil
}

// MembershipDTO is the membership plan as the backend returns it. Nombre and
// Precio are the optional display aliases some backend versions supply; the
// normalizer honors them over the derived defaults.
type MembershipDTO struct {
	ID             string           `json:"id"`
	CompanyID      string           `json:"company_id,omitempty"`
	MembershipType string           `json:"membership_type,omitempty"`
	DurationDays   WireInt          `json:"duration_days,omitempty"`
	Price          decimal.Decimal  `json:"price,omitempty"`
	Currency       string           `json:"currency,omitempty"`
	Status         string           `json:"status,omitempty"`
	Nombre         string           `json:"nombre,omitempty"`
	Precio         *decimal.Decimal `json:"precio,omitempty"`
	CreatedAt      string           `json:"created_at,omitempty"`
	UpdatedAt      string           `json:"updated_at,omitempty"`
}

// Membership is the normalized plan: the raw record plus the display fields
// the app consumes.
type Membership struct {
	MembershipDTO

	Nombre       string          `json:"nombre"`
	Tipo         string          `json:"tipo"`
	DuracionDias int             `json:"duracionDias"`
	Precio       decimal.Decimal `json:"precio"`
}

// CreatePayload is the body for POST /memberships. The validate tags are the
// shared rule set for the create path.
type CreatePayload struct {
	MembershipType string          `json:"membership_type" validate:"required,oneof=day month year" errmsg:"El tipo de membresía no es válido"`
	DurationDays   int             `json:"duration_days"`
	Price          decimal.Decimal `json:"price"`
	Currency       string          `json:"currency" validate:"required"`
	Status         string          `json:"status" validate:"required,oneof=active inactive"`
}

// CreateForm mirrors the admin form: tipo is the app-side duration kind
// (dias, mes, anio).
type CreateForm struct {
	Tipo         string
	DuracionDias int
	Precio       decimal.Decimal
}

// UpdatePayload is the body for PUT /memberships/:id.
type UpdatePayload struct {
	Status string `json:"status"`
}

// ListParams selects a page of memberships, optionally filtered by status.
type ListParams struct {
	Page   int
	Limit  int
	Status string
}

// ListResult is a normalized page of memberships.
type ListResult struct {
	Data       []Membership          `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}
