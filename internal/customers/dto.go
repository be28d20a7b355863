package customers

import "github.com/fithouse/console/pkg/pagination"

// CustomerDTO is the customer record as the backend returns it. Nombre is the
// legacy display-name alias some backend versions send instead of full_name.
type CustomerDTO struct {
	ID           string `json:"id"`
	CompanyID    string `json:"company_id,omitempty"`
	DocType      string `json:"doc_type,omitempty"`
	DocNumber    string `json:"doc_number,omitempty"`
	FullName     string `json:"full_name,omitempty"`
	Nombre       string `json:"nombre,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	BirthDate    string `json:"birth_date,omitempty"`
	Address      string `json:"address,omitempty"`
	Status       string `json:"status,omitempty"`
	MarkedAsLeft bool   `json:"marked_as_left,omitempty"`
	LeftAt       string `json:"left_at,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// Customer is the normalized shape the rest of the app consumes: the raw
// record plus the legacy display aliases.
type Customer struct {
	CustomerDTO

	Nombre    string `json:"nombre"`
	Documento string `json:"documento,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// CreatePayload is the body for POST /customers. The validate tags are the
// shared rule set for the create path; the email check outranks the name
// check, so it comes first.
type CreatePayload struct {
	DocType   string `json:"doc_type" validate:"required,oneof=CC TI PASAPORTE"`
	DocNumber string `json:"doc_number,omitempty"`
	Email     string `json:"email,omitempty" validate:"required" errmsg:"El email es obligatorio"`
	FullName  string `json:"full_name,omitempty" validate:"required" errmsg:"El nombre es obligatorio"`
	Phone     string `json:"phone,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
	Address   string `json:"address,omitempty"`
	Status    string `json:"status,omitempty"`
}

// UpdatePayload carries the partial fields for PUT /customers/:id. Pointers so
// absent fields stay off the wire.
type UpdatePayload struct {
	FullName     *string `json:"full_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	Status       *string `json:"status,omitempty"`
	MarkedAsLeft *bool   `json:"marked_as_left,omitempty"`
}

// CreateForm mirrors the admin form, accepting both canonical and legacy
// field names.
type CreateForm struct {
	DocType   string
	DocNumber string
	FullName  string
	Nombre    string
	Email     string
	Phone     string
	Telefono  string
	BirthDate string
	Address   string
	Direccion string
	Status    string
}

// ListParams selects a page of customers.
type ListParams struct {
	Page  int
	Limit int
}

// ListResult is a normalized page of customers.
type ListResult struct {
	Data       []Customer            `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}

// LeftResult is the flat, unpaginated set of departed customers; callers
// paginate it client-side.
type LeftResult struct {
	Message string     `json:"message"`
	Data    []Customer `json:"data"`
}
