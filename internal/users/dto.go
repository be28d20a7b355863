package users

import "github.com/fithouse/console/pkg/pagination"

// UserDTO is the user record as the backend returns it.
type UserDTO struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
	Role      string `json:"role,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// User is the normalized shape: the raw record plus the display name and the
// legacy aliases.
type User struct {
	UserDTO

	Name     string `json:"name"`
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono,omitempty"`
}

// CreatePayload is the body for POST /users. The validate tags are the shared
// rule set for the create path; the email check outranks the password check.
type CreatePayload struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty" validate:"required" errmsg:"El email es obligatorio"`
	Phone     string `json:"phone,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
	Password  string `json:"password,omitempty" validate:"required" errmsg:"La contraseña es obligatoria"`
	Role      string `json:"role" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

// CreateForm mirrors the admin form. Nombre is split into first and last name
// when the explicit fields are absent.
type CreateForm struct {
	FirstName string
	LastName  string
	Nombre    string
	Email     string
	Phone     string
	Telefono  string
	BirthDate string
	Password  string
	Role      string
	Status    string
}

// UpdatePayload is the body for PUT /users/:id.
type UpdatePayload struct {
	Status string `json:"status"`
}

// ListParams selects a page of users.
type ListParams struct {
	Page  int
	Limit int
}

// ListResult is a normalized page of users.
type ListResult struct {
	Data       []User                `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}
