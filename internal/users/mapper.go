package users

import "strings"

// FromAPI normalizes a raw user record. The display name joins first and last
// name, falling back to the email when both are empty.
func FromAPI(raw *UserDTO) *User {
	if raw == nil {
		return nil
	}
	name := strings.TrimSpace(strings.Join(nonEmpty(raw.FirstName, raw.LastName), " "))
	if name == "" {
		name = raw.Email
	}
	return &User{
		UserDTO:  *raw,
		Name:     name,
		Nombre:   name,
		Telefono: raw.Phone,
	}
}

// FromAPIList normalizes a slice of raw records, always returning a non-nil
// slice.
func FromAPIList(raw []UserDTO) []User {
	out := make([]User, 0, len(raw))
	for i := range raw {
		out = append(out, *FromAPI(&raw[i]))
	}
	return out
}

// BuildCreatePayload maps a form onto the wire payload. When the form only
// carries Nombre, the first word becomes the first name and the rest the last
// name.
func BuildCreatePayload(form CreateForm) CreatePayload {
	first := strings.TrimSpace(form.FirstName)
	last := strings.TrimSpace(form.LastName)
	if first == "" && last == "" && strings.TrimSpace(form.Nombre) != "" {
		parts := strings.Fields(form.Nombre)
		first = parts[0]
		last = strings.Join(parts[1:], " ")
	}

	role := strings.TrimSpace(form.Role)
	if role == "" {
		role = "member"
	}
	status := strings.TrimSpace(form.Status)
	if status == "" {
		status = "active"
	}
	return CreatePayload{
		FirstName: first,
		LastName:  last,
		Email:     strings.TrimSpace(form.Email),
		Phone:     strings.TrimSpace(firstNonEmpty(form.Phone, form.Telefono)),
		BirthDate: strings.TrimSpace(form.BirthDate),
		Password:  form.Password,
		Role:      role,
		Status:    status,
	}
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
