package customers

import "strings"

// DocTypes are the document types the backend accepts.
var DocTypes = []string{"CC", "TI", "PASAPORTE"}

// DefaultDocType is used when a form carries no document type.
const DefaultDocType = "CC"

// FromAPI normalizes a raw customer record into the shape the app consumes.
// Returns nil for a nil input.
func FromAPI(raw *CustomerDTO) *Customer {
	if raw == nil {
		return nil
	}
	return &Customer{
		CustomerDTO: *raw,
		Nombre:      firstNonEmpty(raw.FullName, raw.Nombre),
		Documento:   documento(raw.DocType, raw.DocNumber),
		Telefono:    raw.Phone,
		Direccion:   raw.Address,
	}
}

// FromAPIList normalizes a slice of raw records, always returning a non-nil
// slice.
func FromAPIList(raw []CustomerDTO) []Customer {
	out := make([]Customer, 0, len(raw))
	for i := range raw {
		out = append(out, *FromAPI(&raw[i]))
	}
	return out
}

func documento(docType, docNumber string) string {
	parts := make([]string, 0, 2)
	if docType != "" {
		parts = append(parts, docType)
	}
	if docNumber != "" {
		parts = append(parts, docNumber)
	}
	return strings.Join(parts, " ")
}

// BuildCreatePayload maps a form onto the wire payload, accepting legacy
// field names and coercing the document type to the accepted set.
func BuildCreatePayload(form CreateForm) CreatePayload {
	docType := strings.ToUpper(strings.TrimSpace(form.DocType))
	if !isDocType(docType) {
		docType = DefaultDocType
	}
	status := form.Status
	if status == "" {
		status = "active"
	}
	return CreatePayload{
		DocType:   docType,
		DocNumber: strings.TrimSpace(form.DocNumber),
		FullName:  strings.TrimSpace(firstNonEmpty(form.FullName, form.Nombre)),
		Email:     strings.TrimSpace(form.Email),
		Phone:     strings.TrimSpace(firstNonEmpty(form.Phone, form.Telefono)),
		BirthDate: strings.TrimSpace(form.BirthDate),
		Address:   strings.TrimSpace(firstNonEmpty(form.Address, form.Direccion)),
		Status:    status,
	}
}

func isDocType(v string) bool {
	for _, t := range DocTypes {
		if v == t {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
