package memberships

import "fmt"

// TypeLabels maps backend membership types to their Spanish display labels.
// The singular forms are the wire types plans are created with, so they must
// resolve the same as their plural aliases.
var TypeLabels = map[string]string{
	"day":       "Por días",
	"daily":     "Por días",
	"weekly":    "Semanal",
	"month":     "Mensual",
	"monthly":   "Mensual",
	"quarterly": "Trimestral",
	"year":      "Anual",
	"yearly":    "Anual",
	"custom":    "Personalizado",
}

// tipoByType folds backend membership types into the app-side duration kinds.
var tipoByType = map[string]string{
	"day":       "dias",
	"daily":     "dias",
	"weekly":    "dias",
	"month":     "mes",
	"monthly":   "mes",
	"quarterly": "mes",
	"year":      "anio",
	"yearly":    "anio",
	"custom":    "mes",
}

// typeByTipo maps the app-side duration kind back to the wire type used when
// creating a plan.
var typeByTipo = map[string]string{
	"dias": "day",
	"mes":  "month",
	"anio": "year",
}

// Tipo returns the app-side duration kind for a backend membership type.
// Unknown types fold into "mes".
func Tipo(membershipType string) string {
	if tipo, ok := tipoByType[membershipType]; ok {
		return tipo
	}
	return "mes"
}

// Label returns the display label for a backend membership type, falling back
// to the raw type and then to "Plan".
func Label(membershipType string) string {
	if label, ok := TypeLabels[membershipType]; ok {
		return label
	}
	if membershipType != "" {
		return membershipType
	}
	return "Plan"
}

// FromAPI normalizes a raw membership plan. A backend-supplied display name
// or price alias wins over the derived defaults.
func FromAPI(raw *MembershipDTO) *Membership {
	if raw == nil {
		return nil
	}
	nombre := raw.Nombre
	if nombre == "" {
		nombre = fmt.Sprintf("%s (%d días)", Label(raw.MembershipType), int(raw.DurationDays))
	}
	precio := raw.Price
	if raw.Precio != nil {
		precio = *raw.Precio
	}
	return &Membership{
		MembershipDTO: *raw,
		Nombre:        nombre,
		Tipo:          Tipo(raw.MembershipType),
		DuracionDias:  int(raw.DurationDays),
		Precio:        precio,
	}
}

// FromAPIList normalizes a slice of raw records, always returning a non-nil
// slice.
func FromAPIList(raw []MembershipDTO) []Membership {
	out := make([]Membership, 0, len(raw))
	for i := range raw {
		out = append(out, *FromAPI(&raw[i]))
	}
	return out
}

// BuildCreatePayload maps a form onto the wire payload. New plans are always
// created active and priced in Colombian pesos.
func BuildCreatePayload(form CreateForm) CreatePayload {
	membershipType, ok := typeByTipo[form.Tipo]
	if !ok {
		membershipType = "month"
	}
	return CreatePayload{
		MembershipType: membershipType,
		DurationDays:   form.DuracionDias,
		Price:          form.Precio,
		Currency:       "COP",
		Status:         "active",
	}
}
