package reports

import (
	"fmt"
	"strings"
	"time"

	"github.com/fithouse/console/internal/memberships"
)

// pieColors is the fixed palette of the products chart, cycled when there
// are more products than colors.
var pieColors = []string{
	"#00A3FF", "#81c784", "#ffb74d", "#ba68c8", "#4dd0e1",
	"#ff8a65", "#9575cd", "#4db6ac", "#7986cb", "#a1887f",
}

var dayMonths = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

// membershipLabel resolves a membership type to its display label, keeping
// the raw type for unknown values and an em dash when it is missing.
func membershipLabel(membershipType string) string {
	if label, ok := memberships.TypeLabels[strings.ToLower(membershipType)]; ok {
		return label
	}
	if membershipType != "" {
		return membershipType
	}
	return "—"
}

// DayLabel converts a "YYYY-MM-DD" date into the short chart label, e.g.
// "2026-02-05" becomes "05 feb".
func DayLabel(date string) string {
	if date == "" {
		return "—"
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%02d %s", d.Day(), dayMonths[d.Month()-1])
}

// FromAPI normalizes the report payload. A nil input yields the empty view,
// never an error.
func FromAPI(raw *ReportDTO) *Report {
	if raw == nil {
		return &Report{
			SalesByProduct:     []ProductRow{},
			SalesByDay:         []DayRow{},
			TopCustomers:       []CustomerRow{},
			TopMembershipsSold: []TopMembershipDTO{},
			PieProducts:        []PieSlice{},
		}
	}

	products := make([]ProductRow, 0, len(raw.SalesByProduct))
	for _, p := range raw.SalesByProduct {
		products = append(products, ProductRow{
			Product:      p.Product,
			Nombre:       membershipLabel(p.Product),
			QuantitySold: p.QuantitySold,
			Count:        p.QuantitySold,
			TotalRevenue: p.TotalRevenue,
			Ingresos:     p.TotalRevenue,
			MembershipID: p.Product,
		})
	}

	days := make([]DayRow, 0, len(raw.SalesByDay))
	for _, d := range raw.SalesByDay {
		days = append(days, DayRow{
			Date:       d.Date,
			Fecha:      d.Date,
			Label:      DayLabel(d.Date),
			SalesCount: d.SalesCount,
			Ventas:     d.SalesCount,
			Revenue:    d.Revenue,
			Ingresos:   d.Revenue,
		})
	}

	customers := make([]CustomerRow, 0, len(raw.TopCustomers))
	for _, c := range raw.TopCustomers {
		nombre := c.FullName
		if nombre == "" {
			nombre = "—"
		}
		customers = append(customers, CustomerRow{
			CustomerID: c.CustomerID,
			UserID:     c.CustomerID,
			FullName:   c.FullName,
			Nombre:     nombre,
			TotalPaid:  c.TotalPaid,
			Total:      c.TotalPaid,
			Count:      1,
		})
	}

	top := raw.TopMembershipsSold
	if top == nil {
		top = []TopMembershipDTO{}
	}
	pie := []PieSlice{}
	for i, m := range top {
		if m.Quantity <= 0 {
			continue
		}
		pie = append(pie, PieSlice{
			Name:  membershipLabel(m.MembershipType),
			Value: m.Quantity,
			Color: pieColors[i%len(pieColors)],
		})
	}

	return &Report{
		SalesQuantity:        raw.SalesQuantity,
		TotalRevenue:         raw.TotalRevenue,
		UniqueCustomersCount: raw.UniqueCustomersCount,
		SalesByProduct:       products,
		SalesByDay:           days,
		TopCustomers:         customers,
		TopMembershipsSold:   top,
		PieProducts:          pie,
	}
}
