package dashboard

import (
	"fmt"
	"strings"

	"github.com/fithouse/console/internal/memberships"
)

// monthLabels maps the MM part of a "YYYY-MM" key to its Spanish short name.
var monthLabels = map[string]string{
	"01": "ene", "02": "feb", "03": "mar", "04": "abr", "05": "may", "06": "jun",
	"07": "jul", "08": "ago", "09": "sep", "10": "oct", "11": "nov", "12": "dic",
}

const (
	activeColor   = "#81c784"
	inactiveColor = "#e57373"
)

// MonthLabel converts a "YYYY-MM" key into the chart label, e.g. "2024-03"
// becomes "mar '24". Keys that do not look like a month pass through.
func MonthLabel(key string) string {
	if len(key) < 7 {
		return key
	}
	year, month, _ := strings.Cut(key, "-")
	short, ok := monthLabels[month]
	if !ok {
		short = month
	}
	if len(year) > 2 {
		year = year[len(year)-2:]
	}
	return fmt.Sprintf("%s '%s", short, year)
}

// FromAPI normalizes the dashboard payload. A nil input yields the empty
// view, never an error.
func FromAPI(raw *DashboardDTO) *Dashboard {
	if raw == nil {
		return &Dashboard{
			SalesByMonth:    []MonthPoint{},
			ActiveVsExpired: []PieSlice{},
			LastSalesRows:   []SaleRow{},
		}
	}

	var stats Stats
	if raw.Stats != nil {
		stats = Stats{
			Users:          raw.Stats.Users,
			ActiveMembers:  raw.Stats.ActiveMembers,
			TotalSales:     raw.Stats.TotalSales,
			SalesThisMonth: raw.Stats.SalesThisMonth,
		}
	}
	if raw.Memberships != nil {
		stats.MembershipsTotal = raw.Memberships.Active + raw.Memberships.Inactive
	}

	return &Dashboard{
		Stats:           stats,
		SalesByMonth:    mapSalesByMonth(raw.SalesByMonth),
		ActiveVsExpired: mapMembershipsChart(raw.Memberships),
		LastSalesRows:   mapLastSalesRows(raw.LastSales),
	}
}

func mapSalesByMonth(raw []MonthDTO) []MonthPoint {
	out := make([]MonthPoint, 0, len(raw))
	for _, item := range raw {
		out = append(out, MonthPoint{Mes: MonthLabel(item.Month), Ventas: item.Quantity})
	}
	return out
}

// mapMembershipsChart builds the two fixed slices and drops the zero-valued
// ones so the chart never renders an empty wedge.
func mapMembershipsChart(counts *MembershipCountsDTO) []PieSlice {
	out := []PieSlice{}
	if counts == nil {
		return out
	}
	if counts.Active > 0 {
		out = append(out, PieSlice{Name: "Activas", Value: counts.Active, Color: activeColor})
	}
	if counts.Inactive > 0 {
		out = append(out, PieSlice{Name: "Vencidas", Value: counts.Inactive, Color: inactiveColor})
	}
	return out
}

// mapLastSalesRows flattens recent sales into one table row per line item. A
// sale without items still gets one placeholder row.
func mapLastSalesRows(raw []LastSaleDTO) []SaleRow {
	rows := []SaleRow{}
	for idx, sale := range raw {
		usuario := sale.UserName
		if usuario == "" {
			usuario = "—"
		}
		if len(sale.Items) == 0 {
			rows = append(rows, SaleRow{
				ID:        fmt.Sprintf("sale-%d", idx),
				Fecha:     sale.SaleDate,
				Usuario:   usuario,
				Membresia: "—",
			})
			continue
		}
		for i, item := range sale.Items {
			rows = append(rows, SaleRow{
				ID:        fmt.Sprintf("sale-%d-%d", idx, i),
				Fecha:     sale.SaleDate,
				Usuario:   usuario,
				Membresia: membershipLabel(item.Membership),
				Vigencia:  item.Vigencia,
			})
		}
	}
	return rows
}

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
