package sales

import (
	"strings"
	"time"

	"github.com/fithouse/console/internal/customers"
	"github.com/shopspring/decimal"
)

// FromAPI normalizes a raw sale record.
func FromAPI(raw *SaleDTO) *Sale {
	if raw == nil {
		return nil
	}
	customer := customers.FromAPI(raw.Customer)
	customerName := ""
	if customer != nil {
		customerName = customer.Nombre
	}
	return &Sale{
		SaleDTO:        *raw,
		SoldAt:         parseDate(raw.SaleDate),
		Customer:       customer,
		CustomerName:   customerName,
		TotalFormatted: FormatCurrency(raw.Total, raw.Currency),
	}
}

// FromAPIList normalizes a slice of raw records, always returning a non-nil
// slice.
func FromAPIList(raw []SaleDTO) []Sale {
	out := make([]Sale, 0, len(raw))
	for i := range raw {
		out = append(out, *FromAPI(&raw[i]))
	}
	return out
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

// FormatCurrency renders a money amount the way the admin tables show it:
// rounded to whole pesos, thousands separated with dots, an em dash for a
// missing total. Currencies other than COP keep their code as the prefix.
func FormatCurrency(value *decimal.Decimal, currency string) string {
	if value == nil {
		return "—"
	}
	prefix := "$ "
	if currency != "" && currency != "COP" {
		prefix = currency + " "
	}
	return prefix + groupThousands(value.Round(0))
}

func groupThousands(v decimal.Decimal) string {
	s := v.StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
