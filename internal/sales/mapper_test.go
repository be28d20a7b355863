package sales

import (
	"testing"

	"github.com/fithouse/console/internal/customers"
	"github.com/shopspring/decimal"
)

func money(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestFormatCurrency(t *testing.T) {
	cents := decimal.NewFromFloat(50000.49)
	tests := []struct {
		name     string
		value    *decimal.Decimal
		currency string
		want     string
	}{
		{"missing total", nil, "COP", "—"},
		{"whole pesos", money(50000), "COP", "$ 50.000"},
		{"defaults to pesos", money(1500), "", "$ 1.500"},
		{"rounds to whole units", &cents, "COP", "$ 50.000"},
		{"millions", money(1234567), "COP", "$ 1.234.567"},
		{"small amount", money(999), "COP", "$ 999"},
		{"foreign currency keeps its code", money(20), "USD", "USD 20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCurrency(tt.value, tt.currency); got != tt.want {
				t.Errorf("FormatCurrency = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromAPI(t *testing.T) {
	got := FromAPI(&SaleDTO{
		ID:       "v1",
		SaleDate: "2026-02-10T08:00:00Z",
		Total:    money(75000),
		Currency: "COP",
		Customer: &customers.CustomerDTO{ID: "c1", FullName: "Ana Gómez"},
	})
	if got.SoldAt == nil || got.SoldAt.Day() != 10 {
		t.Fatalf("SoldAt = %v", got.SoldAt)
	}
	if got.CustomerName != "Ana Gómez" {
		t.Fatalf("CustomerName = %q", got.CustomerName)
	}
	if got.TotalFormatted != "$ 75.000" {
		t.Fatalf("TotalFormatted = %q", got.TotalFormatted)
	}
}

func TestFromAPIWithoutCustomer(t *testing.T) {
	got := FromAPI(&SaleDTO{ID: "v2"})
	if got.Customer != nil {
		t.Fatalf("Customer = %+v, want nil", got.Customer)
	}
	if got.CustomerName != "" {
		t.Fatalf("CustomerName = %q, want empty", got.CustomerName)
	}
	if got.TotalFormatted != "—" {
		t.Fatalf("TotalFormatted = %q", got.TotalFormatted)
	}
}

func TestFromAPINil(t *testing.T) {
	if FromAPI(nil) != nil {
		t.Fatal("nil input must map to nil")
	}
}
