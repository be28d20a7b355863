package sales

import (
	"time"

	"github.com/fithouse/console/internal/customers"
	"github.com/fithouse/console/pkg/pagination"
	"github.com/shopspring/decimal"
)

// SaleItemDTO is one line item of a sale.
type SaleItemDTO struct {
	MembershipID string `json:"membership_id,omitempty"`
	Membership   string `json:"membership,omitempty"`
	Vigencia     string `json:"vigencia,omitempty"`
}

// SaleDTO is the sale record as the backend returns it, with the customer
// nested when the endpoint expands it.
type SaleDTO struct {
	ID         string                 `json:"id"`
	CustomerID string                 `json:"customer_id,omitempty"`
	UserID     string                 `json:"user_id,omitempty"`
	UserName   string                 `json:"user_name,omitempty"`
	SaleDate   string                 `json:"sale_date,omitempty"`
	Total      *decimal.Decimal       `json:"total,omitempty"`
	Currency   string                 `json:"currency,omitempty"`
	Status     string                 `json:"status,omitempty"`
	Customer   *customers.CustomerDTO `json:"customer,omitempty"`
	Items      []SaleItemDTO          `json:"items,omitempty"`
}

// Sale is the normalized shape: the raw record plus the parsed date, the
// resolved customer name and the display total.
type Sale struct {
	SaleDTO

	SoldAt         *time.Time         `json:"soldAt,omitempty"`
	Customer       *customers.Customer `json:"customer,omitempty"`
	CustomerName   string             `json:"customerName"`
	TotalFormatted string             `json:"totalFormatted"`
}

// ListParams selects a page of sales. The filters are trimmed and only sent
// when non-empty.
type ListParams struct {
	Page         int
	Limit        int
	UserName     string
	MembershipID string
	DateFrom     string
	DateTo       string
}

// ListResult is a normalized page of sales.
type ListResult struct {
	Data       []Sale                `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}
