package reports

import "github.com/shopspring/decimal"

// ProductDTO is one row of sales_by_product.
type ProductDTO struct {
	Product      string          `json:"product"`
	QuantitySold int             `json:"quantity_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// DayDTO is one row of sales_and_revenue_by_day.
type DayDTO struct {
	Date       string          `json:"date"`
	SalesCount int             `json:"sales_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// TopCustomerDTO is one row of top_10_customers_by_payment.
type TopCustomerDTO struct {
	CustomerID string          `json:"customer_id"`
	FullName   string          `json:"full_name,omitempty"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
}

// TopMembershipDTO is one row of top_memberships_sold.
type TopMembershipDTO struct {
	MembershipType string `json:"membership_type"`
	Quantity       int    `json:"quantity"`
}

// ReportDTO is the raw payload of GET /reports/informe.
type ReportDTO struct {
	SalesQuantity        int                `json:"sales_quantity"`
	TotalRevenue         decimal.Decimal    `json:"total_revenue"`
	UniqueCustomersCount int                `json:"unique_customers_count"`
	SalesByProduct       []ProductDTO       `json:"sales_by_product,omitempty"`
	SalesByDay           []DayDTO           `json:"sales_and_revenue_by_day,omitempty"`
	TopCustomers         []TopCustomerDTO   `json:"top_10_customers_by_payment,omitempty"`
	TopMembershipsSold   []TopMembershipDTO `json:"top_memberships_sold,omitempty"`
}

// ProductRow is a UI-ready product row. The snake_case and display keys
// carry the same values on purpose: two chart components read different
// names from the same row.
type ProductRow struct {
	Product      string          `json:"product"`
	Nombre       string          `json:"nombre"`
	QuantitySold int             `json:"quantity_sold"`
	Count        int             `json:"count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	Ingresos     decimal.Decimal `json:"ingresos"`
	MembershipID string          `json:"membershipId"`
}

// DayRow is a UI-ready day row with the duplicated key convention.
type DayRow struct {
	Date       string          `json:"date"`
	Fecha      string          `json:"fecha"`
	Label      string          `json:"label"`
	SalesCount int             `json:"sales_count"`
	Ventas     int             `json:"ventas"`
	Revenue    decimal.Decimal `json:"revenue"`
	Ingresos   decimal.Decimal `json:"ingresos"`
}

// CustomerRow is a UI-ready top-customer row with the duplicated key
// convention.
type CustomerRow struct {
	CustomerID string          `json:"customer_id"`
	UserID     string          `json:"userId"`
	FullName   string          `json:"full_name,omitempty"`
	Nombre     string          `json:"nombre"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
}

// PieSlice is one slice of the products chart.
type PieSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Report is the normalized report view.
type Report struct {
	SalesQuantity        int                `json:"salesQuantity"`
	TotalRevenue         decimal.Decimal    `json:"totalRevenue"`
	UniqueCustomersCount int                `json:"uniqueCustomersCount"`
	SalesByProduct       []ProductRow       `json:"salesByProduct"`
	SalesByDay           []DayRow           `json:"salesByDay"`
	TopCustomers         []CustomerRow      `json:"topCustomers"`
	TopMembershipsSold   []TopMembershipDTO `json:"topMembershipsSold"`
	PieProducts          []PieSlice         `json:"pieProducts"`
}
