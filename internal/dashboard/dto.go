package dashboard

// StatsDTO carries the dashboard counters as the backend returns them.
type StatsDTO struct {
	Users          int `json:"users"`
	ActiveMembers  int `json:"active_members"`
	TotalSales     int `json:"total_sales"`
	SalesThisMonth int `json:"sales_this_month"`
}

// MonthDTO is one point of the sales-by-month series, keyed by "YYYY-MM".
type MonthDTO struct {
	Month    string `json:"month"`
	Quantity int    `json:"quantity"`
}

// MembershipCountsDTO is the active/inactive membership count pair.
type MembershipCountsDTO struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// LastSaleItemDTO is one line item of a recent sale.
type LastSaleItemDTO struct {
	Membership string `json:"membership,omitempty"`
	Vigencia   string `json:"vigencia,omitempty"`
}

// LastSaleDTO is one recent sale with its line items.
type LastSaleDTO struct {
	SaleDate string            `json:"sale_date,omitempty"`
	UserName string            `json:"user_name,omitempty"`
	Items    []LastSaleItemDTO `json:"items,omitempty"`
}

// DashboardDTO is the raw payload of GET /dashboard.
type DashboardDTO struct {
	Stats        *StatsDTO            `json:"stats,omitempty"`
	SalesByMonth []MonthDTO           `json:"sales_by_month,omitempty"`
	Memberships  *MembershipCountsDTO `json:"memberships,omitempty"`
	LastSales    []LastSaleDTO        `json:"last_sales,omitempty"`
}

// Stats is the normalized counter set, with the derived membership total.
type Stats struct {
	Users            int `json:"users"`
	ActiveMembers    int `json:"active_members"`
	TotalSales       int `json:"total_sales"`
	SalesThisMonth   int `json:"sales_this_month"`
	MembershipsTotal int `json:"memberships_total"`
}

// MonthPoint is one point of the sales chart with its display label.
type MonthPoint struct {
	Mes    string `json:"mes"`
	Ventas int    `json:"ventas"`
}

// PieSlice is one slice of the active-versus-expired chart.
type PieSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// SaleRow is one row of the recent-sales table: one row per line item, or a
// placeholder row for a sale without items.
type SaleRow struct {
	ID        string `json:"id"`
	Fecha     string `json:"fecha"`
	Usuario   string `json:"usuario"`
	Membresia string `json:"membresia"`
	Vigencia  string `json:"vigencia,omitempty"`
}

// Dashboard is the normalized dashboard view.
type Dashboard struct {
	Stats           Stats        `json:"stats"`
	SalesByMonth    []MonthPoint `json:"salesByMonth"`
	ActiveVsExpired []PieSlice   `json:"activeVsExpired"`
	LastSalesRows   []SaleRow    `json:"lastSalesRows"`
}
