package subscriptions

import (
	"encoding/json"
	"time"

	"github.com/fithouse/console/internal/customers"
	"github.com/fithouse/console/internal/memberships"
	"github.com/fithouse/console/pkg/pagination"
)

// SubscriptionDTO is one customer-membership record as the backend returns
// it, with the plan nested when the endpoint expands it.
type SubscriptionDTO struct {
	ID           string                      `json:"id"`
	CustomerID   string                      `json:"customer_id,omitempty"`
	MembershipID string                      `json:"membership_id,omitempty"`
	StartDate    string                      `json:"start_date,omitempty"`
	EndDate      string                      `json:"end_date,omitempty"`
	Status       string                      `json:"status,omitempty"`
	Membership   *memberships.MembershipDTO  `json:"membership,omitempty"`
	Customer     *customers.CustomerDTO      `json:"customer,omitempty"`
}

// Item is a normalized subscription: parsed dates plus the derived activity
// fields the app consumes.
type Item struct {
	SubscriptionDTO

	Plan      *memberships.Membership `json:"plan,omitempty"`
	StartsAt  *time.Time              `json:"startsAt,omitempty"`
	EndsAt    *time.Time              `json:"endsAt,omitempty"`
	IsActive  bool                    `json:"isActive"`
	DaysLeft  int                     `json:"daysLeft"`
}

// CustomerMemberships is the normalized response for a customer's current
// plan and history.
type CustomerMemberships struct {
	Current *Item  `json:"current_membership"`
	History []Item `json:"memberships"`
}

// ExpiringItemDTO is one entry of GET /customer-memberships/expiring.
type ExpiringItemDTO struct {
	Subscription    SubscriptionDTO            `json:"subscription"`
	Customer        *customers.CustomerDTO     `json:"customer,omitempty"`
	Membership      *memberships.MembershipDTO `json:"membership,omitempty"`
	DaysUntilExpiry *int                       `json:"days_until_expiry,omitempty"`
}

// ExpiringItem is a normalized expiring subscription with the display
// fallbacks already resolved.
type ExpiringItem struct {
	ID              string                     `json:"id"`
	CustomerID      string                     `json:"customer_id,omitempty"`
	Customer        *customers.CustomerDTO     `json:"customer,omitempty"`
	CustomerName    string                     `json:"customer_name"`
	MembershipID    string                     `json:"membership_id,omitempty"`
	Membership      *memberships.Membership    `json:"membership,omitempty"`
	MembershipName  string                     `json:"membership_name"`
	StartDate       string                     `json:"start_date,omitempty"`
	EndDate         string                     `json:"end_date,omitempty"`
	StartsAt        *time.Time                 `json:"startsAt,omitempty"`
	EndsAt          *time.Time                 `json:"endsAt,omitempty"`
	DaysUntilExpiry *int                       `json:"days_until_expiry"`
	Status          string                     `json:"status,omitempty"`
}

// ExpiringResult is the flat, unpaginated set of expiring subscriptions;
// callers paginate it client-side.
type ExpiringResult struct {
	Message string         `json:"message"`
	Data    []ExpiringItem `json:"data"`
}

// ExpiredParams filters the expired listing. CustomerStatus narrows by the
// customer's own status; "all" (or empty) lists every customer.
type ExpiredParams struct {
	Page           int
	Limit          int
	CustomerStatus string
}

// ExpiredResult is a page of expired subscriptions, returned raw: the
// listing renders the records without further normalization.
type ExpiredResult struct {
	Data       []SubscriptionDTO     `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}

// CreatePayload is the body for POST /customer-memberships. The validate tags
// are the shared rule set for the assign path.
type CreatePayload struct {
	CustomerID   string `json:"customer_id" validate:"required" errmsg:"ID de customer requerido"`
	MembershipID string `json:"membership_id" validate:"required" errmsg:"ID de membresía requerido"`
}

// CreateResult carries whatever the backend returns for a new assignment;
// the shape is not stable across backend versions so it stays raw.
type CreateResult struct {
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}
