package subscriptions

import (
	"time"

	"github.com/fithouse/console/internal/memberships"
)

const day = 24 * time.Hour

// parseDate accepts the timestamp formats the backend emits: RFC 3339 with
// or without fractional seconds, and bare dates.
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

// NewItem normalizes one subscription record. A subscription is active when
// its end date parses, now is not past it, and its status is "active";
// daysLeft rounds the remaining time up to whole days, floored at zero.
func NewItem(raw *SubscriptionDTO, now time.Time) *Item {
	if raw == nil {
		return nil
	}
	item := &Item{
		SubscriptionDTO: *raw,
		Plan:            memberships.FromAPI(raw.Membership),
		StartsAt:        parseDate(raw.StartDate),
		EndsAt:          parseDate(raw.EndDate),
	}
	if item.EndsAt != nil && !now.After(*item.EndsAt) && raw.Status == "active" {
		item.IsActive = true
		item.DaysLeft = daysBetween(now, *item.EndsAt)
	}
	return item
}

func daysBetween(from, to time.Time) int {
	remaining := to.Sub(from)
	if remaining <= 0 {
		return 0
	}
	days := int(remaining / day)
	if remaining%day != 0 {
		days++
	}
	return days
}

// CustomerMembershipsFromAPI normalizes the current plan and history of one
// customer. When the history carries concurrently active subscriptions they
// are folded into one synthetic current entry: daysLeft is the sum of each
// active subscription's remaining days and the end date is the latest one.
func CustomerMembershipsFromAPI(current *SubscriptionDTO, history []SubscriptionDTO, now time.Time) *CustomerMemberships {
	items := make([]Item, 0, len(history))
	for i := range history {
		items = append(items, *NewItem(&history[i], now))
	}

	result := &CustomerMemberships{
		Current: Aggregate(items, now),
		History: items,
	}
	if result.Current == nil {
		result.Current = NewItem(current, now)
	}
	return result
}

// Aggregate folds the active subscriptions of a history into one synthetic
// summary, or returns nil when none is active. The summary keeps the record
// with the latest end date and reports the combined remaining days.
func Aggregate(items []Item, now time.Time) *Item {
	var latest *Item
	total := 0
	for i := range items {
		item := &items[i]
		if !item.IsActive {
			continue
		}
		total += item.DaysLeft
		if latest == nil || (item.EndsAt != nil && latest.EndsAt != nil && item.EndsAt.After(*latest.EndsAt)) {
			latest = item
		}
	}
	if latest == nil {
		return nil
	}
	summary := *latest
	summary.DaysLeft = total
	return &summary
}

// ExpiringFromAPI normalizes one expiring entry, resolving the display
// fallbacks the listing needs.
func ExpiringFromAPI(raw *ExpiringItemDTO) *ExpiringItem {
	if raw == nil {
		return nil
	}
	sub := raw.Subscription

	customerID := sub.CustomerID
	customerName := "—"
	if raw.Customer != nil {
		if customerID == "" {
			customerID = raw.Customer.ID
		}
		if raw.Customer.FullName != "" {
			customerName = raw.Customer.FullName
		} else if raw.Customer.Nombre != "" {
			customerName = raw.Customer.Nombre
		} else if raw.Customer.Email != "" {
			customerName = raw.Customer.Email
		}
	}

	membershipID := sub.MembershipID
	membershipName := "—"
	plan := memberships.FromAPI(raw.Membership)
	if plan != nil {
		if membershipID == "" {
			membershipID = plan.ID
		}
		membershipName = plan.Nombre
	}

	return &ExpiringItem{
		ID:              sub.ID,
		CustomerID:      customerID,
		Customer:        raw.Customer,
		CustomerName:    customerName,
		MembershipID:    membershipID,
		Membership:      plan,
		MembershipName:  membershipName,
		StartDate:       sub.StartDate,
		EndDate:         sub.EndDate,
		StartsAt:        parseDate(sub.StartDate),
		EndsAt:          parseDate(sub.EndDate),
		DaysUntilExpiry: raw.DaysUntilExpiry,
		Status:          sub.Status,
	}
}

// ExpiringListFromAPI normalizes the expiring listing, always returning a
// non-nil slice.
func ExpiringListFromAPI(message string, raw []ExpiringItemDTO) *ExpiringResult {
	data := make([]ExpiringItem, 0, len(raw))
	for i := range raw {
		data = append(data, *ExpiringFromAPI(&raw[i]))
	}
	return &ExpiringResult{Message: message, Data: data}
}
