package entities

import "time"

// BookingRequest is the payload handed to persistence once a conversation
// reaches the terminal step. DateText is the user's text as typed; StartsAt
// is only set when date validation is enabled and parsing succeeded.
type BookingRequest struct {
	Name       string     `json:"name"`
	Phone      string     `json:"phone"`
	Service    string     `json:"service"`
	DateText   string     `json:"date"`
	StartsAt   *time.Time `json:"starts_at,omitempty"`
	BusinessID string     `json:"business_id"`
}
