package db

import "time"

type Business struct {
	ID   string
	Slug string
	Name string
}

type Appointment struct {
	ID         int
	Name       string
	Phone      string
	Service    string
	DateText   string
	StartsAt   *time.Time
	BusinessID string
	CreatedAt  time.Time
}
