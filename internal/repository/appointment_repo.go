package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"randevu/internal/db"
	"randevu/internal/entities"
)

type AppointmentRepository struct {
	DB *sql.DB
}

func NewAppointmentRepository(db *sql.DB) *AppointmentRepository {
	return &AppointmentRepository{DB: db}
}

// GetBusinessBySlug returns the business for a public slug, or (nil, nil)
// when no such business exists.
func (r *AppointmentRepository) GetBusinessBySlug(slug string) (*db.Business, error) {
	var b db.Business
	err := r.DB.QueryRow(`SELECT id, slug, name FROM businesses WHERE slug = $1`, slug).
		Scan(&b.ID, &b.Slug, &b.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying business by slug %q: %w", slug, err)
	}
	return &b, nil
}

// CreateAppointment inserts a completed booking. The raw date text is stored
// as typed; starts_at is only filled when the engine parsed it.
func (r *AppointmentRepository) CreateAppointment(ctx context.Context, req *entities.BookingRequest) error {
	query := `
		INSERT INTO appointments (name, phone, service, date_text, starts_at, business_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id`

	var id int
	err := r.DB.QueryRowContext(ctx, query,
		req.Name, req.Phone, req.Service, req.DateText, req.StartsAt, req.BusinessID,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("error inserting appointment: %w", err)
	}
	return nil
}
