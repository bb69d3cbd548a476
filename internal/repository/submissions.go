package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/northbeam/corporate-site/internal/logger"
	"github.com/northbeam/corporate-site/internal/models"
)

// SubmissionsRepository handles contact inquiry and job application records
type SubmissionsRepository struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewSubmissionsRepository creates a new submissions repository
func NewSubmissionsRepository(pool *pgxpool.Pool, log *logger.Logger) *SubmissionsRepository {
	return &SubmissionsRepository{
		pool: pool,
		log:  log,
	}
}

// CreateContact persists a new contact inquiry
func (r *SubmissionsRepository) CreateContact(ctx context.Context, c *models.ContactInquiry) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO contact_inquiries (id, full_name, email, phone, company, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, c.ID, c.FullName, c.Email, c.Phone, c.Company, c.Message).Scan(&c.CreatedAt)

	if err != nil {
		return fmt.Errorf("create contact inquiry: %w", err)
	}

	r.log.Info().
		Str("id", c.ID.String()).
		Str("email", c.Email).
		Msg("created contact inquiry")

	return nil
}

// CreateApplication persists a new job application
func (r *SubmissionsRepository) CreateApplication(ctx context.Context, a *models.JobApplication) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO job_applications (id, full_name, email, phone_number, position, experience, cover_letter)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`, a.ID, a.FullName, a.Email, a.PhoneNumber, a.Position, a.Experience, a.CoverLetter).Scan(&a.CreatedAt)

	if err != nil {
		return fmt.Errorf("create job application: %w", err)
	}

	r.log.Info().
		Str("id", a.ID.String()).
		Str("position", a.Position).
		Msg("created job application")

	return nil
}

// ListContacts returns the most recent contact inquiries
func (r *SubmissionsRepository) ListContacts(ctx context.Context, limit int) ([]*models.ContactInquiry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, full_name, email, phone, company, message, created_at
		FROM contact_inquiries
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list contact inquiries: %w", err)
	}
	defer rows.Close()

	var out []*models.ContactInquiry
	for rows.Next() {
		var c models.ContactInquiry
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.Company, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact inquiry: %w", err)
		}
		out = append(out, &c)
	}

	return out, nil
}

// ListApplications returns the most recent job applications
func (r *SubmissionsRepository) ListApplications(ctx context.Context, limit int) ([]*models.JobApplication, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, full_name, email, phone_number, position, experience, cover_letter, created_at
		FROM job_applications
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	defer rows.Close()

	var out []*models.JobApplication
	for rows.Next() {
		var a models.JobApplication
		if err := rows.Scan(&a.ID, &a.FullName, &a.Email, &a.PhoneNumber, &a.Position, &a.Experience, &a.CoverLetter, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan job application: %w", err)
		}
		out = append(out, &a)
	}

	return out, nil
}
