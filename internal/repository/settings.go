package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/northbeam/corporate-site/internal/logger"
	"github.com/northbeam/corporate-site/internal/models"
)

// SettingsRepository handles the admin-managed single-row tables:
// mail provider settings and company identity.
type SettingsRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB, log *logger.Logger) *SettingsRepository {
	return &SettingsRepository{
		db:  db,
		log: log,
	}
}

// GetBrevoSettings returns the persisted provider settings, or nil when
// no row exists yet.
func (r *SettingsRepository) GetBrevoSettings(ctx context.Context) (*models.BrevoSettings, error) {
	var s models.BrevoSettings
	err := r.db.WithContext(ctx).Order("updated_at DESC").First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brevo settings: %w", err)
	}
	return &s, nil
}

// SaveBrevoSettings upserts the provider settings row.
func (r *SettingsRepository) SaveBrevoSettings(ctx context.Context, s *models.BrevoSettings) error {
	existing, err := r.GetBrevoSettings(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		s.ID = existing.ID
	} else if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return fmt.Errorf("save brevo settings: %w", err)
	}

	r.log.Info().
		Str("id", s.ID.String()).
		Bool("is_active", s.IsActive).
		Msg("saved brevo settings")

	return nil
}

// GetCompanyInfo returns the company identity row, or nil when absent.
func (r *SettingsRepository) GetCompanyInfo(ctx context.Context) (*models.CompanyInfo, error) {
	var c models.CompanyInfo
	err := r.db.WithContext(ctx).Order("updated_at DESC").First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company info: %w", err)
	}
	return &c, nil
}

// SaveCompanyInfo upserts the company identity row.
func (r *SettingsRepository) SaveCompanyInfo(ctx context.Context, c *models.CompanyInfo) error {
	existing, err := r.GetCompanyInfo(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		c.ID = existing.ID
	} else if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("save company info: %w", err)
	}

	r.log.Info().
		Str("id", c.ID.String()).
		Str("name", c.Name).
		Msg("saved company info")

	return nil
}
