package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northbeam/corporate-site/internal/config"
	"github.com/northbeam/corporate-site/internal/models"
)

// MockSettingsSource is a mock for SettingsSource
type MockSettingsSource struct {
	settings *models.BrevoSettings
	err      error
}

func (m *MockSettingsSource) GetBrevoSettings(ctx context.Context) (*models.BrevoSettings, error) {
	return m.settings, m.err
}

func envConfig() *config.Config {
	return &config.Config{
		BrevoSMTPHost:    "smtp-relay.brevo.com",
		BrevoSMTPPort:    587,
		BrevoSMTPUser:    "env-user@brevo.test",
		BrevoSMTPKey:     "env-key",
		BrevoSenderEmail: "env-sender@example.com",
		BrevoNotifyEmail: "env-notify@example.com",
	}
}

func TestResolver_AdminSettingsWin(t *testing.T) {
	source := &MockSettingsSource{settings: &models.BrevoSettings{
		SMTPLogin:   "admin-user@brevo.test",
		SMTPKey:     "admin-key",
		SenderEmail: "admin-sender@example.com",
		SenderName:  "Northbeam",
		NotifyEmail: "ops@example.com",
		IsActive:    true,
	}}
	r := NewResolver(source, envConfig())

	cfg, err := r.Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, SourceAdmin, cfg.Source)
	assert.Equal(t, "admin-user@brevo.test", cfg.SMTPLogin)
	assert.Equal(t, "admin-key", cfg.SMTPKey)
	assert.Equal(t, "admin-sender@example.com", cfg.SenderEmail)
	assert.Equal(t, "ops@example.com", cfg.NotifyEmail)
}

func TestResolver_NoFieldMixing(t *testing.T) {
	// an admin row missing its key must not borrow env credentials:
	// the whole config falls back to the env side
	source := &MockSettingsSource{settings: &models.BrevoSettings{
		SMTPLogin:   "admin-user@brevo.test",
		SMTPKey:     "",
		SenderEmail: "admin-sender@example.com",
		IsActive:    true,
	}}
	r := NewResolver(source, envConfig())

	cfg, err := r.Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, SourceEnv, cfg.Source)
	assert.Equal(t, "env-user@brevo.test", cfg.SMTPLogin)
	assert.Equal(t, "env-sender@example.com", cfg.SenderEmail)
}

func TestResolver_InactiveAdminFallsBackToEnv(t *testing.T) {
	source := &MockSettingsSource{settings: &models.BrevoSettings{
		SMTPLogin:   "admin-user@brevo.test",
		SMTPKey:     "admin-key",
		SenderEmail: "admin-sender@example.com",
		IsActive:    false,
	}}
	r := NewResolver(source, envConfig())

	cfg, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceEnv, cfg.Source)
}

func TestResolver_NotConfigured(t *testing.T) {
	r := NewResolver(&MockSettingsSource{}, &config.Config{
		BrevoSMTPHost: "smtp-relay.brevo.com",
		BrevoSMTPPort: 587,
	})

	cfg, err := r.Resolve(context.Background())
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestResolver_NotifyDefaultsToSender(t *testing.T) {
	source := &MockSettingsSource{settings: &models.BrevoSettings{
		SMTPLogin:   "admin-user@brevo.test",
		SMTPKey:     "admin-key",
		SenderEmail: "admin-sender@example.com",
		IsActive:    true,
	}}
	r := NewResolver(source, envConfig())

	cfg, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin-sender@example.com", cfg.NotifyEmail)
}

func TestResolver_SettingsReadError(t *testing.T) {
	readErr := errors.New("db down")
	r := NewResolver(&MockSettingsSource{err: readErr}, envConfig())

	cfg, err := r.Resolve(context.Background())
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	assert.NotErrorIs(t, err, ErrNotConfigured)
}
