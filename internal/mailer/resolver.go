package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/northbeam/corporate-site/internal/config"
	"github.com/northbeam/corporate-site/internal/models"
)

// ErrNotConfigured signals that neither the admin-managed settings nor
// the environment fallback yield usable credentials. Callers treat it
// as a terminal state for the current request, not a failure to retry.
var ErrNotConfigured = errors.New("mail provider not configured")

// ConfigSource tells which side of the admin-vs-environment precedence
// produced an effective configuration.
type ConfigSource string

// ConfigSource values. A configuration is sourced entirely from one
// side; credential and sender fields are never mixed between them.
const (
	SourceAdmin ConfigSource = "admin"
	SourceEnv   ConfigSource = "env"
)

// ProviderConfig is the effective mail provider configuration for a
// single dispatch or verification call.
type ProviderConfig struct {
	Host        string
	Port        int
	SMTPLogin   string
	SMTPKey     string
	SenderEmail string
	SenderName  string
	NotifyEmail string
	Source      ConfigSource
}

// SettingsSource reads the persisted admin-managed provider settings.
type SettingsSource interface {
	GetBrevoSettings(ctx context.Context) (*models.BrevoSettings, error)
}

// Resolver produces the effective provider configuration. It reads the
// persisted settings fresh on every call so admin edits take effect
// without restarts or cache invalidation.
type Resolver struct {
	settings SettingsSource

	host string
	port int

	envSMTPUser    string
	envSMTPKey     string
	envSenderEmail string
	envNotifyEmail string
}

// NewResolver creates a resolver over the persisted settings source
// with environment fallbacks taken from the loaded config.
func NewResolver(settings SettingsSource, cfg *config.Config) *Resolver {
	return &Resolver{
		settings:       settings,
		host:           cfg.BrevoSMTPHost,
		port:           cfg.BrevoSMTPPort,
		envSMTPUser:    cfg.BrevoSMTPUser,
		envSMTPKey:     cfg.BrevoSMTPKey,
		envSenderEmail: cfg.BrevoSenderEmail,
		envNotifyEmail: cfg.BrevoNotifyEmail,
	}
}

// Resolve returns the effective configuration or ErrNotConfigured.
// Admin settings win when present, active, and complete; otherwise the
// environment fallback is used in full.
func (r *Resolver) Resolve(ctx context.Context) (*ProviderConfig, error) {
	s, err := r.settings.GetBrevoSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("read provider settings: %w", err)
	}

	if s != nil && s.IsActive && s.SMTPKey != "" && s.SenderEmail != "" {
		notify := s.NotifyEmail
		if notify == "" {
			notify = s.SenderEmail
		}
		return &ProviderConfig{
			Host:        r.host,
			Port:        r.port,
			SMTPLogin:   s.SMTPLogin,
			SMTPKey:     s.SMTPKey,
			SenderEmail: s.SenderEmail,
			SenderName:  s.SenderName,
			NotifyEmail: notify,
			Source:      SourceAdmin,
		}, nil
	}

	if r.envSMTPUser != "" && r.envSMTPKey != "" && r.envSenderEmail != "" {
		notify := r.envNotifyEmail
		if notify == "" {
			notify = r.envSenderEmail
		}
		return &ProviderConfig{
			Host:        r.host,
			Port:        r.port,
			SMTPLogin:   r.envSMTPUser,
			SMTPKey:     r.envSMTPKey,
			SenderEmail: r.envSenderEmail,
			NotifyEmail: notify,
			Source:      SourceEnv,
		}, nil
	}

	return nil, ErrNotConfigured
}
