package handlers

import (
	"context"

	"github.com/northbeam/corporate-site/internal/mailer"
	"github.com/northbeam/corporate-site/internal/models"
)

// SubmissionsRepository defines the interface for submission data access.
type SubmissionsRepository interface {
	CreateContact(ctx context.Context, c *models.ContactInquiry) error
	CreateApplication(ctx context.Context, a *models.JobApplication) error
	ListContacts(ctx context.Context, limit int) ([]*models.ContactInquiry, error)
	ListApplications(ctx context.Context, limit int) ([]*models.JobApplication, error)
}

// SettingsRepository defines the interface for provider settings access.
type SettingsRepository interface {
	GetBrevoSettings(ctx context.Context) (*models.BrevoSettings, error)
	SaveBrevoSettings(ctx context.Context, s *models.BrevoSettings) error
}

// DispatchService runs the notification dispatch for a submission.
type DispatchService interface {
	Dispatch(ctx context.Context, sub models.Submission) *mailer.Outcome
}

// ConfigResolver yields the effective provider configuration.
type ConfigResolver interface {
	Resolve(ctx context.Context) (*mailer.ProviderConfig, error)
}

// ConnectionVerifier checks provider connectivity without sending mail.
type ConnectionVerifier interface {
	Verify(cfg *mailer.ProviderConfig) error
}

// EventPublisher emits submission events to the message broker.
// A nil publisher disables publishing.
type EventPublisher interface {
	PublishContactNew(ctx context.Context, c *models.ContactInquiry) error
	PublishApplicationNew(ctx context.Context, a *models.JobApplication) error
}

// HubBroadcaster pushes events to connected admin dashboards.
type HubBroadcaster interface {
	Broadcast(message []byte)
}
