// Package publisher emits submission events to NATS for downstream
// consumers (CRM sync, analytics). Publishing is best-effort: the site
// keeps accepting forms when the broker is down.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/northbeam/corporate-site/internal/models"
)

// Subjects for submission events.
const (
	SubjectContactNew     = "submissions.contact.new"
	SubjectApplicationNew = "submissions.application.new"
)

// SubmissionEvent is the published payload for a new form submission.
type SubmissionEvent struct {
	ID        uuid.UUID             `json:"id"`
	Kind      models.SubmissionKind `json:"kind"`
	FullName  string                `json:"full_name"`
	Email     string                `json:"email"`
	CreatedAt time.Time             `json:"created_at"`
}

// NATSClient interface to allow mocking
type NATSClient interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher publishes submission events over a NATS connection.
type NATSPublisher struct {
	nc NATSClient
}

// NewNATSPublisher creates a new publisher
func NewNATSPublisher(conn *nats.Conn) *NATSPublisher {
	return &NATSPublisher{nc: conn}
}

// PublishContactNew publishes a new contact inquiry event.
func (p *NATSPublisher) PublishContactNew(_ context.Context, c *models.ContactInquiry) error {
	return p.publish(SubjectContactNew, SubmissionEvent{
		ID:        c.ID,
		Kind:      models.KindContact,
		FullName:  c.FullName,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	})
}

// PublishApplicationNew publishes a new job application event.
func (p *NATSPublisher) PublishApplicationNew(_ context.Context, a *models.JobApplication) error {
	return p.publish(SubjectApplicationNew, SubmissionEvent{
		ID:        a.ID,
		Kind:      models.KindJobApplication,
		FullName:  a.FullName,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	})
}

func (p *NATSPublisher) publish(subject string, event SubmissionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := p.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	return nil
}
