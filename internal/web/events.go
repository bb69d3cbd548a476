package web

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/northbeam/corporate-site/internal/models"
)

// WebSocket event types
const (
	EventSubmissionReceived = "submission.received"
	EventDispatchCompleted  = "dispatch.completed"
)

// WSEvent represents a structured WebSocket message
type WSEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// SubmissionReceivedPayload is the payload for EventSubmissionReceived
type SubmissionReceivedPayload struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	FullName string `json:"full_name"`
}

// DispatchCompletedPayload is the payload for EventDispatchCompleted
type DispatchCompletedPayload struct {
	SubmissionID string `json:"submission_id"`
	EmailsSent   bool   `json:"emails_sent"`
}

// SubmissionReceivedEvent creates a JSON message for a new submission
func SubmissionReceivedEvent(id uuid.UUID, kind models.SubmissionKind, fullName string) []byte {
	evt := WSEvent{
		Type: EventSubmissionReceived,
		Payload: SubmissionReceivedPayload{
			ID:       id.String(),
			Kind:     string(kind),
			FullName: fullName,
		},
	}
	b, _ := json.Marshal(evt)
	return b
}

// DispatchCompletedEvent creates a JSON message for a finished dispatch
func DispatchCompletedEvent(submissionID uuid.UUID, emailsSent bool) []byte {
	evt := WSEvent{
		Type: EventDispatchCompleted,
		Payload: DispatchCompletedPayload{
			SubmissionID: submissionID.String(),
			EmailsSent:   emailsSent,
		},
	}
	b, _ := json.Marshal(evt)
	return b
}
