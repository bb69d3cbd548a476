package handlers

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/northbeam/corporate-site/internal/logger"
	"github.com/northbeam/corporate-site/internal/mailer"
	"github.com/northbeam/corporate-site/internal/models"
	"github.com/northbeam/corporate-site/internal/web"
)

// ContactHandler handles public contact form submissions.
type ContactHandler struct {
	repo       SubmissionsRepository
	dispatcher DispatchService
	publisher  EventPublisher
	hub        HubBroadcaster
	log        *logger.Logger
}

// NewContactHandler creates a new ContactHandler. publisher and hub
// may be nil; both are best-effort side channels.
func NewContactHandler(repo SubmissionsRepository, dispatcher DispatchService, publisher EventPublisher, hub HubBroadcaster) *ContactHandler {
	return &ContactHandler{
		repo:       repo,
		dispatcher: dispatcher,
		publisher:  publisher,
		hub:        hub,
		log:        logger.Get(),
	}
}

// contactPayload is the frontend contract for the contact form.
type contactPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
	Message  string `json:"message"`
}

func (p *contactPayload) validate() string {
	if strings.TrimSpace(p.FullName) == "" {
		return "fullName is required"
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return "a valid email is required"
	}
	if strings.TrimSpace(p.Message) == "" {
		return "message is required"
	}
	return ""
}

// Create accepts a contact inquiry, persists it, and dispatches the
// notification emails. The HTTP status tracks persistence only; email
// delivery is best-effort and reported in the body.
// POST /api/contact
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload contactPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error":"invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if msg := payload.validate(); msg != "" {
		http.Error(w, `{"error":"`+msg+`"}`, http.StatusBadRequest)
		return
	}

	inquiry := &models.ContactInquiry{
		FullName: strings.TrimSpace(payload.FullName),
		Email:    strings.TrimSpace(payload.Email),
		Phone:    optional(payload.Phone),
		Company:  optional(payload.Company),
		Message:  payload.Message,
	}

	if err := h.repo.CreateContact(r.Context(), inquiry); err != nil {
		h.log.Error().Err(err).Msg("persist contact inquiry")
		http.Error(w, `{"error":"failed to save submission"}`, http.StatusInternalServerError)
		return
	}

	sub := models.NewContactSubmission(inquiry)
	h.notifySideChannels(r, inquiry)

	outcome := h.dispatcher.Dispatch(r.Context(), sub)
	if h.hub != nil {
		h.hub.Broadcast(web.DispatchCompletedEvent(inquiry.ID, outcome.EmailsSent))
	}

	writeSubmissionResponse(w, outcome)
}

func (h *ContactHandler) notifySideChannels(r *http.Request, inquiry *models.ContactInquiry) {
	if h.publisher != nil {
		if err := h.publisher.PublishContactNew(r.Context(), inquiry); err != nil {
			h.log.Warn().Err(err).Msg("publish contact event")
		}
	}
	if h.hub != nil {
		h.hub.Broadcast(web.SubmissionReceivedEvent(inquiry.ID, models.KindContact, inquiry.FullName))
	}
}

// writeSubmissionResponse emits 200 {success:true, ...report} for a
// persisted submission regardless of the email outcome.
func writeSubmissionResponse(w http.ResponseWriter, outcome *mailer.Outcome) {
	resp := struct {
		Success bool `json:"success"`
		mailer.Response
	}{
		Success:  true,
		Response: mailer.Report(outcome),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		_ = err // Client disconnected
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
