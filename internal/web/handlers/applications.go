package handlers

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/northbeam/corporate-site/internal/logger"
	"github.com/northbeam/corporate-site/internal/models"
	"github.com/northbeam/corporate-site/internal/web"
)

// ApplicationsHandler handles public job application submissions.
type ApplicationsHandler struct {
	repo       SubmissionsRepository
	dispatcher DispatchService
	publisher  EventPublisher
	hub        HubBroadcaster
	log        *logger.Logger
}

// NewApplicationsHandler creates a new ApplicationsHandler.
func NewApplicationsHandler(repo SubmissionsRepository, dispatcher DispatchService, publisher EventPublisher, hub HubBroadcaster) *ApplicationsHandler {
	return &ApplicationsHandler{
		repo:       repo,
		dispatcher: dispatcher,
		publisher:  publisher,
		hub:        hub,
		log:        logger.Get(),
	}
}

// applicationPayload is the frontend contract for the careers form.
type applicationPayload struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Position    string `json:"position"`
	Experience  string `json:"experience,omitempty"`
	CoverLetter string `json:"coverLetter,omitempty"`
}

func (p *applicationPayload) validate() string {
	if strings.TrimSpace(p.FullName) == "" {
		return "fullName is required"
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return "a valid email is required"
	}
	if strings.TrimSpace(p.PhoneNumber) == "" {
		return "phoneNumber is required"
	}
	if strings.TrimSpace(p.Position) == "" {
		return "position is required"
	}
	return ""
}

// Create accepts a job application, persists it, and dispatches the
// notification emails.
// POST /api/job-applications
func (h *ApplicationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload applicationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error":"invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if msg := payload.validate(); msg != "" {
		http.Error(w, `{"error":"`+msg+`"}`, http.StatusBadRequest)
		return
	}

	app := &models.JobApplication{
		FullName:    strings.TrimSpace(payload.FullName),
		Email:       strings.TrimSpace(payload.Email),
		PhoneNumber: strings.TrimSpace(payload.PhoneNumber),
		Position:    strings.TrimSpace(payload.Position),
		Experience:  optional(payload.Experience),
		CoverLetter: optional(payload.CoverLetter),
	}

	if err := h.repo.CreateApplication(r.Context(), app); err != nil {
		h.log.Error().Err(err).Msg("persist job application")
		http.Error(w, `{"error":"failed to save submission"}`, http.StatusInternalServerError)
		return
	}

	if h.publisher != nil {
		if err := h.publisher.PublishApplicationNew(r.Context(), app); err != nil {
			h.log.Warn().Err(err).Msg("publish application event")
		}
	}
	if h.hub != nil {
		h.hub.Broadcast(web.SubmissionReceivedEvent(app.ID, models.KindJobApplication, app.FullName))
	}

	outcome := h.dispatcher.Dispatch(r.Context(), models.NewApplicationSubmission(app))
	if h.hub != nil {
		h.hub.Broadcast(web.DispatchCompletedEvent(app.ID, outcome.EmailsSent))
	}

	writeSubmissionResponse(w, outcome)
}
