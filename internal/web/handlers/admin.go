package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strconv"
	"strings"

	"github.com/northbeam/corporate-site/internal/logger"
	"github.com/northbeam/corporate-site/internal/mailer"
	"github.com/northbeam/corporate-site/internal/models"
)

// AdminHandler serves the authenticated admin API: provider settings,
// connection diagnostics, and recent submissions.
type AdminHandler struct {
	settings SettingsRepository
	subs     SubmissionsRepository
	resolver ConfigResolver
	verifier ConnectionVerifier
	token    string
	log      *logger.Logger
}

// NewAdminHandler creates a new AdminHandler. token is the shared
// bearer token; an empty token locks the admin API entirely.
func NewAdminHandler(settings SettingsRepository, subs SubmissionsRepository, resolver ConfigResolver, verifier ConnectionVerifier, token string) *AdminHandler {
	return &AdminHandler{
		settings: settings,
		subs:     subs,
		resolver: resolver,
		verifier: verifier,
		token:    token,
		log:      logger.Get(),
	}
}

// RequireAuth rejects requests without the admin bearer token.
func (h *AdminHandler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || h.token == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) != 1 {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetBrevoConfig returns the persisted provider settings with the SMTP
// key redacted.
// GET /api/admin/brevo-config
func (h *AdminHandler) GetBrevoConfig(w http.ResponseWriter, r *http.Request) {
	s, err := h.settings.GetBrevoSettings(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("read brevo settings")
		http.Error(w, `{"error":"failed to read settings"}`, http.StatusInternalServerError)
		return
	}
	if s == nil {
		http.Error(w, `{"error":"no settings stored"}`, http.StatusNotFound)
		return
	}

	writeJSON(w, s.Redacted())
}

// brevoConfigPayload is the admin edit shape for provider settings.
type brevoConfigPayload struct {
	SMTPLogin   string `json:"smtp_login"`
	SMTPKey     string `json:"smtp_key"`
	SenderEmail string `json:"sender_email"`
	SenderName  string `json:"sender_name"`
	NotifyEmail string `json:"notify_email"`
	IsActive    bool   `json:"is_active"`
}

// UpdateBrevoConfig upserts the provider settings row.
// PUT /api/admin/brevo-config
func (h *AdminHandler) UpdateBrevoConfig(w http.ResponseWriter, r *http.Request) {
	var payload brevoConfigPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error":"invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if payload.SenderEmail != "" {
		if _, err := mail.ParseAddress(payload.SenderEmail); err != nil {
			http.Error(w, `{"error":"sender_email is not a valid address"}`, http.StatusBadRequest)
			return
		}
	}

	s := &models.BrevoSettings{
		SMTPLogin:   payload.SMTPLogin,
		SMTPKey:     payload.SMTPKey,
		SenderEmail: payload.SenderEmail,
		SenderName:  payload.SenderName,
		NotifyEmail: payload.NotifyEmail,
		IsActive:    payload.IsActive,
	}

	// an omitted key keeps the stored one, so admins can edit other
	// fields without re-entering the credential
	if s.SMTPKey == "" {
		existing, err := h.settings.GetBrevoSettings(r.Context())
		if err == nil && existing != nil {
			s.SMTPKey = existing.SMTPKey
		}
	}

	if err := h.settings.SaveBrevoSettings(r.Context(), s); err != nil {
		h.log.Error().Err(err).Msg("save brevo settings")
		http.Error(w, `{"error":"failed to save settings"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, s.Redacted())
}

// testConnectionResponse is the admin diagnostics shape.
type testConnectionResponse struct {
	OK        bool   `json:"ok"`
	ErrorKind string `json:"errorKind,omitempty"`
}

// TestConnection resolves the effective configuration and performs the
// authentication handshake only. Runs off the submission hot path.
// POST /api/admin/brevo-config/test
func (h *AdminHandler) TestConnection(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.resolver.Resolve(r.Context())
	if err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			writeJSON(w, testConnectionResponse{OK: false, ErrorKind: "NOT_CONFIGURED"})
			return
		}
		h.log.Error().Err(err).Msg("resolve config for connection test")
		http.Error(w, `{"error":"failed to resolve settings"}`, http.StatusInternalServerError)
		return
	}

	if err := h.verifier.Verify(cfg); err != nil {
		var cerr *mailer.ConnectionError
		kind := string(mailer.NetworkUnreachable)
		if errors.As(err, &cerr) {
			kind = string(cerr.Kind)
		}
		h.log.Warn().Str("kind", kind).Msg("connection test failed")
		writeJSON(w, testConnectionResponse{OK: false, ErrorKind: kind})
		return
	}

	writeJSON(w, testConnectionResponse{OK: true})
}

// ListSubmissions returns recent submissions of both kinds.
// GET /api/admin/submissions?limit=50
func (h *AdminHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	contacts, err := h.subs.ListContacts(r.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("list contact inquiries")
		http.Error(w, `{"error":"failed to list submissions"}`, http.StatusInternalServerError)
		return
	}
	applications, err := h.subs.ListApplications(r.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("list job applications")
		http.Error(w, `{"error":"failed to list submissions"}`, http.StatusInternalServerError)
		return
	}

	resp := struct {
		Contacts     []*models.ContactInquiry `json:"contacts"`
		Applications []*models.JobApplication `json:"applications"`
	}{
		Contacts:     contacts,
		Applications: applications,
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		_ = err // Client disconnected
	}
}
