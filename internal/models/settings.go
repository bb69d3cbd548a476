package models

import (
	"time"

	"github.com/google/uuid"
)

// BrevoSettings is the admin-editable mail provider configuration.
// Stored as a single row; the dispatcher reads it fresh on every call.
type BrevoSettings struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SMTPLogin   string    `json:"smtp_login" gorm:"column:smtp_login"`
	SMTPKey     string    `json:"smtp_key,omitempty" gorm:"column:smtp_key"`
	SenderEmail string    `json:"sender_email" gorm:"column:sender_email"`
	SenderName  string    `json:"sender_name" gorm:"column:sender_name"`
	NotifyEmail string    `json:"notify_email" gorm:"column:notify_email"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active"`

	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the gorm default.
func (BrevoSettings) TableName() string { return "brevo_settings" }

// Redacted returns a copy safe for API responses: the SMTP key is
// never echoed back, only whether one is set.
func (s BrevoSettings) Redacted() BrevoSettings {
	out := s
	if out.SMTPKey != "" {
		out.SMTPKey = "***"
	}
	return out
}

// CompanyInfo holds the display identity used in outbound mail templates.
type CompanyInfo struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	Website string    `json:"website"`

	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the gorm default.
func (CompanyInfo) TableName() string { return "company_info" }
