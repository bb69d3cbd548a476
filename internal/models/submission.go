package models

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionKind identifies which form produced a submission.
type SubmissionKind string

// SubmissionKind constants define the supported form variants.
const (
	KindContact        SubmissionKind = "CONTACT"
	KindJobApplication SubmissionKind = "JOB_APPLICATION"
)

// ContactInquiry represents a submitted contact form.
type ContactInquiry struct {
	ID       uuid.UUID `json:"id" db:"id"`
	FullName string    `json:"full_name" db:"full_name"`
	Email    string    `json:"email" db:"email"`
	Phone    *string   `json:"phone,omitempty" db:"phone"`
	Company  *string   `json:"company,omitempty" db:"company"`
	Message  string    `json:"message" db:"message"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// JobApplication represents a submitted job application form.
type JobApplication struct {
	ID          uuid.UUID `json:"id" db:"id"`
	FullName    string    `json:"full_name" db:"full_name"`
	Email       string    `json:"email" db:"email"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	Position    string    `json:"position" db:"position"`
	Experience  *string   `json:"experience,omitempty" db:"experience"`
	CoverLetter *string   `json:"cover_letter,omitempty" db:"cover_letter"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Submission is the tagged view the mail dispatcher works with.
// Exactly one of Contact or Application is non-nil, matching Kind.
type Submission struct {
	Kind        SubmissionKind
	Contact     *ContactInquiry
	Application *JobApplication
}

// NewContactSubmission wraps a contact inquiry.
func NewContactSubmission(c *ContactInquiry) Submission {
	return Submission{Kind: KindContact, Contact: c}
}

// NewApplicationSubmission wraps a job application.
func NewApplicationSubmission(a *JobApplication) Submission {
	return Submission{Kind: KindJobApplication, Application: a}
}

// FullName returns the submitter's name regardless of variant.
func (s Submission) FullName() string {
	switch s.Kind {
	case KindContact:
		return s.Contact.FullName
	case KindJobApplication:
		return s.Application.FullName
	}
	return ""
}

// Email returns the submitter's email regardless of variant.
func (s Submission) Email() string {
	switch s.Kind {
	case KindContact:
		return s.Contact.Email
	case KindJobApplication:
		return s.Application.Email
	}
	return ""
}
