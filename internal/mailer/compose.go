package mailer

import (
	"errors"
	"fmt"
	"html"
	"net/mail"
	"strings"

	"github.com/northbeam/corporate-site/internal/models"
)

// ErrInvalidRecipient is returned by ComposeAutoReply when the
// submitter email fails the syntax check. Only the auto-reply channel
// is affected; the operator notification still composes.
var ErrInvalidRecipient = errors.New("invalid recipient email")

// Hard-coded identity fallbacks, applied per field when the stored
// company info is missing or blank.
const (
	defaultCompanyName = "Northbeam Solutions"
	defaultEmail       = "info@northbeam.io"
	defaultPhone       = "+1 (555) 014-2200"
	defaultWebsite     = "https://northbeam.io"
)

const notProvided = "not provided"

// CompanyIdentity is the resolved display identity used in templates.
// It is an immutable snapshot: fallbacks are applied once, before
// composing, never inside the templates.
type CompanyIdentity struct {
	CompanyName string
	Email       string
	Phone       string
	Website     string
}

// ResolveIdentity builds the identity snapshot from the stored company
// info. A nil info or any blank field falls back to package defaults,
// each field independently.
func ResolveIdentity(info *models.CompanyInfo) CompanyIdentity {
	id := CompanyIdentity{
		CompanyName: defaultCompanyName,
		Email:       defaultEmail,
		Phone:       defaultPhone,
		Website:     defaultWebsite,
	}
	if info == nil {
		return id
	}
	if info.Name != "" {
		id.CompanyName = info.Name
	}
	if info.Email != "" {
		id.Email = info.Email
	}
	if info.Phone != "" {
		id.Phone = info.Phone
	}
	if info.Website != "" {
		id.Website = info.Website
	}
	return id
}

// ComposeNotification builds the operator notification. The body lists
// every submission field verbatim; operators need the full payload.
func ComposeNotification(sub models.Submission, identity CompanyIdentity, notifyEmail string) Message {
	var subject string
	var b strings.Builder

	switch sub.Kind {
	case models.KindJobApplication:
		a := sub.Application
		subject = fmt.Sprintf("New job application from %s", a.FullName)
		b.WriteString("<h2>New job application</h2><table>")
		writeRow(&b, "Full name", a.FullName)
		writeRow(&b, "Email", a.Email)
		writeRow(&b, "Phone number", a.PhoneNumber)
		writeRow(&b, "Position", a.Position)
		writeRow(&b, "Experience", deref(a.Experience))
		writeRow(&b, "Cover letter", deref(a.CoverLetter))
		b.WriteString("</table>")
	default:
		c := sub.Contact
		subject = fmt.Sprintf("New contact inquiry from %s", c.FullName)
		b.WriteString("<h2>New contact inquiry</h2><table>")
		writeRow(&b, "Full name", c.FullName)
		writeRow(&b, "Email", c.Email)
		writeRow(&b, "Phone", deref(c.Phone))
		writeRow(&b, "Company", deref(c.Company))
		writeRow(&b, "Message", c.Message)
		b.WriteString("</table>")
	}

	fmt.Fprintf(&b, "<p>Sent to %s via the %s website.</p>",
		html.EscapeString(notifyEmail), html.EscapeString(identity.CompanyName))

	return Message{
		To:       notifyEmail,
		Subject:  subject,
		HTMLBody: b.String(),
	}
}

// ComposeAutoReply builds the courtesy receipt for the submitter. It
// never echoes the submitted message back, only an acknowledgment
// templated with the company identity.
func ComposeAutoReply(sub models.Submission, identity CompanyIdentity) (Message, error) {
	addr := sub.Email()
	if _, err := mail.ParseAddress(addr); err != nil {
		return Message{}, fmt.Errorf("%w: %q", ErrInvalidRecipient, addr)
	}

	var subject, lead string
	switch sub.Kind {
	case models.KindJobApplication:
		subject = fmt.Sprintf("Your application to %s", identity.CompanyName)
		lead = fmt.Sprintf("Thank you for applying for the %s position.",
			html.EscapeString(sub.Application.Position))
	default:
		subject = fmt.Sprintf("Thank you for contacting %s", identity.CompanyName)
		lead = "Thank you for reaching out to us."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<p>Dear %s,</p>", html.EscapeString(sub.FullName()))
	fmt.Fprintf(&b, "<p>%s We have received your message and will get back to you shortly.</p>", lead)
	fmt.Fprintf(&b, "<p>Best regards,<br>%s<br>%s | %s<br><a href=%q>%s</a></p>",
		html.EscapeString(identity.CompanyName),
		html.EscapeString(identity.Email),
		html.EscapeString(identity.Phone),
		identity.Website,
		html.EscapeString(identity.Website))

	return Message{
		To:       addr,
		Subject:  subject,
		HTMLBody: b.String(),
	}, nil
}

func writeRow(b *strings.Builder, label, value string) {
	if value == "" {
		value = notProvided
	}
	fmt.Fprintf(b, "<tr><td><b>%s</b></td><td>%s</td></tr>",
		html.EscapeString(label), html.EscapeString(value))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
