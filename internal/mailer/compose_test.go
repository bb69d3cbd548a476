package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northbeam/corporate-site/internal/models"
)

func contactSubmission() models.Submission {
	phone := "+1 555 0100"
	company := "Acme GmbH"
	return models.NewContactSubmission(&models.ContactInquiry{
		FullName: "Jane Doe",
		Email:    "jane@x.com",
		Phone:    &phone,
		Company:  &company,
		Message:  "Hello",
	})
}

func applicationSubmission() models.Submission {
	exp := "5 years of Go"
	return models.NewApplicationSubmission(&models.JobApplication{
		FullName:    "John Roe",
		Email:       "john@x.com",
		PhoneNumber: "+1 555 0101",
		Position:    "Backend Engineer",
		Experience:  &exp,
	})
}

func testIdentity() CompanyIdentity {
	return CompanyIdentity{
		CompanyName: "Northbeam Solutions",
		Email:       "info@northbeam.io",
		Phone:       "+1 (555) 014-2200",
		Website:     "https://northbeam.io",
	}
}

func TestResolveIdentity_NilUsesDefaults(t *testing.T) {
	id := ResolveIdentity(nil)
	assert.Equal(t, defaultCompanyName, id.CompanyName)
	assert.Equal(t, defaultEmail, id.Email)
	assert.Equal(t, defaultPhone, id.Phone)
	assert.Equal(t, defaultWebsite, id.Website)
}

func TestResolveIdentity_PerFieldFallback(t *testing.T) {
	id := ResolveIdentity(&models.CompanyInfo{
		Name:  "Acme",
		Email: "",
		Phone: "+49 30 1234",
	})

	assert.Equal(t, "Acme", id.CompanyName)
	assert.Equal(t, defaultEmail, id.Email)
	assert.Equal(t, "+49 30 1234", id.Phone)
	assert.Equal(t, defaultWebsite, id.Website)
}

func TestComposeNotification_EnumeratesAllFields(t *testing.T) {
	msg := ComposeNotification(contactSubmission(), testIdentity(), "ops@northbeam.io")

	assert.Equal(t, "ops@northbeam.io", msg.To)
	assert.Equal(t, "New contact inquiry from Jane Doe", msg.Subject)
	for _, want := range []string{"Jane Doe", "jane@x.com", "+1 555 0100", "Acme GmbH", "Hello"} {
		assert.Contains(t, msg.HTMLBody, want)
	}
}

func TestComposeNotification_MissingOptionalFields(t *testing.T) {
	sub := models.NewContactSubmission(&models.ContactInquiry{
		FullName: "Jane Doe",
		Email:    "jane@x.com",
		Message:  "Hello",
	})

	msg := ComposeNotification(sub, testIdentity(), "ops@northbeam.io")
	assert.Contains(t, msg.HTMLBody, notProvided)
}

func TestComposeNotification_JobApplication(t *testing.T) {
	msg := ComposeNotification(applicationSubmission(), testIdentity(), "ops@northbeam.io")

	assert.Equal(t, "New job application from John Roe", msg.Subject)
	for _, want := range []string{"John Roe", "Backend Engineer", "5 years of Go", "+1 555 0101"} {
		assert.Contains(t, msg.HTMLBody, want)
	}
}

func TestComposeNotification_Idempotent(t *testing.T) {
	sub := contactSubmission()
	id := testIdentity()

	first := ComposeNotification(sub, id, "ops@northbeam.io")
	second := ComposeNotification(sub, id, "ops@northbeam.io")

	assert.Equal(t, first, second)
}

func TestComposeAutoReply_Contact(t *testing.T) {
	msg, err := ComposeAutoReply(contactSubmission(), testIdentity())
	require.NoError(t, err)

	assert.Equal(t, "jane@x.com", msg.To)
	assert.Equal(t, "Thank you for contacting Northbeam Solutions", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "Jane Doe")
	assert.Contains(t, msg.HTMLBody, "info@northbeam.io")
	assert.Contains(t, msg.HTMLBody, "https://northbeam.io")
}

func TestComposeAutoReply_NeverEchoesMessage(t *testing.T) {
	sub := models.NewContactSubmission(&models.ContactInquiry{
		FullName: "Jane Doe",
		Email:    "jane@x.com",
		Message:  "SENSITIVE-PAYLOAD-NOT-FOR-ECHO",
	})

	msg, err := ComposeAutoReply(sub, testIdentity())
	require.NoError(t, err)
	assert.NotContains(t, msg.HTMLBody, "SENSITIVE-PAYLOAD-NOT-FOR-ECHO")
}

func TestComposeAutoReply_Application(t *testing.T) {
	msg, err := ComposeAutoReply(applicationSubmission(), testIdentity())
	require.NoError(t, err)

	assert.Equal(t, "Your application to Northbeam Solutions", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "Backend Engineer")
}

func TestComposeAutoReply_InvalidEmail(t *testing.T) {
	sub := models.NewContactSubmission(&models.ContactInquiry{
		FullName: "Jane Doe",
		Email:    "not-an-email",
		Message:  "Hello",
	})

	_, err := ComposeAutoReply(sub, testIdentity())
	assert.ErrorIs(t, err, ErrInvalidRecipient)

	// the notification path is unaffected
	msg := ComposeNotification(sub, testIdentity(), "ops@northbeam.io")
	assert.Contains(t, msg.HTMLBody, "not-an-email")
}

func TestComposeBodiesAreEscaped(t *testing.T) {
	sub := models.NewContactSubmission(&models.ContactInquiry{
		FullName: "<script>alert(1)</script>",
		Email:    "jane@x.com",
		Message:  "Hello",
	})

	msg := ComposeNotification(sub, testIdentity(), "ops@northbeam.io")
	assert.False(t, strings.Contains(msg.HTMLBody, "<script>"))
}
