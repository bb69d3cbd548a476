package mailer

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/northbeam/corporate-site/internal/logger"
)

// ErrorKind classifies transport failures for admin diagnostics.
type ErrorKind string

// ErrorKind values mapped from the SMTP transport's native errors.
const (
	AuthenticationFailed ErrorKind = "AUTHENTICATION_FAILED"
	NetworkUnreachable   ErrorKind = "NETWORK_UNREACHABLE"
	Timeout              ErrorKind = "TIMEOUT"
)

// ConnectionError is a classified transport failure.
type ConnectionError struct {
	Kind   ErrorKind
	Detail string
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Message is a composed outbound email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// MessageSender sends one composed message with the given effective
// configuration. Implemented by SMTPTransport; mocked in tests.
type MessageSender interface {
	Send(cfg *ProviderConfig, msg Message) error
}

// SMTPTransport delivers messages over the Brevo SMTP relay. A fresh
// connection is opened and closed per call; there is no pooling and no
// retry, a dead relay marks the channel failed for this dispatch only.
type SMTPTransport struct {
	log *logger.Logger
}

// NewSMTPTransport creates the SMTP transport.
func NewSMTPTransport() *SMTPTransport {
	return &SMTPTransport{log: logger.Get()}
}

func dialer(cfg *ProviderConfig) *gomail.Dialer {
	return gomail.NewDialer(cfg.Host, cfg.Port, cfg.SMTPLogin, cfg.SMTPKey)
}

// Send delivers one message. Exactly one attempt; classification of the
// failure is left to the caller's error recording.
func (t *SMTPTransport) Send(cfg *ProviderConfig, msg Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", cfg.SenderEmail, cfg.SenderName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	if err := dialer(cfg).DialAndSend(m); err != nil {
		cerr := classify(err)
		t.log.Warn().
			Str("kind", string(cerr.Kind)).
			Str("host", cfg.Host).
			Msg("smtp send failed")
		return cerr
	}

	t.log.Info().
		Str("host", cfg.Host).
		Str("subject", msg.Subject).
		Msg("mail sent")
	return nil
}

// Verify opens a transport session and performs the authentication
// handshake without sending a message. It backs the admin
// test-connection action and must stay off the submission hot path.
func (t *SMTPTransport) Verify(cfg *ProviderConfig) error {
	sc, err := dialer(cfg).Dial()
	if err != nil {
		return classify(err)
	}
	return sc.Close()
}

// classify maps a raw transport error onto the error taxonomy. SMTP
// 535 and auth-phase failures count as credential problems; net-level
// timeouts are reported as such; everything else is unreachability.
func classify(err error) *ConnectionError {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return &ConnectionError{Kind: Timeout, Detail: err.Error()}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "535") ||
		strings.Contains(msg, "authentication failed") ||
		strings.Contains(msg, "invalid login") ||
		strings.Contains(msg, "username and password not accepted") {
		return &ConnectionError{Kind: AuthenticationFailed, Detail: err.Error()}
	}

	return &ConnectionError{Kind: NetworkUnreachable, Detail: err.Error()}
}
