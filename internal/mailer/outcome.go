// Package mailer turns form submissions into outbound transactional
// email: an operator notification and a submitter auto-reply, sent as
// independent best-effort attempts over the Brevo SMTP relay.
package mailer

// Channel names used in dispatch error reporting.
const (
	ChannelConfig       = "config"
	ChannelNotification = "notification"
	ChannelAutoReply    = "auto_reply"
)

// ChannelError records a failure on one channel of a dispatch.
type ChannelError struct {
	Channel string `json:"channel"`
	Message string `json:"message"`
}

// Outcome is the aggregate result of one dispatch call. It is built
// once per call and never mutated after return.
type Outcome struct {
	NotificationSent bool
	AutoReplySent    bool
	EmailsSent       bool
	Errors           []ChannelError
}

func (o *Outcome) recordError(channel, message string) {
	o.Errors = append(o.Errors, ChannelError{Channel: channel, Message: message})
}
