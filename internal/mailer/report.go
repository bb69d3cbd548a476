package mailer

import (
	"fmt"
	"strings"
)

// Response is the stable wire shape reported to API clients and admin
// diagnostics. Field names are part of the frontend contract.
type Response struct {
	EmailsSent       bool   `json:"emailsSent"`
	NotificationSent bool   `json:"notificationSent"`
	AutoReplySent    bool   `json:"autoReplySent"`
	ErrorSummary     string `json:"errorSummary,omitempty"`
}

// Report shapes an outcome into the wire response. The summary joins
// channel:message pairs for display; credentials never appear in
// channel errors, so nothing is filtered here.
func Report(out *Outcome) Response {
	resp := Response{
		EmailsSent:       out.EmailsSent,
		NotificationSent: out.NotificationSent,
		AutoReplySent:    out.AutoReplySent,
	}

	if len(out.Errors) > 0 {
		parts := make([]string, 0, len(out.Errors))
		for _, e := range out.Errors {
			parts = append(parts, fmt.Sprintf("%s: %s", e.Channel, e.Message))
		}
		resp.ErrorSummary = strings.Join(parts, "; ")
	}

	return resp
}
