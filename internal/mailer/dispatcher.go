package mailer

import (
	"context"
	"errors"

	"github.com/northbeam/corporate-site/internal/logger"
	"github.com/northbeam/corporate-site/internal/models"
)

// ConfigResolver yields the effective provider configuration for one
// dispatch call.
type ConfigResolver interface {
	Resolve(ctx context.Context) (*ProviderConfig, error)
}

// CompanySource reads the stored company identity.
type CompanySource interface {
	GetCompanyInfo(ctx context.Context) (*models.CompanyInfo, error)
}

// Dispatcher orchestrates one end-to-end delivery attempt per
// submission: operator notification plus submitter auto-reply, as
// independent channels with exactly one send attempt each.
type Dispatcher struct {
	resolver  ConfigResolver
	company   CompanySource
	transport MessageSender
	log       *logger.Logger
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(resolver ConfigResolver, company CompanySource, transport MessageSender) *Dispatcher {
	return &Dispatcher{
		resolver:  resolver,
		company:   company,
		transport: transport,
		log:       logger.Get(),
	}
}

// Dispatch attempts both channels for the submission and aggregates the
// result. Transport and composer failures are recorded, never
// propagated: a failed email must not fail the enclosing request once
// the submission is persisted.
func (d *Dispatcher) Dispatch(ctx context.Context, sub models.Submission) *Outcome {
	out := &Outcome{}

	cfg, err := d.resolver.Resolve(ctx)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			d.log.Debug().Msg("mail provider not configured, skipping dispatch")
			out.recordError(ChannelConfig, "not configured")
		} else {
			d.log.Error().Err(err).Msg("resolve mail provider config")
			out.recordError(ChannelConfig, err.Error())
		}
		return out
	}

	info, err := d.company.GetCompanyInfo(ctx)
	if err != nil {
		// identity fallbacks cover a missing row; a read error is no worse
		d.log.Warn().Err(err).Msg("read company info, using identity fallbacks")
		info = nil
	}
	identity := ResolveIdentity(info)

	notification := ComposeNotification(sub, identity, cfg.NotifyEmail)
	if err := d.transport.Send(cfg, notification); err != nil {
		out.recordError(ChannelNotification, err.Error())
	} else {
		out.NotificationSent = true
	}

	// independent of the notification outcome
	reply, err := ComposeAutoReply(sub, identity)
	if err != nil {
		out.recordError(ChannelAutoReply, err.Error())
	} else if err := d.transport.Send(cfg, reply); err != nil {
		out.recordError(ChannelAutoReply, err.Error())
	} else {
		out.AutoReplySent = true
	}

	out.EmailsSent = out.NotificationSent || out.AutoReplySent

	d.log.Info().
		Str("kind", string(sub.Kind)).
		Str("source", string(cfg.Source)).
		Bool("notification_sent", out.NotificationSent).
		Bool("auto_reply_sent", out.AutoReplySent).
		Msg("dispatch completed")

	return out
}
