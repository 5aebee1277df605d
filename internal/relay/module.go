package relay

import (
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/northbeam-capital/website/internal/config"
)

// Module provides the configured Relay
var Module = fx.Module("relay",
	fx.Provide(NewRelay),
)

// NewRelay creates the relay selected by RELAY_PROVIDER, instrumented with metrics
func NewRelay(cfg *config.Config, log *slog.Logger) (Relay, error) {
	rc := cfg.Relay

	switch rc.Provider {
	case config.ProviderEmailJS:
		log.Info("using EmailJS relay", slog.String("base_url", rc.EmailJS.BaseURL))
		return Instrument(NewEmailJS(EmailJSConfig{
			BaseURL:    rc.EmailJS.BaseURL,
			PublicKey:  rc.EmailJS.PublicKey,
			PrivateKey: rc.EmailJS.PrivateKey,
			Timeout:    rc.Timeout,
		}, log), config.ProviderEmailJS), nil

	case config.ProviderMailgun:
		mg, err := NewMailgun(MailgunConfig{
			Domain:    rc.Mailgun.Domain,
			APIKey:    rc.Mailgun.APIKey,
			APIBase:   rc.Mailgun.APIBase,
			FromEmail: rc.Mailgun.FromEmail,
			FromName:  rc.Mailgun.FromName,
			Inbox:     rc.Mailgun.Inbox,
			Timeout:   rc.Timeout,
		}, log)
		if err != nil {
			return nil, fmt.Errorf("create mailgun relay: %w", err)
		}
		log.Info("using Mailgun relay",
			slog.String("domain", rc.Mailgun.Domain),
			slog.String("inbox", rc.Mailgun.Inbox))
		return Instrument(mg, config.ProviderMailgun), nil

	default:
		log.Info("using no-op relay (RELAY_PROVIDER not set)")
		return Instrument(NewNoop(log), config.ProviderNoop), nil
	}
}

// Destinations returns the dropdown and page-level destinations from config
func Destinations(cfg *config.Config) (dropdown, page Destination) {
	dropdown = Destination{ServiceID: cfg.Relay.Dropdown.ServiceID, TemplateID: cfg.Relay.Dropdown.TemplateID}
	page = Destination{ServiceID: cfg.Relay.Page.ServiceID, TemplateID: cfg.Relay.Page.TemplateID}
	return dropdown, page
}
