package relay

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/aymerick/raymond"
	"github.com/mailgun/mailgun-go/v4"

	"github.com/northbeam-capital/website/pkg/logger"
)

//go:embed templates/contact.txt.hbs
var contactTextTemplate string

const subjectTemplate = `New {{#if form_type}}{{{form_type}}} {{/if}}enquiry from {{{name}}}`

// MailgunConfig configures the Mailgun relay
type MailgunConfig struct {
	Domain    string
	APIKey    string
	APIBase   string
	FromEmail string
	FromName  string
	// Inbox receives every relayed message
	Inbox   string
	Timeout time.Duration
}

// Mailgun relays payloads as plain-text emails sent to the contact inbox.
//
// A non-empty Destination.ServiceID selects the Mailgun sending domain, falling
// back to the configured domain. A non-empty Destination.TemplateID selects a
// Mailgun stored template; the payload is attached as template variables.
type Mailgun struct {
	cfg     MailgunConfig
	log     *slog.Logger
	subject *raymond.Template
	body    *raymond.Template

	mu      sync.Mutex
	clients map[string]*mailgun.MailgunImpl
}

// NewMailgun creates a Mailgun relay
func NewMailgun(cfg MailgunConfig, log *slog.Logger) (*Mailgun, error) {
	subject, err := raymond.Parse(subjectTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse subject template: %w", err)
	}
	body, err := raymond.Parse(contactTextTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse body template: %w", err)
	}

	return &Mailgun{
		cfg:     cfg,
		log:     log.With(logger.Scope("relay.mailgun")),
		subject: subject,
		body:    body,
		clients: make(map[string]*mailgun.MailgunImpl),
	}, nil
}

// Send renders and sends the payload
func (r *Mailgun) Send(ctx context.Context, dest Destination, payload Payload) error {
	subject, text, err := r.render(payload)
	if err != nil {
		return &Error{Provider: "mailgun", Err: err}
	}

	domain := dest.ServiceID
	if domain == "" {
		domain = r.cfg.Domain
	}
	client := r.client(domain)

	from := fmt.Sprintf("%s <%s>", r.cfg.FromName, r.cfg.FromEmail)
	message := client.NewMessage(from, subject, text, r.cfg.Inbox)
	if replyTo := payload["reply_to"]; replyTo != "" {
		message.SetReplyTo(replyTo)
	}
	if dest.TemplateID != "" {
		message.SetTemplate(dest.TemplateID)
		for _, k := range payload.Keys() {
			if err := message.AddTemplateVariable(k, payload[k]); err != nil {
				return &Error{Provider: "mailgun", Err: err}
			}
		}
	}

	_, messageID, err := client.Send(ctx, message)
	if err != nil {
		r.log.Error("failed to send contact email",
			slog.String("domain", domain),
			logger.Error(err))
		return &Error{Provider: "mailgun", Err: err}
	}

	r.log.Info("contact email sent",
		slog.String("domain", domain),
		slog.String("message_id", messageID))
	return nil
}

func (r *Mailgun) render(payload Payload) (string, string, error) {
	subject, err := r.subject.Exec(map[string]string(payload))
	if err != nil {
		return "", "", fmt.Errorf("render subject: %w", err)
	}

	fields := make([]map[string]string, 0, len(payload))
	for _, k := range payload.Keys() {
		fields = append(fields, map[string]string{"key": k, "value": payload[k]})
	}

	text, err := r.body.Exec(map[string]any{
		"subject": subject,
		"fields":  fields,
	})
	if err != nil {
		return "", "", fmt.Errorf("render body: %w", err)
	}
	return subject, text, nil
}

func (r *Mailgun) client(domain string) *mailgun.MailgunImpl {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.clients[domain]; ok {
		return c
	}

	c := mailgun.NewMailgun(domain, r.cfg.APIKey)
	if r.cfg.APIBase != "" {
		c.SetAPIBase(r.cfg.APIBase)
	}
	if r.cfg.Timeout > 0 {
		c.SetClient(&http.Client{Timeout: r.cfg.Timeout})
	}
	r.clients[domain] = c
	return c
}
