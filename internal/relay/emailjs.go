package relay

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/northbeam-capital/website/pkg/logger"
)

const emailJSSendPath = "/api/v1.0/email/send"

// EmailJSConfig configures the EmailJS REST relay
type EmailJSConfig struct {
	BaseURL    string
	PublicKey  string
	PrivateKey string
	Timeout    time.Duration
}

// EmailJS relays payloads through the EmailJS REST API.
// The destination's service and template ids are passed through unchanged.
type EmailJS struct {
	cfg    EmailJSConfig
	client *resty.Client
	log    *slog.Logger
}

type emailJSRequest struct {
	ServiceID      string  `json:"service_id"`
	TemplateID     string  `json:"template_id"`
	UserID         string  `json:"user_id"`
	AccessToken    string  `json:"accessToken,omitempty"`
	TemplateParams Payload `json:"template_params"`
}

// NewEmailJS creates an EmailJS relay
func NewEmailJS(cfg EmailJSConfig, log *slog.Logger) *EmailJS {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &EmailJS{
		cfg:    cfg,
		client: client,
		log:    log.With(logger.Scope("relay.emailjs")),
	}
}

// Send posts the payload to EmailJS
func (r *EmailJS) Send(ctx context.Context, dest Destination, payload Payload) error {
	body := emailJSRequest{
		ServiceID:      dest.ServiceID,
		TemplateID:     dest.TemplateID,
		UserID:         r.cfg.PublicKey,
		AccessToken:    r.cfg.PrivateKey,
		TemplateParams: payload,
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(emailJSSendPath)
	if err != nil {
		r.log.Error("emailjs request failed",
			slog.String("service_id", dest.ServiceID),
			logger.Error(err))
		return &Error{Provider: "emailjs", Err: err}
	}

	if resp.IsError() {
		r.log.Warn("emailjs rejected message",
			slog.String("service_id", dest.ServiceID),
			slog.String("template_id", dest.TemplateID),
			slog.Int("status", resp.StatusCode()))
		return &Error{
			Provider:   "emailjs",
			StatusCode: resp.StatusCode(),
			Body:       strings.TrimSpace(resp.String()),
		}
	}

	r.log.Info("emailjs accepted message",
		slog.String("service_id", dest.ServiceID),
		slog.String("template_id", dest.TemplateID))
	return nil
}
