package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Relay providers
const (
	ProviderNoop    = "noop"
	ProviderEmailJS = "emailjs"
	ProviderMailgun = "mailgun"
)

// Config holds all website configuration
type Config struct {
	// Server settings
	Port        int    `env:"WEBSITE_PORT" envDefault:"4002" validate:"min=1,max=65535"`
	Address     string `env:"WEBSITE_ADDRESS" envDefault:"0.0.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Session SessionConfig
	Relay   RelayConfig
}

// SessionConfig controls the per-visitor state store
type SessionConfig struct {
	// TTL is how long an idle visitor keeps its component state
	TTL        time.Duration `env:"SESSION_TTL" envDefault:"30m" validate:"gt=0"`
	CookieName string        `env:"SESSION_COOKIE" envDefault:"nb_session" validate:"required"`
	// Secure marks the cookie Secure; always on in production
	Secure bool `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

// RelayConfig selects and configures the email relay used by the contact forms
type RelayConfig struct {
	Provider string        `env:"RELAY_PROVIDER" envDefault:"noop" validate:"oneof=noop emailjs mailgun"`
	Timeout  time.Duration `env:"RELAY_TIMEOUT" envDefault:"15s" validate:"gt=0"`

	EmailJS EmailJSConfig
	Mailgun MailgunConfig

	// Dropdown is the destination of both header dropdown variants
	Dropdown DestinationConfig `envPrefix:"DROPDOWN_"`
	// Page is the destination of the page-level contact form
	Page DestinationConfig `envPrefix:"PAGE_"`
}

// EmailJSConfig holds credentials for the EmailJS REST API
type EmailJSConfig struct {
	BaseURL    string `env:"EMAILJS_BASE_URL" envDefault:"https://api.emailjs.com" validate:"required,url"`
	PublicKey  string `env:"EMAILJS_PUBLIC_KEY" validate:"required_if=Enabled true"`
	PrivateKey string `env:"EMAILJS_PRIVATE_KEY"`

	Enabled bool
}

// MailgunConfig holds Mailgun settings
type MailgunConfig struct {
	Domain    string `env:"MAILGUN_DOMAIN" validate:"required_if=Enabled true"`
	APIKey    string `env:"MAILGUN_API_KEY" validate:"required_if=Enabled true"`
	APIBase   string `env:"MAILGUN_API_BASE" validate:"omitempty,url"`
	FromEmail string `env:"EMAIL_FROM_ADDRESS" envDefault:"website@northbeam.example" validate:"required,email"`
	FromName  string `env:"EMAIL_FROM_NAME" envDefault:"Northbeam Website"`
	// Inbox receives every contact submission
	Inbox string `env:"CONTACT_INBOX" envDefault:"hello@northbeam.example" validate:"required,email"`

	Enabled bool
}

// DestinationConfig names a relay service and template pair
type DestinationConfig struct {
	ServiceID  string `env:"SERVICE_ID"`
	TemplateID string `env:"TEMPLATE_ID"`
}

// IsConfigured returns true if Mailgun credentials are present
func (m *MailgunConfig) IsConfigured() bool {
	return m.Domain != "" && m.APIKey != ""
}

// IsProduction reports whether the site runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ListenAddr returns the host:port the HTTP server binds to
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}

// Validate checks the configuration for the selected relay provider
func (c *Config) Validate() error {
	c.Relay.EmailJS.Enabled = c.Relay.Provider == ProviderEmailJS
	c.Relay.Mailgun.Enabled = c.Relay.Provider == ProviderMailgun

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load parses configuration from the environment without logging
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.IsProduction() {
		cfg.Session.Secure = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
		slog.String("relay_provider", cfg.Relay.Provider),
		slog.Duration("session_ttl", cfg.Session.TTL),
	)

	return cfg, nil
}
