package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4002, cfg.Port)
	assert.Equal(t, "0.0.0.0:4002", cfg.ListenAddr())
	assert.Equal(t, ProviderNoop, cfg.Relay.Provider)
	assert.Equal(t, 15*time.Second, cfg.Relay.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "nb_session", cfg.Session.CookieName)
	assert.False(t, cfg.Session.Secure)
	assert.Equal(t, "https://api.emailjs.com", cfg.Relay.EmailJS.BaseURL)
}

func TestLoad_Destinations(t *testing.T) {
	t.Setenv("DROPDOWN_SERVICE_ID", "service_dropdown")
	t.Setenv("DROPDOWN_TEMPLATE_ID", "template_dropdown")
	t.Setenv("PAGE_SERVICE_ID", "service_page")
	t.Setenv("PAGE_TEMPLATE_ID", "template_page")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DestinationConfig{ServiceID: "service_dropdown", TemplateID: "template_dropdown"}, cfg.Relay.Dropdown)
	assert.Equal(t, DestinationConfig{ServiceID: "service_page", TemplateID: "template_page"}, cfg.Relay.Page)
}

func TestLoad_ProductionForcesSecureCookie(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.Session.Secure)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name: "noop needs nothing",
			env:  map[string]string{"RELAY_PROVIDER": "noop"},
		},
		{
			name:    "unknown provider",
			env:     map[string]string{"RELAY_PROVIDER": "smtp"},
			wantErr: true,
		},
		{
			name:    "emailjs without public key",
			env:     map[string]string{"RELAY_PROVIDER": "emailjs"},
			wantErr: true,
		},
		{
			name: "emailjs with public key",
			env:  map[string]string{"RELAY_PROVIDER": "emailjs", "EMAILJS_PUBLIC_KEY": "pk_123"},
		},
		{
			name:    "mailgun without credentials",
			env:     map[string]string{"RELAY_PROVIDER": "mailgun"},
			wantErr: true,
		},
		{
			name: "mailgun configured",
			env: map[string]string{
				"RELAY_PROVIDER":  "mailgun",
				"MAILGUN_DOMAIN":  "mg.northbeam.example",
				"MAILGUN_API_KEY": "key-abc123",
			},
		},
		{
			name: "mailgun with bad inbox",
			env: map[string]string{
				"RELAY_PROVIDER":  "mailgun",
				"MAILGUN_DOMAIN":  "mg.northbeam.example",
				"MAILGUN_API_KEY": "key-abc123",
				"CONTACT_INBOX":   "not-an-email",
			},
			wantErr: true,
		},
		{
			name:    "port out of range",
			env:     map[string]string{"WEBSITE_PORT": "70000"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMailgunConfig_IsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		cfg      MailgunConfig
		expected bool
	}{
		{"both present", MailgunConfig{Domain: "mg.example.com", APIKey: "key"}, true},
		{"missing domain", MailgunConfig{APIKey: "key"}, false},
		{"missing key", MailgunConfig{Domain: "mg.example.com"}, false},
		{"empty", MailgunConfig{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.IsConfigured())
		})
	}
}
