package relay

import (
	"context"
	"log/slog"

	"github.com/northbeam-capital/website/pkg/logger"
)

// Noop accepts every payload and only logs it. Used when no provider is configured.
type Noop struct {
	log *slog.Logger
}

// NewNoop creates a no-op relay
func NewNoop(log *slog.Logger) *Noop {
	return &Noop{log: log.With(logger.Scope("relay.noop"))}
}

func (r *Noop) Send(ctx context.Context, dest Destination, payload Payload) error {
	r.log.Info("contact submission (no-op relay)",
		slog.String("service_id", dest.ServiceID),
		slog.String("template_id", dest.TemplateID),
		slog.String("reply_to", payload["reply_to"]),
		slog.Int("fields", len(payload)))
	return nil
}
