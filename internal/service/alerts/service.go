// Package alerts delivers operator notifications over WhatsApp. The feature
// is optional: with no client configured the service swallows sends.
package alerts

import (
	"context"

	"go.uber.org/zap"

	"github.com/mbodj/clinivet/pkg/clients/whatsapp"
)

// Notifier pushes a message to the clinic owner.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Service implements Notifier over the WhatsApp client.
type Service struct {
	client     whatsapp.Client
	ownerPhone string
	logger     *zap.Logger
}

// NewService wires an alert service. client may be nil to disable delivery.
func NewService(client whatsapp.Client, ownerPhone string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, ownerPhone: ownerPhone, logger: logger}
}

// Notify sends the message to the owner's phone, or drops it when alerting
// is disabled.
func (s *Service) Notify(ctx context.Context, message string) error {
	if s.client == nil || s.ownerPhone == "" {
		s.logger.Debug("alerts disabled, dropping message")
		return nil
	}

	if err := s.client.SendText(ctx, s.ownerPhone, message); err != nil {
		return err
	}
	s.logger.Info("alert delivered", zap.Int("length", len(message)))
	return nil
}
