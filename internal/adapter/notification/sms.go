package notification

import (
	"context"

	"github.com/rs/zerolog"
)

// SMSNotifier sends account notices to a client's phone. The current
// implementation only records the message; a gateway integration plugs in
// behind the same method.
type SMSNotifier struct {
	logger zerolog.Logger
}

// NewSMSNotifier creates a new SMSNotifier.
func NewSMSNotifier(logger zerolog.Logger) *SMSNotifier {
	return &SMSNotifier{logger: logger}
}

// SendAccountNotice sends a short notice to the given phone number.
func (n *SMSNotifier) SendAccountNotice(ctx context.Context, phone, message string) error {
	n.logger.Info().
		Str("phone", phone).
		Str("message", message).
		Msg("sms notice sent")

	return nil
}
