package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"varsha-travels/internal/models"
	"varsha-travels/pkg/logger"
	"varsha-travels/pkg/sms"
)

const alertMaxLength = 320

// Notifier texts the office when a booking or message arrives. A nil
// Notifier is valid and sends nothing.
type Notifier struct {
	provider   sms.SMSProvider
	recipients []string
	timeout    time.Duration
	logger     *logger.Logger
	wg         sync.WaitGroup
}

func NewNotifier(provider sms.SMSProvider, recipients []string, log *logger.Logger) *Notifier {
	if provider == nil || len(recipients) == 0 {
		return nil
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Notifier{
		provider:   provider,
		recipients: recipients,
		timeout:    15 * time.Second,
		logger:     log.WithField("sms_provider", provider.Name()),
	}
}

func (n *Notifier) BookingReceived(b *models.Booking) {
	if n == nil || b == nil {
		return
	}
	n.send(BookingAlert(b))
}

func (n *Notifier) MessageReceived(m *models.ContactMessage) {
	if n == nil || m == nil {
		return
	}
	n.send(MessageAlert(m))
}

// Wait blocks until queued alerts have been handed to the provider.
func (n *Notifier) Wait() {
	if n != nil {
		n.wg.Wait()
	}
}

func (n *Notifier) send(text string) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		responses, err := n.provider.SendBulkSMS(ctx, sms.Fanout(n.recipients, text))
		if err != nil {
			n.logger.WithError(err).Warn("failed to send sms alert")
			return
		}
		for _, resp := range responses {
			if resp.Error != "" {
				n.logger.WithFields(map[string]interface{}{
					"to":    resp.To,
					"error": resp.Error,
				}).Warn("sms alert not delivered")
			}
		}
	}()
}

func BookingAlert(b *models.Booking) string {
	return sms.Truncate(fmt.Sprintf(
		"New booking: %s (%s) %s by %s, %s to %s, %s pax",
		b.FullName, b.Phone, b.Destination, b.Vehicle, b.PickupDate, b.DropoffDate, b.Passengers,
	), alertMaxLength)
}

func MessageAlert(m *models.ContactMessage) string {
	return sms.Truncate(fmt.Sprintf("New message from %s <%s>: %s", m.Name, m.Email, m.Subject), alertMaxLength)
}
