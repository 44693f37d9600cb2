package mailer

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"decorcms-backend/internal/models"
)

// Sender dispatches a single email and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, from, to, subject, htmlBody string) (string, error)
}

// Notifier sends enquiry notifications to the site owner. Dispatch is
// fire-and-forget relative to the HTTP response: failures are logged and
// never retried.
type Notifier struct {
	sender Sender
	from   string
	logger *slog.Logger
}

func NewNotifier(sender Sender, from string, logger *slog.Logger) *Notifier {
	return &Notifier{
		sender: sender,
		from:   from,
		logger: logger,
	}
}

func (n *Notifier) EnquiryReceived(ctx context.Context, to string, enquiry *models.Enquiry) {
	subject := fmt.Sprintf("New Enquiry: %s - %s", enquiry.EventType, enquiry.Name)

	id, err := n.sender.Send(ctx, n.from, to, subject, enquiryHTML(enquiry))
	if err != nil {
		n.logger.Error("failed to send enquiry notification", "enquiry_id", enquiry.EnquiryID, "error", err)
		return
	}
	n.logger.Info("enquiry notification sent", "enquiry_id", enquiry.EnquiryID, "to", to, "id", id)
}

func enquiryHTML(e *models.Enquiry) string {
	esc := html.EscapeString
	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <h2 style="color: #C5A059;">New Enquiry Received</h2>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Phone:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Event Type:</strong> %s</p>
    <p><strong>Event Date:</strong> %s</p>
    <p><strong>Location:</strong> %s</p>
    <p><strong>Message:</strong></p>
    <p style="background: #f9f9f9; padding: 15px; border-left: 4px solid #C5A059;">%s</p>
    <p style="margin-top: 30px; color: #888; font-size: 12px;">This is an automated notification from your website.</p>
</body>
</html>`,
		esc(e.Name), esc(e.Phone), esc(e.Email), esc(e.EventType),
		esc(e.EventDate), esc(e.Location), esc(e.Message))
}
