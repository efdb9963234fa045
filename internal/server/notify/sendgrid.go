package notify

import (
	"context"
	"fmt"
	"html"

	"github.com/dmitrijs2005/studentteacher/internal/common"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridNotifier sends plain-text mail through the SendGrid v3 API.
type SendGridNotifier struct {
	client mailSender
	from   *mail.Email
}

func NewSendGridNotifier(apiKey, from string) *SendGridNotifier {
	return &SendGridNotifier{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail("Student/Teacher", from),
	}
}

func (n *SendGridNotifier) Send(ctx context.Context, msg Message) error {
	m := mail.NewSingleEmail(n.from, msg.Subject, mail.NewEmail("", msg.To), msg.Body, "<p>"+html.EscapeString(msg.Body)+"</p>")

	resp, err := n.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrDelivery, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: sendgrid status %d: %s", common.ErrDelivery, resp.StatusCode, resp.Body)
	}
	return nil
}
