// Package notify delivers one-time codes to users out of band.
package notify

import (
	"context"
	"fmt"
)

// Message is a plain-text notification addressed to an email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Notifier delivers a Message. Failures wrap common.ErrDelivery.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// CodeMessage builds the notification carrying a one-time code.
func CodeMessage(to, subject string, code int) Message {
	return Message{
		To:      to,
		Subject: subject,
		Body:    fmt.Sprintf("Your code: %d", code),
	}
}
