package notify

import (
	"context"

	"github.com/dmitrijs2005/studentteacher/internal/logging"
)

// LogNotifier writes messages to the log instead of sending them. Used when
// no mail provider is configured.
type LogNotifier struct {
	log logging.Logger
}

func NewLogNotifier(log logging.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Send(ctx context.Context, msg Message) error {
	n.log.Info(ctx, "notification", "to", msg.To, "subject", msg.Subject, "body", msg.Body)
	return nil
}
