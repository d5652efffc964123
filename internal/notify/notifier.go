// Package notify carries the portal's simulated email notifications.
// Real delivery is out of scope; the log notifier just records what
// would have been sent.
package notify

import (
	"context"
	"log"
)

type Message struct {
	Recipient string // email address
	Subject   string
	Body      string
}

type Notifier interface {
	Send(ctx context.Context, msgs ...Message) error
}

type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) Send(_ context.Context, msgs ...Message) error {
	for _, m := range msgs {
		log.Printf("notify: email would be sent to %s: %s: %s", m.Recipient, m.Subject, m.Body)
	}
	return nil
}
