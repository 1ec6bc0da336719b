// Package notifier publishes mail requests to the shared mailer channel. The
// broker delivers at-least-once; the mailer consumer on the other side is a
// separate process and may see duplicates.
package notifier

import (
	"context"

	"github.com/ddmitrenko/tools/internal/mailer/contract"
)

// MailReq is the wire contract shared with the mailer consumer.
type MailReq = contract.MailReq

// Publisher sends a batch of mail requests to the fixed logical channel.
// One published message carries a JSON array of MailReq.
type Publisher interface {
	Publish(ctx context.Context, reqs []MailReq) error
}
