// Package mailer consumes mail requests from the shared channel and sends
// them over SMTP. Delivery is at-least-once: the offset is committed only
// after the whole batch is sent, so a crash mid-batch replays it.
package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ddmitrenko/tools/internal/logging"
	"github.com/ddmitrenko/tools/internal/mailer/contract"
	"github.com/segmentio/kafka-go"
)

// fetcher is the slice of kafka.Reader the consumer uses.
type fetcher interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Consumer struct {
	reader fetcher
	sender Sender
	logger logging.Logger
}

func NewConsumer(reader fetcher, sender Sender, logger logging.Logger) *Consumer {
	return &Consumer{
		reader: reader,
		sender: sender,
		logger: logger.With("module", "mailer_consumer"),
	}
}

// Run fetches and processes messages until ctx is cancelled. A message that
// fails to decode is committed and dropped (it would never succeed). A send
// failure stops the worker with the offset uncommitted: consumer-group
// commits are cumulative, so fetching past the failed batch and committing a
// later one would mark it consumed and lose it. Restarting the worker
// refetches from the last committed offset instead.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("fetching message: %w", err)
		}

		if err := c.process(ctx, msg.Value); err != nil {
			c.logger.Error(ctx, "processing message batch", "error", err)
			if !isDecodeError(err) {
				return err
			}
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error(ctx, "committing offset", "error", err)
		}
	}
}

type decodeError struct{ err error }

func (e *decodeError) Error() string { return "decoding mail batch: " + e.err.Error() }

func isDecodeError(err error) bool {
	var de *decodeError
	return errors.As(err, &de)
}

// process decodes one broker message and sends every mail in it.
func (c *Consumer) process(ctx context.Context, payload []byte) error {
	var reqs []contract.MailReq
	if err := json.Unmarshal(payload, &reqs); err != nil {
		return &decodeError{err: err}
	}

	for _, req := range reqs {
		if err := c.sender.Send(ctx, req); err != nil {
			return fmt.Errorf("sending mail to %s: %w", req.To, err)
		}
		c.logger.Info(ctx, "mail sent", "to", req.To, "subject", req.Subject)
	}

	return nil
}
