package mailer

import (
	"context"
	"fmt"

	"github.com/ddmitrenko/tools/internal/mailer/config"
	"github.com/ddmitrenko/tools/internal/mailer/contract"
	"github.com/wneessen/go-mail"
)

// Sender delivers a single mail request.
type Sender interface {
	Send(ctx context.Context, req contract.MailReq) error
}

// SMTPSender sends mail through an authenticated SMTP relay.
type SMTPSender struct {
	client      *mail.Client
	senderName  string
	senderEmail string
}

func NewSMTPSender(cfg *config.Config) (*SMTPSender, error) {
	client, err := mail.NewClient(cfg.SMTPServer,
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUsername),
		mail.WithPassword(cfg.SMTPPassword),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client init: %w", err)
	}

	return &SMTPSender{
		client:      client,
		senderName:  cfg.SenderName,
		senderEmail: cfg.SenderEmail,
	}, nil
}

func (s *SMTPSender) Send(ctx context.Context, req contract.MailReq) error {
	msg := mail.NewMsg()

	if err := msg.FromFormat(s.senderName, s.senderEmail); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(req.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject(req.Subject)
	msg.SetBodyString(mail.TypeTextPlain, req.Body)

	return s.client.DialAndSendWithContext(ctx, msg)
}
