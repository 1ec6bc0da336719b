// Package contract defines the wire format of the mailer channel. The
// account service publishes batches of MailReq; the mailer consumer decodes
// them. One broker message carries a JSON array of MailReq.
package contract

// MailReq is a single outbound email.
type MailReq struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
