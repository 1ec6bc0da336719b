package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ddmitrenko/tools/internal/account/notifier"
	"github.com/ddmitrenko/tools/internal/common"
)

// changeEmailStaged is the payload staged under change_email-{new_email}.
// The old email is captured at stage time; the commit updates whatever row
// still matches it.
type changeEmailStaged struct {
	OldEmail   string `json:"old_email"`
	NewEmail   string `json:"new_email"`
	VerifyCode string `json:"verify_code"`
}

// ChangeEmail stages an email change for the account the token resolves to
// and mails a verification code to the new address, proving the caller
// controls it.
func (s *Service) ChangeEmail(ctx context.Context, tokenString, newEmail string) error {
	id, err := s.tokens.Validate(tokenString)
	if err != nil {
		return err
	}

	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !validEmail(newEmail) {
		return common.ErrValidation
	}

	exists, err := s.accounts.ExistsByEmail(ctx, newEmail)
	if err != nil {
		return err
	}
	if exists {
		return common.ErrConflict
	}

	code := newVerifyCode()

	payload, err := json.Marshal(changeEmailStaged{
		OldEmail:   account.Email,
		NewEmail:   newEmail,
		VerifyCode: code,
	})
	if err != nil {
		return fmt.Errorf("%w: encoding staged email change: %v", common.ErrDependency, err)
	}

	if err := s.staging.Put(ctx, changeEmailKey(newEmail), payload, stagingTTL); err != nil {
		return err
	}

	return s.notifier.Publish(ctx, []notifier.MailReq{{
		To:      newEmail,
		Subject: "Confirm your new email address",
		Body:    fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, int(stagingTTL.Minutes())),
	}})
}

// VerifyChangeEmail consumes the staged change and moves the account to the
// new address. Both addresses are notified of the change.
func (s *Service) VerifyChangeEmail(ctx context.Context, newEmail, code string) error {
	raw, err := s.staging.Get(ctx, changeEmailKey(newEmail))
	if err != nil {
		return err
	}

	var staged changeEmailStaged
	if err := json.Unmarshal(raw, &staged); err != nil {
		return fmt.Errorf("%w: decoding staged email change: %v", common.ErrDependency, err)
	}

	if staged.VerifyCode != code {
		return common.ErrCodeMismatch
	}

	if err := s.staging.DeleteIfMatches(ctx, changeEmailKey(newEmail), raw); err != nil {
		return err
	}

	if err := s.accounts.UpdateEmail(ctx, staged.OldEmail, staged.NewEmail); err != nil {
		return err
	}

	s.logger.Info(ctx, "account email changed", "new_email", staged.NewEmail)

	s.notifyBestEffort(ctx, []notifier.MailReq{
		{
			To:      staged.OldEmail,
			Subject: "Your email address was changed",
			Body:    fmt.Sprintf("This account now uses %s. If this was not you, contact support.", staged.NewEmail),
		},
		{
			To:      staged.NewEmail,
			Subject: "Email address confirmed",
			Body:    "This address is now attached to your account.",
		},
	})

	return nil
}
