package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ddmitrenko/tools/internal/account/notifier"
	"github.com/ddmitrenko/tools/internal/common"
)

// resetStaged is the payload staged under reset_password-{email}. Only the
// code is staged; the new password arrives with the final ResetPassword call.
type resetStaged struct {
	VerifyCode string `json:"verify_code"`
}

// ChangePassword replaces the password of the account the token resolves to.
// It is not verification-gated: the old password is the proof of identity and
// the change is immediate. A notify failure fails the request even though the
// new hash is already committed.
func (s *Service) ChangePassword(ctx context.Context, tokenString, oldPass, newPass string) error {
	id, err := s.tokens.Validate(tokenString)
	if err != nil {
		return err
	}

	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return err
	}

	ok, err := s.hasher.Verify(oldPass, account.PasswordHash)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrAuth
	}

	if newPass == "" {
		return common.ErrValidation
	}

	hash, err := s.hasher.Hash(newPass)
	if err != nil {
		return err
	}

	if err := s.accounts.UpdatePassword(ctx, id, hash); err != nil {
		return err
	}

	return s.notifier.Publish(ctx, []notifier.MailReq{{
		To:      account.Email,
		Subject: "Your password was changed",
		Body:    "If this was not you, reset your password immediately.",
	}})
}

// RequestResetPassword stages a reset code for a registered email and mails
// it out.
func (s *Service) RequestResetPassword(ctx context.Context, email string) error {
	exists, err := s.accounts.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !exists {
		return common.ErrNotFound
	}

	code := newVerifyCode()

	payload, err := json.Marshal(resetStaged{VerifyCode: code})
	if err != nil {
		return fmt.Errorf("%w: encoding staged reset: %v", common.ErrDependency, err)
	}

	if err := s.staging.Put(ctx, resetPasswordKey(email), payload, stagingTTL); err != nil {
		return err
	}

	return s.notifier.Publish(ctx, []notifier.MailReq{{
		To:      email,
		Subject: "Password reset code",
		Body:    fmt.Sprintf("Your password reset code is %s. It expires in %d minutes.", code, int(stagingTTL.Minutes())),
	}})
}

// VerifyRequestResetPassword checks the staged code without consuming it, so
// a client can confirm the code before asking the user for a new password.
func (s *Service) VerifyRequestResetPassword(ctx context.Context, email, code string) error {
	staged, _, err := s.getStagedReset(ctx, email)
	if err != nil {
		return err
	}

	if staged.VerifyCode != code {
		return common.ErrCodeMismatch
	}

	return nil
}

// ResetPassword consumes the staged code and commits the new password hash.
func (s *Service) ResetPassword(ctx context.Context, email, code, newPass string) error {
	staged, raw, err := s.getStagedReset(ctx, email)
	if err != nil {
		return err
	}

	if staged.VerifyCode != code {
		return common.ErrCodeMismatch
	}

	if newPass == "" {
		return common.ErrValidation
	}

	if err := s.staging.DeleteIfMatches(ctx, resetPasswordKey(email), raw); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPass)
	if err != nil {
		return err
	}

	if err := s.accounts.UpdatePasswordByEmail(ctx, email, hash); err != nil {
		return err
	}

	s.logger.Info(ctx, "password reset committed")

	s.notifyBestEffort(ctx, []notifier.MailReq{{
		To:      email,
		Subject: "Your password was reset",
		Body:    "If this was not you, contact support immediately.",
	}})

	return nil
}

func (s *Service) getStagedReset(ctx context.Context, email string) (*resetStaged, []byte, error) {
	raw, err := s.staging.Get(ctx, resetPasswordKey(email))
	if err != nil {
		return nil, nil, err
	}

	staged := &resetStaged{}
	if err := json.Unmarshal(raw, staged); err != nil {
		return nil, nil, fmt.Errorf("%w: decoding staged reset: %v", common.ErrDependency, err)
	}

	return staged, raw, nil
}
