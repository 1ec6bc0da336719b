package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ddmitrenko/tools/internal/account/models"
	"github.com/ddmitrenko/tools/internal/account/notifier"
	"github.com/ddmitrenko/tools/internal/common"
)

// signUpStaged is the payload staged under sign_up-{email}. The password is
// already hashed at stage time so the plaintext never leaves the request.
type signUpStaged struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	VerifyCode string `json:"verify_code"`
}

// SignUp stages a registration and mails a verification code. Nothing is
// committed until VerifySignUp; an abandoned sign-up simply expires.
func (s *Service) SignUp(ctx context.Context, email, pass string) error {
	if !validEmail(email) || pass == "" {
		return common.ErrValidation
	}

	exists, err := s.accounts.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return common.ErrConflict
	}

	hash, err := s.hasher.Hash(pass)
	if err != nil {
		return err
	}

	code := newVerifyCode()

	payload, err := json.Marshal(signUpStaged{Email: email, Password: hash, VerifyCode: code})
	if err != nil {
		return fmt.Errorf("%w: encoding staged sign-up: %v", common.ErrDependency, err)
	}

	if err := s.staging.Put(ctx, signUpKey(email), payload, stagingTTL); err != nil {
		return err
	}

	// Code delivery is the whole point of the staging step; a publish
	// failure fails the request.
	return s.notifier.Publish(ctx, []notifier.MailReq{{
		To:      email,
		Subject: "Verify your account",
		Body:    fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, int(stagingTTL.Minutes())),
	}})
}

// VerifySignUp consumes the staged registration and commits the account. A
// wrong code leaves the entry in place so the caller can retry until the TTL
// runs out.
func (s *Service) VerifySignUp(ctx context.Context, email, code string) error {
	raw, err := s.staging.Get(ctx, signUpKey(email))
	if err != nil {
		return err
	}

	var staged signUpStaged
	if err := json.Unmarshal(raw, &staged); err != nil {
		return fmt.Errorf("%w: decoding staged sign-up: %v", common.ErrDependency, err)
	}

	if staged.VerifyCode != code {
		return common.ErrCodeMismatch
	}

	// Atomic consume: if a concurrent verify or the TTL got here first, the
	// delete loses and the flow ends as not-found.
	if err := s.staging.DeleteIfMatches(ctx, signUpKey(email), raw); err != nil {
		return err
	}

	account, err := s.accounts.Create(ctx, &models.Account{
		Email:        staged.Email,
		PasswordHash: staged.Password,
	})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			// Lost the insert race to a concurrent verify; the unique index
			// on email guarantees exactly one winner.
			return common.ErrConflict
		}
		return err
	}

	s.logger.Info(ctx, "account committed", "account_id", account.ID)

	s.notifyBestEffort(ctx, []notifier.MailReq{{
		To:      staged.Email,
		Subject: "Welcome",
		Body:    "Your account has been verified and is ready to use.",
	}})

	return nil
}
