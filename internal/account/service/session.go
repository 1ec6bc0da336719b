package service

import (
	"context"
	"errors"

	"github.com/ddmitrenko/tools/internal/account/models"
	"github.com/ddmitrenko/tools/internal/common"
)

// SignIn checks the password against the stored hash and issues a session
// token. An unknown email and a wrong password both return ErrAuth so the
// response does not reveal which emails are registered.
func (s *Service) SignIn(ctx context.Context, email, pass string) (string, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrAuth
		}
		return "", err
	}

	ok, err := s.hasher.Verify(pass, account.PasswordHash)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", common.ErrAuth
	}

	return s.tokens.Issue(account.ID)
}

// GetAccount resolves the token and returns the committed account.
func (s *Service) GetAccount(ctx context.Context, tokenString string) (*models.Account, error) {
	id, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	return s.accounts.GetByID(ctx, id)
}

// DeleteAccount removes the committed account the token resolves to.
func (s *Service) DeleteAccount(ctx context.Context, tokenString string) error {
	id, err := s.tokens.Validate(tokenString)
	if err != nil {
		return err
	}

	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info(ctx, "account deleted", "account_id", id)
	return nil
}

// ValidateToken checks the token signature and returns the subject account's
// id and role. The role comes from the durable store, not the token.
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*models.Account, error) {
	id, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	return s.accounts.GetByID(ctx, id)
}
