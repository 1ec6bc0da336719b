// Package token issues and validates stateless session tokens. A token is an
// HS256-signed JWT whose only claim is the account id in `sub`. No expiry
// claim is set and none is required at validation, so a token stays valid for
// as long as the signing secret does. Revocation is therefore impossible
// without rotating the secret; callers accept that trade-off.
package token

import (
	"fmt"

	"github.com/ddmitrenko/tools/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

type Service struct {
	secret []byte
	parser *jwt.Parser
}

func NewService(secret string) *Service {
	return &Service{
		secret: []byte(secret),
		// Signature-only validation: restrict the algorithm, do not demand exp.
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// Issue signs a token carrying accountID as the subject claim.
func (s *Service) Issue(accountID string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: accountID,
	})

	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Validate checks the signature and returns the subject. A bad signature,
// malformed token, or missing subject yields common.ErrInvalidToken.
func (s *Service) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	t, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !t.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
