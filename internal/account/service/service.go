// Package service implements the verification-gated account mutation
// protocol. Sensitive mutations (sign-up, email change, password reset) are
// staged in an ephemeral store together with a one-time code delivered by
// email; the matching verify call consumes the staged entry and commits the
// result to Postgres.
//
// Each flow walks Stage -> Verify -> Commit -> Notify. The staged entry is
// the only state between the two calls and lives under a deterministic key
// (sign_up-{email}, change_email-{new_email}, reset_password-{email}) with a
// 10-minute TTL enforced by the staging store.
package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/ddmitrenko/tools/internal/account/notifier"
	"github.com/ddmitrenko/tools/internal/account/password"
	"github.com/ddmitrenko/tools/internal/account/repositories/accounts"
	"github.com/ddmitrenko/tools/internal/account/staging"
	"github.com/ddmitrenko/tools/internal/account/token"
	"github.com/ddmitrenko/tools/internal/logging"
)

// stagingTTL bounds how long a pending mutation stays verifiable.
const stagingTTL = 10 * time.Minute

const (
	signUpKeyPrefix        = "sign_up-"
	changeEmailKeyPrefix   = "change_email-"
	resetPasswordKeyPrefix = "reset_password-"
)

type Service struct {
	accounts accounts.Repository
	staging  staging.Store
	notifier notifier.Publisher
	hasher   *password.Hasher
	tokens   *token.Service
	logger   logging.Logger
}

func NewService(
	repo accounts.Repository,
	staging staging.Store,
	publisher notifier.Publisher,
	hasher *password.Hasher,
	tokens *token.Service,
	logger logging.Logger,
) *Service {
	return &Service{
		accounts: repo,
		staging:  staging,
		notifier: publisher,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger.With("module", "account_service"),
	}
}

func signUpKey(email string) string { return signUpKeyPrefix + email }

func changeEmailKey(newEmail string) string { return changeEmailKeyPrefix + newEmail }

func resetPasswordKey(email string) string { return resetPasswordKeyPrefix + email }

// newVerifyCode returns a 6-digit code in [100000, 999999]. The source is
// deliberately non-cryptographic; with no attempt-rate limiting in place the
// ~900k value space is the real bound on guessing resistance either way.
func newVerifyCode() string {
	return fmt.Sprintf("%d", rand.IntN(900000)+100000)
}

func validEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	return at > 0 && at < len(email)-1
}

// notifyBestEffort publishes after a successful commit and only logs on
// failure. There is no compensation for "commit succeeded, notify failed":
// the commit stands and the mail is lost.
func (s *Service) notifyBestEffort(ctx context.Context, reqs []notifier.MailReq) {
	if err := s.notifier.Publish(ctx, reqs); err != nil {
		s.logger.Warn(ctx, "dropping notification after commit", "error", err)
	}
}
