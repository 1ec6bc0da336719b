package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ddmitrenko/tools/internal/account/models"
	"github.com/ddmitrenko/tools/internal/account/notifier"
	"github.com/ddmitrenko/tools/internal/account/password"
	"github.com/ddmitrenko/tools/internal/account/staging"
	"github.com/ddmitrenko/tools/internal/account/token"
	"github.com/ddmitrenko/tools/internal/common"
	"github.com/ddmitrenko/tools/internal/logging"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ---- fakes ----

// fakeAccountsRepo is a map-backed repository enforcing the unique-email
// invariant the way the Postgres unique index does.
type fakeAccountsRepo struct {
	byID    map[string]*models.Account
	byEmail map[string]*models.Account
}

func newFakeAccountsRepo() *fakeAccountsRepo {
	return &fakeAccountsRepo{
		byID:    make(map[string]*models.Account),
		byEmail: make(map[string]*models.Account),
	}
}

func (f *fakeAccountsRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeAccountsRepo) Create(_ context.Context, account *models.Account) (*models.Account, error) {
	if _, ok := f.byEmail[account.Email]; ok {
		return nil, common.ErrConflict
	}
	account.ID = uuid.NewString()
	account.Role = models.RoleUser
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	f.byID[account.ID] = account
	f.byEmail[account.Email] = account
	return account, nil
}

func (f *fakeAccountsRepo) GetByID(_ context.Context, id string) (*models.Account, error) {
	account, ok := f.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return account, nil
}

func (f *fakeAccountsRepo) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	account, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return account, nil
}

func (f *fakeAccountsRepo) UpdateEmail(_ context.Context, oldEmail, newEmail string) error {
	account, ok := f.byEmail[oldEmail]
	if !ok {
		return common.ErrNotFound
	}
	if _, taken := f.byEmail[newEmail]; taken {
		return common.ErrConflict
	}
	delete(f.byEmail, oldEmail)
	account.Email = newEmail
	f.byEmail[newEmail] = account
	return nil
}

func (f *fakeAccountsRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	account, ok := f.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	account.PasswordHash = passwordHash
	return nil
}

func (f *fakeAccountsRepo) UpdatePasswordByEmail(_ context.Context, email, passwordHash string) error {
	account, ok := f.byEmail[email]
	if !ok {
		return common.ErrNotFound
	}
	account.PasswordHash = passwordHash
	return nil
}

func (f *fakeAccountsRepo) Delete(_ context.Context, id string) error {
	account, ok := f.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	delete(f.byEmail, account.Email)
	delete(f.byID, id)
	return nil
}

// fakePublisher records publishes and can be told to fail.
type fakePublisher struct {
	published [][]notifier.MailReq
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, reqs []notifier.MailReq) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, reqs)
	return nil
}

func (f *fakePublisher) last(t *testing.T) []notifier.MailReq {
	t.Helper()
	if len(f.published) == 0 {
		t.Fatal("expected at least one published batch")
	}
	return f.published[len(f.published)-1]
}

// ---- harness ----

type harness struct {
	svc    *Service
	repo   *fakeAccountsRepo
	pub    *fakePublisher
	mr     *miniredis.Miniredis
	store  staging.Store
	tokens *token.Service
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := newFakeAccountsRepo()
	pub := &fakePublisher{}
	store := staging.NewRedisStore(client)
	tokens := token.NewService("test-jwt-secret")
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))

	svc := NewService(repo, store, pub, password.New("test-hash-secret"), tokens, logger)

	return &harness{svc: svc, repo: repo, pub: pub, mr: mr, store: store, tokens: tokens}
}

var codeRe = regexp.MustCompile(`\b(\d{6})\b`)

// lastCode extracts the verification code from the most recent mail body.
func (h *harness) lastCode(t *testing.T) string {
	t.Helper()
	batch := h.pub.last(t)
	m := codeRe.FindStringSubmatch(batch[0].Body)
	if m == nil {
		t.Fatalf("no 6-digit code in mail body: %q", batch[0].Body)
	}
	return m[1]
}

// register walks a full sign-up so later tests start from a committed account.
func (h *harness) register(t *testing.T, email, pass string) {
	t.Helper()
	ctx := context.Background()
	if err := h.svc.SignUp(ctx, email, pass); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
	if err := h.svc.VerifySignUp(ctx, email, h.lastCode(t)); err != nil {
		t.Fatalf("VerifySignUp error: %v", err)
	}
}

// ---- sign-up ----

func TestSignUp_StagesExactlyOneEntry(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if err := h.svc.SignUp(ctx, "alice@x.com", "pw-alice"); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}

	raw, err := h.store.Get(ctx, "sign_up-alice@x.com")
	if err != nil {
		t.Fatalf("staged entry missing: %v", err)
	}

	var staged signUpStaged
	if err := json.Unmarshal(raw, &staged); err != nil {
		t.Fatalf("staged payload not decodable: %v", err)
	}
	if staged.Email != "alice@x.com" {
		t.Fatalf("unexpected staged email: %q", staged.Email)
	}
	if staged.Password == "pw-alice" || staged.Password == "" {
		t.Fatal("staged password must be the hash, not the plaintext")
	}
	if staged.VerifyCode != h.lastCode(t) {
		t.Fatal("mailed code does not match staged code")
	}

	// Nothing committed yet.
	if _, err := h.repo.GetByEmail(ctx, "alice@x.com"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("account must not be committed before verify, got %v", err)
	}
}

func TestSignUp_CommittedEmailConflicts(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.register(t, "alice@x.com", "pw")

	before := len(h.pub.published)
	err := h.svc.SignUp(ctx, "alice@x.com", "other-pw")
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("expected common.ErrConflict, got %v", err)
	}
	if len(h.pub.published) != before {
		t.Fatal("conflicting sign-up must not publish")
	}
	if _, err := h.store.Get(ctx, "sign_up-alice@x.com"); !errors.Is(err, common.ErrNotFound) {
		t.Fatal("conflicting sign-up must not stage")
	}
}

func TestSignUp_Validation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	for _, tc := range []struct{ email, pass string }{
		{"", "pw"},
		{"not-an-email", "pw"},
		{"@x.com", "pw"},
		{"a@", "pw"},
		{"a@x.com", ""},
	} {
		if err := h.svc.SignUp(ctx, tc.email, tc.pass); !errors.Is(err, common.ErrValidation) {
			t.Fatalf("SignUp(%q,%q): expected common.ErrValidation, got %v", tc.email, tc.pass, err)
		}
	}
}

func TestSignUp_PublishFailureIsFatal(t *testing.T) {
	h := newHarness(t)
	h.pub.err = errors.New("broker down")

	err := h.svc.SignUp(context.Background(), "alice@x.com", "pw")
	if err == nil {
		t.Fatal("expected error when code delivery fails")
	}
}

func TestVerifySignUp_CommitsOnceAndConsumes(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if err := h.svc.SignUp(ctx, "alice@x.com", "pw-alice"); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
	code := h.lastCode(t)

	if err := h.svc.VerifySignUp(ctx, "alice@x.com", code); err != nil {
		t.Fatalf("VerifySignUp error: %v", err)
	}

	account, err := h.repo.GetByEmail(ctx, "alice@x.com")
	if err != nil {
		t.Fatalf("account not committed: %v", err)
	}
	if account.Role != models.RoleUser {
		t.Fatalf("unexpected role: %v", account.Role)
	}

	// Entry consumed: an immediate repeat fails not-found.
	if err := h.svc.VerifySignUp(ctx, "alice@x.com", code); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound on repeat verify, got %v", err)
	}
}

func TestVerifySignUp_WrongCodeIsRetryable(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if err := h.svc.SignUp(ctx, "alice@x.com", "pw"); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
	code := h.lastCode(t)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	if err := h.svc.VerifySignUp(ctx, "alice@x.com", wrong); !errors.Is(err, common.ErrCodeMismatch) {
		t.Fatalf("expected common.ErrCodeMismatch, got %v", err)
	}

	// The entry survives the mismatch and the correct code still works.
	if err := h.svc.VerifySignUp(ctx, "alice@x.com", code); err != nil {
		t.Fatalf("VerifySignUp after mismatch error: %v", err)
	}
}

func TestVerifySignUp_ExpiredByTTL(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if err := h.svc.SignUp(ctx, "alice@x.com", "pw"); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
	code := h.lastCode(t)

	h.mr.FastForward(stagingTTL + time.Second)

	if err := h.svc.VerifySignUp(ctx, "alice@x.com", code); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound after TTL, got %v", err)
	}
}

func TestVerifySignUp_NeverStaged(t *testing.T) {
	h := newHarness(t)

	err := h.svc.VerifySignUp(context.Background(), "ghost@x.com", "123456")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestVerifySignUp_CompletionNoticeIsBestEffort(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if err := h.svc.SignUp(ctx, "alice@x.com", "pw"); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
	code := h.lastCode(t)

	// Broker dies between stage and verify: the commit must still land.
	h.pub.err = errors.New("broker down")

	if err := h.svc.VerifySignUp(ctx, "alice@x.com", code); err != nil {
		t.Fatalf("VerifySignUp must swallow notify failure, got %v", err)
	}
	if _, err := h.repo.GetByEmail(ctx, "alice@x.com"); err != nil {
		t.Fatalf("account not committed: %v", err)
	}
}

func TestVerifySignUp_KnownStagedScenario(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// Stage directly with a known code.
	payload, err := json.Marshal(signUpStaged{
		Email:      "alice@x.com",
		Password:   mustHash(t, "pw"),
		VerifyCode: "482913",
	})
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if err := h.store.Put(ctx, "sign_up-alice@x.com", payload, stagingTTL); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	if err := h.svc.VerifySignUp(ctx, "alice@x.com", "482913"); err != nil {
		t.Fatalf("VerifySignUp error: %v", err)
	}
	if _, err := h.repo.GetByEmail(ctx, "alice@x.com"); err != nil {
		t.Fatalf("account with staged email must exist: %v", err)
	}

	if err := h.svc.VerifySignUp(ctx, "alice@x.com", "482913"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("second identical call: expected common.ErrNotFound, got %v", err)
	}
}

func mustHash(t *testing.T, pass string) string {
	t.Helper()
	h, err := password.New("test-hash-secret").Hash(pass)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	return h
}

// ---- sign-in / tokens ----

func TestSignIn_TokenResolvesToAccount(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.register(t, "alice@x.com", "pw-alice")

	tok, err := h.svc.SignIn(ctx, "alice@x.com", "pw-alice")
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}

	account, err := h.svc.ValidateToken(ctx, tok)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}

	committed, _ := h.repo.GetByEmail(ctx, "alice@x.com")
	if account.ID != committed.ID {
		t.Fatalf("token resolves to %q, want %q", account.ID, committed.ID)
	}
}

func TestSignIn_FailuresAreIndistinguishable(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.register(t, "alice@x.com", "pw-alice")

	_, errWrongPass := h.svc.SignIn(ctx, "alice@x.com", "wrong")
	_, errUnknown := h.svc.SignIn(ctx, "nobody@x.com", "whatever")

	if !errors.Is(errWrongPass, common.ErrAuth) {
		t.Fatalf("wrong password: expected common.ErrAuth, got %v", errWrongPass)
	}
	if !errors.Is(errUnknown, common.ErrAuth) {
		t.Fatalf("unknown email: expected common.ErrAuth, got %v", errUnknown)
	}
	if errWrongPass.Error() != errUnknown.Error() {
		t.Fatal("auth failures must be identical to the caller")
	}
}

func TestGetAccount_And_Delete(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.register(t, "alice@x.com", "pw")
	tok, err := h.svc.SignIn(ctx, "alice@x.com", "pw")
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}

	account, err := h.svc.GetAccount(ctx, tok)
	if err != nil {
		t.Fatalf("GetAccount error: %v", err)
	}
	if account.Email != "alice@x.com" {
		t.Fatalf("unexpected email: %q", account.Email)
	}

	if err := h.svc.DeleteAccount(ctx, tok); err != nil {
		t.Fatalf("DeleteAccount error: %v", err)
	}

	// The token still carries a valid signature, but the subject is gone.
	if _, err := h.svc.GetAccount(ctx, tok); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound after delete, got %v", err)
	}
}

func TestTokenGatedOps_RejectBadToken(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if _, err := h.svc.GetAccount(ctx, "garbage"); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("GetAccount: expected common.ErrInvalidToken, got %v", err)
	}
	if err := h.svc.DeleteAccount(ctx, "garbage"); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("DeleteAccount: expected common.ErrInvalidToken, got %v", err)
	}
	if err := h.svc.ChangeEmail(ctx, "garbage", "new@x.com"); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("ChangeEmail: expected common.ErrInvalidToken, got %v", err)
	}
}

// ---- change email ----

func TestChangeEmail_FullFlow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.register(t, "old@x.com", "pw")
	tok, err := h.svc.SignIn(ctx, "old@x.com", "pw")
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}

	if err := h.svc.ChangeEmail(ctx, tok, "new@x.com"); err != nil {
		t.Fatalf("ChangeEmail error: %v", err)
	}

	// The code goes to the address being claimed.
	batch := h.pub.last(t)
	if batch[0].To != "new@x.com" {
		t.Fatalf("code mailed to %q, want new address", batch[0].To)
	}
	code := h.lastCode(t)

	if _, err := h.store.Get(ctx, "change_email-new@x.com"); err != nil {
		t.Fatalf("staged entry missing: %v", err)
	}

	if err := h.svc.VerifyChangeEmail(ctx, "new@x.com", code); err != nil {
		t.Fatalf("VerifyChangeEmail error: %v", err)
	}

	if _, err := h.repo.GetByEmail(ctx, "new@x.com"); err != nil {
		t.Fatalf("account not reachable under new email: %v", err)
	}
	if _, err := h.repo.GetByEmail(ctx, "old@x.com"); !errors.Is(err, common.ErrNotFound) {
		t.Fatal("old email must no longer resolve")
	}

	// Both addresses get the post-commit notice.
	notice := h.pub.last(t)
	if len(notice) != 2 || notice[0].To != "old@x.com" || notice[1].To != "new@x.com" {
		t.Fatalf("expected notices to both addresses, got %+v", notice)
	}
}

func TestChangeEmail_TakenEmailConflicts(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.register(t, "a@x.com", "pw")
	h.register(t, "b@x.com", "pw")

	tok, err := h.svc.SignIn(ctx, "a@x.com", "pw")
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}

	if err := h.svc.ChangeEmail(ctx, tok, "b@x.com"); !errors.Is(err, common.ErrConflict) {
		t.Fatalf("expected common.ErrConflict, got %v", err)
	}
}

// ---- change password ----

func TestChangePassword_Success(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.register(t, "alice@x.com", "old-pw")
	tok, err := h.svc.SignIn(ctx, "alice@x.com", "old-pw")
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}

	if err := h.svc.ChangePassword(ctx, tok, "old-pw", "new-pw"); err != nil {
		t.Fatalf("ChangePassword error: %v", err)
	}

	if _, err := h.svc.SignIn(ctx, "alice@x.com", "new-pw"); err != nil {
		t.Fatalf("SignIn with new password error: %v", err)
	}
	if _, err := h.svc.SignIn(ctx, "alice@x.com", "old-pw"); !errors.Is(err, common.ErrAuth) {
		t.Fatalf("old password must no longer work, got %v", err)
	}
}

func TestChangePassword_WrongOldPasswordLeavesHash(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.register(t, "alice@x.com", "old-pw")
	tok, err := h.svc.SignIn(ctx, "alice@x.com", "old-pw")
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}

	account, _ := h.repo.GetByEmail(ctx, "alice@x.com")
	hashBefore := account.PasswordHash

	if err := h.svc.ChangePassword(ctx, tok, "wrong-old", "new-pw"); !errors.Is(err, common.ErrAuth) {
		t.Fatalf("expected common.ErrAuth, got %v", err)
	}

	account, _ = h.repo.GetByEmail(ctx, "alice@x.com")
	if account.PasswordHash != hashBefore {
		t.Fatal("stored hash changed despite failed old-password check")
	}
}

func TestChangePassword_NotifyFailureIsFatal(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.register(t, "alice@x.com", "old-pw")
	tok, err := h.svc.SignIn(ctx, "alice@x.com", "old-pw")
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}

	h.pub.err = errors.New("broker down")

	// The request fails even though the hash is already replaced. This
	// commit/notify desync is preserved reference behavior.
	if err := h.svc.ChangePassword(ctx, tok, "old-pw", "new-pw"); err == nil {
		t.Fatal("expected error from notify failure")
	}

	h.pub.err = nil
	if _, err := h.svc.SignIn(ctx, "alice@x.com", "new-pw"); err != nil {
		t.Fatalf("commit should have landed despite failed request: %v", err)
	}
}

// ---- password reset ----

func TestResetPassword_FullFlow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.register(t, "alice@x.com", "old-pw")

	if err := h.svc.RequestResetPassword(ctx, "alice@x.com"); err != nil {
		t.Fatalf("RequestResetPassword error: %v", err)
	}
	code := h.lastCode(t)

	// The pre-check does not consume the staged code.
	if err := h.svc.VerifyRequestResetPassword(ctx, "alice@x.com", code); err != nil {
		t.Fatalf("VerifyRequestResetPassword error: %v", err)
	}
	if err := h.svc.VerifyRequestResetPassword(ctx, "alice@x.com", code); err != nil {
		t.Fatalf("VerifyRequestResetPassword must be repeatable: %v", err)
	}

	if err := h.svc.ResetPassword(ctx, "alice@x.com", code, "new-pw"); err != nil {
		t.Fatalf("ResetPassword error: %v", err)
	}

	if _, err := h.svc.SignIn(ctx, "alice@x.com", "new-pw"); err != nil {
		t.Fatalf("SignIn with new password error: %v", err)
	}
	if _, err := h.svc.SignIn(ctx, "alice@x.com", "old-pw"); !errors.Is(err, common.ErrAuth) {
		t.Fatalf("old password must no longer work, got %v", err)
	}

	// The staged code is consumed.
	if err := h.svc.ResetPassword(ctx, "alice@x.com", code, "again"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound on reused code, got %v", err)
	}
}

func TestRequestResetPassword_UnknownEmail(t *testing.T) {
	h := newHarness(t)

	err := h.svc.RequestResetPassword(context.Background(), "nobody@x.com")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestResetPassword_WrongCode(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.register(t, "alice@x.com", "pw")
	if err := h.svc.RequestResetPassword(ctx, "alice@x.com"); err != nil {
		t.Fatalf("RequestResetPassword error: %v", err)
	}
	code := h.lastCode(t)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	if err := h.svc.VerifyRequestResetPassword(ctx, "alice@x.com", wrong); !errors.Is(err, common.ErrCodeMismatch) {
		t.Fatalf("expected common.ErrCodeMismatch, got %v", err)
	}
	if err := h.svc.ResetPassword(ctx, "alice@x.com", wrong, "new-pw"); !errors.Is(err, common.ErrCodeMismatch) {
		t.Fatalf("expected common.ErrCodeMismatch, got %v", err)
	}

	// Mismatches do not consume the entry.
	if err := h.svc.ResetPassword(ctx, "alice@x.com", code, "new-pw"); err != nil {
		t.Fatalf("ResetPassword after mismatch error: %v", err)
	}
}

func TestResetPassword_ExpiredByTTL(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.register(t, "alice@x.com", "pw")
	if err := h.svc.RequestResetPassword(ctx, "alice@x.com"); err != nil {
		t.Fatalf("RequestResetPassword error: %v", err)
	}
	code := h.lastCode(t)

	h.mr.FastForward(stagingTTL + time.Second)

	if err := h.svc.ResetPassword(ctx, "alice@x.com", code, "new-pw"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound after TTL, got %v", err)
	}
}

// ---- staging semantics ----

func TestSignUp_RestageOverwrites(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if err := h.svc.SignUp(ctx, "alice@x.com", "pw"); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
	firstCode := h.lastCode(t)

	if err := h.svc.SignUp(ctx, "alice@x.com", "pw"); err != nil {
		t.Fatalf("second SignUp error: %v", err)
	}
	secondCode := h.lastCode(t)

	if firstCode != secondCode {
		// Last writer wins: the first code is dead.
		if err := h.svc.VerifySignUp(ctx, "alice@x.com", firstCode); !errors.Is(err, common.ErrCodeMismatch) {
			t.Fatalf("expected common.ErrCodeMismatch for stale code, got %v", err)
		}
	}

	if err := h.svc.VerifySignUp(ctx, "alice@x.com", secondCode); err != nil {
		t.Fatalf("VerifySignUp with latest code error: %v", err)
	}
}

func TestVerifyCodeRange(t *testing.T) {
	t.Parallel()

	for i := 0; i < 1000; i++ {
		code := newVerifyCode()
		if len(code) != 6 || code[0] == '0' {
			t.Fatalf("code out of range: %q", code)
		}
	}
}
