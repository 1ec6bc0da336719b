// Package accounts persists committed accounts. The unique index on email is
// the consistency anchor for the whole verification protocol: concurrent
// commits for the same email resolve with exactly one success.
package accounts

import (
	"context"

	"github.com/ddmitrenko/tools/internal/account/models"
)

type Repository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)

	// UpdateEmail moves the row matching oldEmail to newEmail.
	UpdateEmail(ctx context.Context, oldEmail, newEmail string) error

	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error

	Delete(ctx context.Context, id string) error
}
