package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ddmitrenko/tools/internal/account/models"
	"github.com/ddmitrenko/tools/internal/common"
	"github.com/ddmitrenko/tools/internal/dbx"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM account WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: %v", common.ErrDependency, err)
	}

	return exists, nil
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query :=
		`INSERT INTO account (email, password)
		 VALUES ($1, $2)
		 RETURNING id, role, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, account.Email, account.PasswordHash).
		Scan(&account.ID, &account.Role, &account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("%w: %v", common.ErrDependency, err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query :=
		`SELECT id, email, password, role, created_at, updated_at FROM account
		 WHERE id = $1
		 `

	return r.scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query :=
		`SELECT id, email, password, role, created_at, updated_at FROM account
		 WHERE email = $1
		 `

	return r.scanAccount(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) UpdateEmail(ctx context.Context, oldEmail, newEmail string) error {
	query :=
		`UPDATE account SET email = $2, updated_at = now()
		 WHERE email = $1
		 `

	return r.exec(ctx, query, oldEmail, newEmail)
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query :=
		`UPDATE account SET password = $2, updated_at = now()
		 WHERE id = $1
		 `

	return r.exec(ctx, query, id, passwordHash)
}

func (r *PostgresRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	query :=
		`UPDATE account SET password = $2, updated_at = now()
		 WHERE email = $1
		 `

	return r.exec(ctx, query, email, passwordHash)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM account WHERE id = $1`

	return r.exec(ctx, query, id)
}

func (r *PostgresRepository) scanAccount(row *sql.Row) (*models.Account, error) {
	account := &models.Account{}
	err := row.Scan(&account.ID, &account.Email, &account.PasswordHash,
		&account.Role, &account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrDependency, err)
	}

	return account, nil
}

// exec runs a mutation and maps "no rows touched" to ErrNotFound and a
// unique-index violation to ErrConflict.
func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return common.ErrConflict
		}
		return fmt.Errorf("%w: %v", common.ErrDependency, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrDependency, err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
