package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dtimer/internal/modules/account/domain"
	accountout "dtimer/internal/modules/account/port/out"
	apperrors "dtimer/internal/platform/errors"
)

type SQLiteAccountStore struct {
	db *sql.DB
}

// NewSQLiteAccountStore expects db to already carry the users table (see
// platform/sqlitedb).
func NewSQLiteAccountStore(db *sql.DB) accountout.AccountStore {
	return &SQLiteAccountStore{db: db}
}

func (s *SQLiteAccountStore) Insert(ctx context.Context, account domain.Account) (bool, error) {
	const stmt = `
INSERT INTO users (username, password)
VALUES (?, ?)
ON CONFLICT(username) DO NOTHING;
`
	res, err := s.db.ExecContext(ctx, stmt, account.Username, account.Password)
	if err != nil {
		return false, fmt.Errorf("%w: insert user: %w", apperrors.ErrStorage, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: insert user rows affected: %w", apperrors.ErrStorage, err)
	}
	return n == 1, nil
}

func (s *SQLiteAccountStore) Matches(ctx context.Context, username, password string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM users WHERE username = ? AND password = ?`,
		username, password,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: select user: %w", apperrors.ErrStorage, err)
	}
	return true, nil
}
