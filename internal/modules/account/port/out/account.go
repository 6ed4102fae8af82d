package out

import (
	"context"

	"dtimer/internal/modules/account/domain"
)

type AccountStore interface {
	// Insert stores the account and reports false, leaving the existing row
	// untouched, when the username is already taken.
	Insert(ctx context.Context, account domain.Account) (bool, error)
	// Matches reports whether a row with exactly this username and password exists.
	Matches(ctx context.Context, username, password string) (bool, error)
}
