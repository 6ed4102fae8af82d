package service

import (
	"context"

	"dtimer/internal/modules/account/domain"
	accountout "dtimer/internal/modules/account/port/out"
	apperrors "dtimer/internal/platform/errors"
	"dtimer/internal/platform/logging"
)

type AccountService struct {
	store accountout.AccountStore
	log   logging.Logger
}

func NewAccountService(store accountout.AccountStore, log logging.Logger) *AccountService {
	if log == nil {
		log = logging.Discard()
	}
	return &AccountService{store: store, log: log.With("component", "account")}
}

// Create stores a new account. Usernames and passwords are accepted as typed,
// empty strings included.
func (s *AccountService) Create(ctx context.Context, username, password string) (domain.Account, error) {
	account := domain.New(username, password)
	created, err := s.store.Insert(ctx, account)
	if err != nil {
		s.log.Error(ctx, "create account failed", "username", username, "err", err)
		return domain.Account{}, err
	}
	if !created {
		s.log.Warn(ctx, "username already exists", "username", username)
		return domain.Account{}, apperrors.ErrDuplicateUsername
	}
	s.log.Info(ctx, "account created", "username", username)
	return account, nil
}

func (s *AccountService) Authenticate(ctx context.Context, username, password string) (domain.Account, error) {
	ok, err := s.store.Matches(ctx, username, password)
	if err != nil {
		s.log.Error(ctx, "login lookup failed", "username", username, "err", err)
		return domain.Account{}, err
	}
	if !ok {
		s.log.Warn(ctx, "login rejected", "username", username)
		return domain.Account{}, apperrors.ErrInvalidCredentials
	}
	s.log.Info(ctx, "login accepted", "username", username)
	return domain.New(username, password), nil
}
