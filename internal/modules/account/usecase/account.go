package usecase

import (
	"context"
	"errors"

	"dtimer/internal/modules/account/dto"
	accountin "dtimer/internal/modules/account/port/in"
	"dtimer/internal/modules/account/service"
	apperrors "dtimer/internal/platform/errors"
)

type Interactor struct {
	svc *service.AccountService
}

func NewInteractor(svc *service.AccountService) accountin.Usecase {
	return &Interactor{svc: svc}
}

// CreateAccount reports Created=false without error for a taken username.
// Any other failure is returned as is.
func (i *Interactor) CreateAccount(ctx context.Context, input dto.CreateAccountInput) (dto.CreateAccountOutput, error) {
	account, err := i.svc.Create(ctx, input.Username, input.Password)
	if errors.Is(err, apperrors.ErrDuplicateUsername) {
		return dto.CreateAccountOutput{Username: input.Username, Created: false}, nil
	}
	if err != nil {
		return dto.CreateAccountOutput{}, err
	}
	return dto.CreateAccountOutput{Username: account.Username, Created: true}, nil
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.LoginOutput, error) {
	account, err := i.svc.Authenticate(ctx, input.Username, input.Password)
	if errors.Is(err, apperrors.ErrInvalidCredentials) {
		return dto.LoginOutput{Username: input.Username, Authenticated: false}, nil
	}
	if err != nil {
		return dto.LoginOutput{}, err
	}
	return dto.LoginOutput{Username: account.Username, Authenticated: true}, nil
}
