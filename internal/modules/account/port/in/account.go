package in

import (
	"context"

	"dtimer/internal/modules/account/dto"
)

type Usecase interface {
	CreateAccount(ctx context.Context, input dto.CreateAccountInput) (dto.CreateAccountOutput, error)
	Login(ctx context.Context, input dto.LoginInput) (dto.LoginOutput, error)
}
