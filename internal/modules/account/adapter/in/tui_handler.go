package in

import (
	"context"

	"dtimer/internal/modules/account/dto"
	accountin "dtimer/internal/modules/account/port/in"
)

type TUIHandler struct {
	usecase accountin.Usecase
}

func NewTUIHandler(usecase accountin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) CreateAccount(ctx context.Context, username, password string) (bool, error) {
	out, err := h.usecase.CreateAccount(ctx, dto.CreateAccountInput{Username: username, Password: password})
	if err != nil {
		return false, err
	}
	return out.Created, nil
}

func (h TUIHandler) Login(ctx context.Context, username, password string) (bool, error) {
	out, err := h.usecase.Login(ctx, dto.LoginInput{Username: username, Password: password})
	if err != nil {
		return false, err
	}
	return out.Authenticated, nil
}
