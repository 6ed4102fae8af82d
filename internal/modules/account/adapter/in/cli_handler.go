package in

import (
	"context"

	"dtimer/internal/modules/account/dto"
	accountin "dtimer/internal/modules/account/port/in"
)

type CLIHandler struct {
	usecase accountin.Usecase
}

func NewCLIHandler(usecase accountin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) CreateAccount(ctx context.Context, username, password string) (dto.Notice, error) {
	out, err := h.usecase.CreateAccount(ctx, dto.CreateAccountInput{Username: username, Password: password})
	if err != nil {
		return dto.Notice{}, err
	}
	return dto.CreateAccountNotice(out.Created), nil
}

func (h CLIHandler) Check(ctx context.Context, username, password string) (dto.Notice, error) {
	out, err := h.usecase.Login(ctx, dto.LoginInput{Username: username, Password: password})
	if err != nil {
		return dto.Notice{}, err
	}
	return dto.LoginNotice(username, out.Authenticated), nil
}
