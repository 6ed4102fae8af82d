package in_test

import (
	"context"
	"errors"
	"testing"

	accountin "dtimer/internal/modules/account/adapter/in"
	"dtimer/internal/modules/account/dto"
)

type fakeUsecase struct {
	existing map[string]string
	err      error
}

func (f *fakeUsecase) CreateAccount(_ context.Context, input dto.CreateAccountInput) (dto.CreateAccountOutput, error) {
	if f.err != nil {
		return dto.CreateAccountOutput{}, f.err
	}
	if _, ok := f.existing[input.Username]; ok {
		return dto.CreateAccountOutput{Username: input.Username}, nil
	}
	f.existing[input.Username] = input.Password
	return dto.CreateAccountOutput{Username: input.Username, Created: true}, nil
}

func (f *fakeUsecase) Login(_ context.Context, input dto.LoginInput) (dto.LoginOutput, error) {
	if f.err != nil {
		return dto.LoginOutput{}, f.err
	}
	p, ok := f.existing[input.Username]
	return dto.LoginOutput{Username: input.Username, Authenticated: ok && p == input.Password}, nil
}

func TestTUIHandler(t *testing.T) {
	t.Parallel()
	h := accountin.NewTUIHandler(&fakeUsecase{existing: map[string]string{}})
	ctx := context.Background()

	steps := []struct {
		name string
		call func() (bool, error)
		want bool
	}{
		{"create alice", func() (bool, error) { return h.CreateAccount(ctx, "alice", "secret") }, true},
		{"create alice again", func() (bool, error) { return h.CreateAccount(ctx, "alice", "other") }, false},
		{"login alice", func() (bool, error) { return h.Login(ctx, "alice", "secret") }, true},
		{"login alice wrong", func() (bool, error) { return h.Login(ctx, "alice", "wrong") }, false},
	}
	for _, step := range steps {
		got, err := step.call()
		if err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
		if got != step.want {
			t.Fatalf("%s: got %v, want %v", step.name, got, step.want)
		}
	}
}

func TestCLIHandlerNotices(t *testing.T) {
	t.Parallel()
	h := accountin.NewCLIHandler(&fakeUsecase{existing: map[string]string{"alice": "secret"}})
	ctx := context.Background()

	n, err := h.CreateAccount(ctx, "alice", "x")
	if err != nil || n.Message != "Username already exists." {
		t.Fatalf("unexpected duplicate notice %+v err=%v", n, err)
	}
	n, err = h.Check(ctx, "alice", "secret")
	if err != nil || n.Message != "Welcome, alice!" {
		t.Fatalf("unexpected login notice %+v err=%v", n, err)
	}
}

func TestHandlersPropagateErrors(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	uc := &fakeUsecase{existing: map[string]string{}, err: boom}
	ctx := context.Background()

	if _, err := accountin.NewTUIHandler(uc).Login(ctx, "a", "b"); !errors.Is(err, boom) {
		t.Fatalf("expected boom from tui login, got %v", err)
	}
	if _, err := accountin.NewTUIHandler(uc).CreateAccount(ctx, "a", "b"); !errors.Is(err, boom) {
		t.Fatalf("expected boom from tui create, got %v", err)
	}
	if _, err := accountin.NewCLIHandler(uc).Check(ctx, "a", "b"); !errors.Is(err, boom) {
		t.Fatalf("expected boom from cli check, got %v", err)
	}
}
