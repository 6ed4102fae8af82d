package dto

type CreateAccountInput struct {
	Username string
	Password string
}

type CreateAccountOutput struct {
	Username string
	Created  bool
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	Username      string
	Authenticated bool
}
