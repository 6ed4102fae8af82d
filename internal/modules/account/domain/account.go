package domain

// Account is a stored username/password pair. The password is kept verbatim;
// no hashing is applied.
type Account struct {
	Username string
	Password string
}

func New(username, password string) Account {
	return Account{Username: username, Password: password}
}
