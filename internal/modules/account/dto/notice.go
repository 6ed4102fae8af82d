package dto

import "fmt"

type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeError
)

// Notice is the user-facing outcome of an account operation.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

func LoginNotice(username string, authenticated bool) Notice {
	if authenticated {
		return Notice{Kind: NoticeInfo, Title: "Login Successful", Message: fmt.Sprintf("Welcome, %s!", username)}
	}
	return Notice{Kind: NoticeError, Title: "Login Failed", Message: "Incorrect username or password."}
}

func CreateAccountNotice(created bool) Notice {
	if created {
		return Notice{Kind: NoticeInfo, Title: "Account Created", Message: "Account successfully created."}
	}
	return Notice{Kind: NoticeError, Title: "Error", Message: "Username already exists."}
}
