package account

// UserError is an error safe to show to the end user
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// ErrInvalidUsernameOrPassword is an error for a failed login
var ErrInvalidUsernameOrPassword = UserError("invalid username and/or password")

// ErrPlayerNotFound is an error when the named player does not exist
var ErrPlayerNotFound = UserError("player not found")
