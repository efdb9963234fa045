package client

import "context"

// Identity is what the server returns after a successful verification or
// login.
type Identity struct {
	UserID string
	Role   string
}

// Profile is the caller's own account as reported by WhoAmI.
type Profile struct {
	UserID    string
	Role      string
	FirstName string
	LastName  string
	Email     string
}

// Registration carries the fields of a new account. DateOfBirth is
// YYYY-MM-DD.
type Registration struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	DateOfBirth string
	Role        string
}

type Client interface {
	Close() error
	Register(ctx context.Context, r Registration) error
	VerifyUser(ctx context.Context, email string, code int) (*Identity, error)
	Login(ctx context.Context, email, password string) (*Identity, error)
	SendRecoveryCode(ctx context.Context, userID string) error
	SetNewPassword(ctx context.Context, userID string, code int, newPassword string) error
	WhoAmI(ctx context.Context) (*Profile, error)
	Logout() error
	LoggedIn() bool
}
