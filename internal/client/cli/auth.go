package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/studentteacher/internal/client/client"
	"github.com/dmitrijs2005/studentteacher/internal/common"
)

// getSimpleText, getNumber and getPassword are swapped in tests.
var (
	getSimpleText = GetSimpleText
	getNumber     = GetNumber
	getPassword   = GetPassword
)

// Register prompts for the account fields and asks the server to email a
// verification code.
func (a *App) Register(ctx context.Context) error {
	var r client.Registration
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &r.FirstName},
		{"Last name", &r.LastName},
		{"Email", &r.Email},
		{"Date of birth (YYYY-MM-DD)", &r.DateOfBirth},
		{"Role (student or teacher)", &r.Role},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	r.Password = string(password)

	if err := a.client.Register(ctx, r); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "A code was sent to %s. Run 'verify' within 10 minutes.\n", r.Email)
	return nil
}

// Verify confirms the emailed registration code. Success logs the user in.
func (a *App) Verify(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	code, err := getNumber(a.reader, "Code", a.out)
	if err != nil {
		return err
	}

	id, err := a.client.VerifyUser(ctx, email, code)
	if err != nil {
		return err
	}

	a.identity, a.email = id, email
	fmt.Fprintf(a.out, "Account created. User ID: %s\n", id.UserID)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.identity, a.email = id, email
	fmt.Fprintf(a.out, "Logged in as %s. User ID: %s\n", id.Role, id.UserID)
	return nil
}

// Recover emails a recovery code. The user ID defaults to the logged-in
// user when left blank.
func (a *App) Recover(ctx context.Context) error {
	userID, err := a.askUserID()
	if err != nil {
		return err
	}

	if err := a.client.SendRecoveryCode(ctx, userID); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "A recovery code was sent. Run 'reset' within 15 minutes.")
	return nil
}

func (a *App) Reset(ctx context.Context) error {
	userID, err := a.askUserID()
	if err != nil {
		return err
	}
	code, err := getNumber(a.reader, "Code", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.SetNewPassword(ctx, userID, code, string(password)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Password changed.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	p, err := a.client.WhoAmI(ctx)
	if err != nil {
		return err
	}

	a.identity = &client.Identity{UserID: p.UserID, Role: p.Role}
	a.email = p.Email
	fmt.Fprintf(a.out, "%s %s <%s>\nrole: %s\nid:   %s\n", p.FirstName, p.LastName, p.Email, p.Role, p.UserID)
	return nil
}

func (a *App) Logout(context.Context) error {
	if err := a.client.Logout(); err != nil {
		return err
	}
	a.identity, a.email = nil, ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) askUserID() (string, error) {
	prompt := "User ID"
	if a.identity != nil {
		prompt = fmt.Sprintf("User ID [%s]", a.identity.UserID)
	}
	userID, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if userID == "" && a.identity != nil {
		return a.identity.UserID, nil
	}
	return userID, nil
}
