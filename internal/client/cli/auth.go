package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskvault/taskvault/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for an email and password and creates a new account.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.api.Signup(ctx, email, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created. Run 'taskauth login' to sign in.")
	return nil
}

// Login prompts for credentials, authenticates against the server and
// stores the session token for later commands.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	token, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.session.Save(token); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", email)
	return nil
}

// WhoAmI verifies the stored token with the server and prints the
// account it belongs to.
func (a *App) WhoAmI(ctx context.Context) error {
	token, err := a.loadToken()
	if err != nil {
		return err
	}

	subject, err := a.api.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) {
			a.session.Clear()
			return fmt.Errorf("session expired, run 'taskauth login'")
		}
		return err
	}

	fmt.Fprintln(a.out, subject)
	return nil
}

// Logout discards the stored session token. The token itself stays
// valid until it expires; the server keeps no session state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func (a *App) loadToken() (string, error) {
	token, err := a.session.Load()
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", fmt.Errorf("not signed in, run 'taskauth login'")
		}
		return "", err
	}
	return token, nil
}
