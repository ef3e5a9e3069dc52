package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/olehkhomyk/feedline/internal/common"
	"github.com/olehkhomyk/feedline/internal/models"
)

// SignIn is the sign-in screen: prompts for credentials and waits for the
// single settlement of the repository's deferred sign-in check.
func (a *App) SignIn(ctx context.Context) error {
	login, err := GetSimpleText(a.reader, "Enter login", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	res := <-a.users.SignIn(ctx, models.Credentials{Login: login, Password: password})
	if res.Err != nil {
		fmt.Fprintf(a.out, "Sign-in failed: %v\n", res.Err)
		return res.Err
	}

	ok, err := a.users.CheckAuthorization(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	a.authenticated = ok

	fmt.Fprintf(a.out, "Welcome back, %s!\n", res.User.Name)
	return nil
}

// Register is the registration screen: collects a profile and creates the
// account, which becomes the current session user.
func (a *App) Register(ctx context.Context) error {
	profile := models.Profile{}

	prompts := []struct {
		label string
		dst   *string
	}{
		{"Enter name", &profile.Name},
		{"Enter surname", &profile.Surname},
		{"Enter phone", &profile.Phone},
		{"Enter mail", &profile.Mail},
		{"Enter login", &profile.Login},
	}
	for _, p := range prompts {
		v, err := GetSimpleText(a.reader, p.label, a.out)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return err
		}
		*p.dst = v
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	profile.Password = password

	user, err := a.users.Register(ctx, profile)
	if err != nil {
		if errors.Is(err, common.ErrLoginTaken) {
			fmt.Fprintf(a.out, "Login %q is already taken\n", profile.Login)
		} else {
			fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		}
		return err
	}

	a.authenticated = true
	fmt.Fprintf(a.out, "Welcome, %s! Your id is %d\n", user.Name, user.ID)
	return nil
}

// Logout signs the current user out and returns to the sign-in screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.users.SignOut(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	ok, err := a.users.CheckAuthorization(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	a.authenticated = ok

	fmt.Fprintln(a.out, "Signed out")
	return nil
}

// Whoami prints the current session user's profile.
func (a *App) Whoami(ctx context.Context) error {
	cur, err := a.users.CurrentUser()
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "#%d %s %s <%s> phone %s, following %d user(s)\n",
		cur.ID, cur.Name, cur.Surname, cur.Mail, cur.Phone, len(cur.Follows))
	return nil
}
