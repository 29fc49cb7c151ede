package cli

import (
	"context"
	"errors"
	"fmt"

	"traveldesk/internal/console/services"
)

func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		a.toasts.Info("Already logged in; use 'logout' first")
		return nil
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	session, err := a.auth.Login(ctx, email, password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		a.toasts.Error("Invalid email or password")
		return nil
	case errors.Is(err, services.ErrInactiveAccount):
		a.toasts.Error("This account is inactive")
		return nil
	case err != nil:
		a.toasts.Error("Login failed: " + err.Error())
		return nil
	}

	a.toasts.Success(fmt.Sprintf("Welcome, %s (%s)", session.FullName, session.Role))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.toasts.Info("Not logged in")
		return nil
	}
	a.auth.Logout(ctx)
	a.toasts.Info("Logged out")
	return nil
}
