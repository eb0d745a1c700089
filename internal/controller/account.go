package controller

import (
	"context"
	"errors"

	"reportboard/client/internal/auth"
)

// UserStatus derives the user bar from the session.
func (c *Controller) UserStatus() UserStatus {
	s := c.session()
	if s.Authenticated() {
		return UserStatus{Text: c.Text.Format("status.logged_in", s.Username), LogoutVisible: true}
	}
	return UserStatus{Text: c.Text.Get("status.anonymous"), LogoutVisible: false}
}

func (c *Controller) refreshUser() {
	c.Notifier.UserChanged(c.UserStatus())
}

// Register creates an account.
func (c *Controller) Register(ctx context.Context, username, password string) error {
	err := c.Auth.Register(ctx, username, password)
	switch {
	case err == nil:
		c.Notifier.Alert(c.Text.Get("alert.register_success"))
	case errors.Is(err, auth.ErrInvalidCredentialsLength):
		c.Notifier.Alert(c.Text.Get("alert.credentials_length"))
	default:
		c.alertFailure(err, "alert.network_error", "alert.register_failed")
	}
	return err
}

// Login opens a session.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	_, err := c.Auth.Login(ctx, username, password)
	switch {
	case err == nil:
		c.refreshUser()
		c.Notifier.Alert(c.Text.Get("alert.login_success"))
	case errors.Is(err, auth.ErrMissingCredentials):
		c.Notifier.Alert(c.Text.Get("alert.credentials_required"))
	default:
		c.alertFailure(err, "alert.network_error", "alert.login_failed")
	}
	return err
}

// Logout closes the session.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.Auth.Logout(ctx); err != nil {
		c.alertFailure(err, "alert.network_error", "alert.logout_failed")
		return err
	}
	c.refreshUser()
	c.Notifier.Alert(c.Text.Get("alert.logout_success"))
	return nil
}

// CheckMe resolves the session owner and redraws the user status. It never fails.
func (c *Controller) CheckMe(ctx context.Context) {
	c.Auth.CheckMe(ctx)
	c.refreshUser()
}
