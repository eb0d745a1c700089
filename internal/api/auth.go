package api

import (
	"context"
	"net/http"

	"reportboard/client/internal/models"
)

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, creds models.Credentials) error {
	resp, err := c.do(ctx, http.MethodPost, "/register", creds)
	if err != nil {
		return err
	}
	return resp.expect(http.StatusCreated)
}

// Login opens a session and returns the username the server recognised.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/login", creds)
	if err != nil {
		return "", err
	}
	if err := resp.expect(http.StatusOK); err != nil {
		return "", err
	}

	var res models.LoginResult
	if err := resp.decode("/login", &res); err != nil {
		return "", err
	}
	return res.Username, nil
}

// Logout closes the current session.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/logout", nil)
	if err != nil {
		return err
	}
	return resp.expect(http.StatusOK)
}

// Me asks the backend who the session belongs to.
func (c *Client) Me(ctx context.Context) (*models.MeResult, error) {
	resp, err := c.do(ctx, http.MethodGet, "/me", nil)
	if err != nil {
		return nil, err
	}
	if err := resp.expect(http.StatusOK); err != nil {
		return nil, err
	}

	var me models.MeResult
	if err := resp.decode("/me", &me); err != nil {
		return nil, err
	}
	return &me, nil
}
