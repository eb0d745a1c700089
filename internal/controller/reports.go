package controller

import (
	"context"
	"strings"
	"unicode/utf8"

	"reportboard/client/internal/config"
	"reportboard/client/internal/models"
)

// LoadReports replaces the board with the backend's list.
func (c *Controller) LoadReports(ctx context.Context) error {
	reports, err := c.Reports.ListReports(ctx)
	if err != nil {
		c.alertFailure(err, "alert.network_error", "alert.load_failed")
		return err
	}
	c.Board.Replace(reports)
	return nil
}

// SetForm replaces the report inputs.
func (c *Controller) SetForm(f Form) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = f
}

// Form returns the current report inputs.
func (c *Controller) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// SubmitEnabled reports whether the submit control is usable.
func (c *Controller) SubmitEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.now().Before(c.disabledUntil)
}

// Submit validates the form and posts it. On success the server's copy goes on
// top of the board, the form is cleared and submission pauses for a cooldown.
func (c *Controller) Submit(ctx context.Context) error {
	if !c.SubmitEnabled() {
		c.Notifier.Alert(c.Text.Get("alert.submit_throttled"))
		return ErrSubmitThrottled
	}

	f := c.Form()
	room := strings.TrimSpace(f.Room)
	content := strings.TrimSpace(f.Content)
	if room == "" || content == "" {
		c.Notifier.Alert(c.Text.Get("alert.fill_room_content"))
		return ErrEmptyInput
	}
	if utf8.RuneCountInString(room) > config.MaxRoomLength ||
		utf8.RuneCountInString(content) > config.MaxContentLength {
		c.Notifier.Alert(c.Text.Get("alert.input_too_long"))
		return ErrInputTooLong
	}

	report, err := c.Reports.SubmitReport(ctx, models.NewReport{Room: room, Content: content})
	if err != nil {
		c.alertFailure(err, "alert.network_error_retry", "alert.send_failed")
		return err
	}

	c.Board.Prepend(*report)

	c.mu.Lock()
	c.form = Form{}
	c.disabledUntil = c.now().Add(config.SubmitCooldown)
	c.mu.Unlock()
	return nil
}

// Like adds the current user's like to a report.
func (c *Controller) Like(ctx context.Context, id models.ReportID) error {
	if !c.session().Authenticated() {
		c.Notifier.Alert(c.Text.Get("alert.like_login_required"))
		return ErrLoginRequired
	}

	likes, err := c.Reports.LikeReport(ctx, id)
	if err != nil {
		c.alertFailure(err, "alert.network_error", "alert.like_failed")
		return err
	}
	c.Board.SetLikes(id, likes)
	return nil
}
