// Package controller is the client UI controller: it turns user actions into
// backend calls and keeps the board, the form and the user status in step.
// Every failure is reported through Notifier.Alert and also returned.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"reportboard/client/internal/api"
	"reportboard/client/internal/auth"
	"reportboard/client/internal/board"
	"reportboard/client/internal/localization"
	"reportboard/client/internal/models"
	"reportboard/client/internal/session"

	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyInput      = errors.New("room and content required")
	ErrInputTooLong    = errors.New("input too long")
	ErrLoginRequired   = errors.New("login required")
	ErrSubmitThrottled = errors.New("submit is cooling down")
	ErrUnknownAction   = errors.New("unknown action")
)

// ReportAPI is the subset of the backend client used for reports.
type ReportAPI interface {
	ListReports(ctx context.Context) ([]models.Report, error)
	SubmitReport(ctx context.Context, in models.NewReport) (*models.Report, error)
	LikeReport(ctx context.Context, id models.ReportID) (int, error)
}

// Notifier is the presentation side the controller drives.
type Notifier interface {
	// Alert shows a blocking message.
	Alert(msg string)
	// UserChanged asks the presentation to redraw the user status.
	UserChanged(status UserStatus)
}

// UserStatus is what the user bar shows.
type UserStatus struct {
	Text          string
	LogoutVisible bool
}

// Form holds the report inputs.
type Form struct {
	Room    string
	Content string
}

// Controller wires the report board together.
type Controller struct {
	Reports  ReportAPI
	Auth     *auth.Service
	Board    *board.Board
	Notifier Notifier
	Text     localization.Catalog

	now func() time.Time

	mu            sync.Mutex
	form          Form
	disabledUntil time.Time
}

// New creates a controller. now drives the submit cooldown and the board's
// entering state; nil means time.Now.
func New(reports ReportAPI, authSvc *auth.Service, n Notifier, text localization.Catalog, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{
		Reports:  reports,
		Auth:     authSvc,
		Board:    board.New(now),
		Notifier: n,
		Text:     text,
		now:      now,
	}
}

func (c *Controller) session() session.State {
	return c.Auth.Session.Current()
}

// Start runs the initial session check and report load concurrently.
// A failed load does not cancel the session check.
func (c *Controller) Start(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		c.CheckMe(ctx)
		return nil
	})
	g.Go(func() error {
		return c.LoadReports(ctx)
	})
	return g.Wait()
}

// Dispatch runs the handler bound to a declarative action.
func (c *Controller) Dispatch(ctx context.Context, a board.Action) error {
	switch a.Kind {
	case board.ActionLike:
		return c.Like(ctx, a.ReportID)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, a.Kind)
	}
}

// alertFailure shows the server's text for err, a network message, or fallback.
func (c *Controller) alertFailure(err error, networkKey, fallbackKey string) {
	if errors.Is(err, api.ErrNetwork) {
		c.Notifier.Alert(c.Text.Get(networkKey))
		return
	}
	if msg := api.ServerMessage(err); msg != "" {
		c.Notifier.Alert(msg)
		return
	}
	c.Notifier.Alert(c.Text.Get(fallbackKey))
}
