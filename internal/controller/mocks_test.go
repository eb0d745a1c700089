package controller_test

import (
	"context"
	"sync"
	"time"

	"reportboard/client/internal/auth"
	"reportboard/client/internal/controller"
	"reportboard/client/internal/localization"
	"reportboard/client/internal/models"
	"reportboard/client/internal/session"

	"github.com/stretchr/testify/mock"
)

// MockReportAPI is a testify mock of controller.ReportAPI.
type MockReportAPI struct {
	mock.Mock
}

func (m *MockReportAPI) ListReports(ctx context.Context) ([]models.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockReportAPI) SubmitReport(ctx context.Context, in models.NewReport) (*models.Report, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportAPI) LikeReport(ctx context.Context, id models.ReportID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

// MockAuthAPI is a testify mock of auth.API.
type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Register(ctx context.Context, creds models.Credentials) error {
	args := m.Called(ctx, creds)
	return args.Error(0)
}

func (m *MockAuthAPI) Login(ctx context.Context, creds models.Credentials) (string, error) {
	args := m.Called(ctx, creds)
	return args.String(0), args.Error(1)
}

func (m *MockAuthAPI) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAuthAPI) Me(ctx context.Context) (*models.MeResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MeResult), args.Error(1)
}

// RecordingNotifier keeps every alert and status redraw.
type RecordingNotifier struct {
	mu       sync.Mutex
	Alerts   []string
	Statuses []controller.UserStatus
}

func (n *RecordingNotifier) Alert(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Alerts = append(n.Alerts, msg)
}

func (n *RecordingNotifier) UserChanged(status controller.UserStatus) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Statuses = append(n.Statuses, status)
}

func (n *RecordingNotifier) LastAlert() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.Alerts) == 0 {
		return ""
	}
	return n.Alerts[len(n.Alerts)-1]
}

func (n *RecordingNotifier) LastStatus() controller.UserStatus {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.Statuses) == 0 {
		return controller.UserStatus{}
	}
	return n.Statuses[len(n.Statuses)-1]
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type fixture struct {
	ctrl     *controller.Controller
	reports  *MockReportAPI
	authAPI  *MockAuthAPI
	store    *session.Store
	notifier *RecordingNotifier
	clock    *fakeClock
}

// newFixture builds a controller over mocks with the zh-TW catalog.
func newFixture() *fixture {
	l, err := localization.Default()
	if err != nil {
		panic(err)
	}
	f := &fixture{
		reports:  new(MockReportAPI),
		authAPI:  new(MockAuthAPI),
		store:    session.NewStore(),
		notifier: &RecordingNotifier{},
		clock:    &fakeClock{t: time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)},
	}
	f.ctrl = controller.New(
		f.reports,
		auth.NewService(f.authAPI, f.store),
		f.notifier,
		localization.Catalog{L: l, Lang: "zh-TW"},
		f.clock.Now,
	)
	return f
}
