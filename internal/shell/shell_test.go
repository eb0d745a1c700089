package shell_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"reportboard/client/internal/api"
	"reportboard/client/internal/api/apitest"
	"reportboard/client/internal/auth"
	"reportboard/client/internal/controller"
	"reportboard/client/internal/localization"
	"reportboard/client/internal/session"
	"reportboard/client/internal/shell"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

type setup struct {
	srv  *apitest.Server
	sh   *shell.Shell
	ctrl *controller.Controller
	out  *bytes.Buffer
	now  time.Time
}

func newSetup(t *testing.T) *setup {
	t.Helper()
	srv := apitest.New(t)
	client, err := api.NewClient(srv.URL, 2*time.Second)
	require.NoError(t, err)
	l, err := localization.Default()
	require.NoError(t, err)

	s := &setup{srv: srv, out: &bytes.Buffer{}, now: start}
	clock := func() time.Time { return s.now }
	p := shell.NewPrinter(s.out)
	s.ctrl = controller.New(client, auth.NewService(client, session.NewStore()), p, localization.Catalog{L: l, Lang: "en"}, clock)
	s.sh = shell.New(s.ctrl, p, clock)
	return s
}

// run executes one line and returns what it printed.
func (s *setup) run(t *testing.T, line string) string {
	t.Helper()
	s.out.Reset()
	quit := s.sh.Execute(context.Background(), line)
	assert.False(t, quit)
	return s.out.String()
}

// The backend answers newest first and the board inserts each one on top,
// so the oldest report ends up first.
func TestExecute_ListReversesFetchOrder(t *testing.T) {
	s := newSetup(t)
	s.srv.AddReport("A1", "first", "貓咪", 0)
	s.srv.AddReport("A2", "second", "狐狸", 3)

	s.run(t, "list")
	s.now = start.Add(time.Second)
	out := s.run(t, "show")

	assert.Equal(t,
		"  #1  貓咪  [A1]  ❤ 0\n"+
			"    first\n"+
			"  #2  狐狸  [A2]  ❤ 3\n"+
			"    second\n",
		out)
}

func TestExecute_EmptyBoard(t *testing.T) {
	s := newSetup(t)

	assert.Equal(t, "(no reports)\n", s.run(t, "list"))
}

func TestExecute_PostPrintsNewReportMarked(t *testing.T) {
	s := newSetup(t)

	out := s.run(t, "post B2 smoke in the hallway")

	assert.True(t, strings.HasPrefix(out, "* #"), out)
	assert.Contains(t, out, "[B2]")
	assert.Contains(t, out, "    smoke in the hallway\n")
	assert.Equal(t, 1, s.srv.Hits(http.MethodPost, "/report"))
}

func TestExecute_PostThrottled(t *testing.T) {
	s := newSetup(t)
	s.run(t, "post B2 one")

	out := s.run(t, "post B2 two")

	assert.Equal(t, "! Please wait before sending again\n", out)
	assert.Equal(t, 1, s.srv.Hits(http.MethodPost, "/report"))
}

func TestExecute_LikeRequiresLogin(t *testing.T) {
	s := newSetup(t)
	s.srv.AddReport("A1", "first", "貓咪", 0)
	s.run(t, "list")

	out := s.run(t, "like 1")

	assert.Equal(t, "! Please log in to like reports\n", out)
	assert.Zero(t, s.srv.Hits(http.MethodPost, "/report/:id/like"))
}

func TestExecute_SessionAndLike(t *testing.T) {
	s := newSetup(t)
	id := s.srv.AddReport("A1", "first", "貓咪", 4)
	s.srv.AddUser("alice", "secret1")
	s.run(t, "list")

	out := s.run(t, "login alice secret1")
	assert.Contains(t, out, "Logged in as alice  (logout)\n")

	out = s.run(t, "like #"+id.String())
	assert.Equal(t, "#"+id.String()+" ❤ 5\n", out)

	out = s.run(t, "like 1")
	assert.Equal(t, "! already liked\n", out)

	out = s.run(t, "logout")
	assert.Contains(t, out, "Not logged in\n")
	assert.False(t, s.ctrl.UserStatus().LogoutVisible)
}

func TestExecute_LogoutHiddenWhenAnonymous(t *testing.T) {
	s := newSetup(t)

	out := s.run(t, "logout")

	assert.Equal(t, "Not logged in\n", out)
	assert.Zero(t, s.srv.TotalHits())
}

func TestExecute_Usage(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{name: "Post without content", line: "post B2", expected: "usage: post <room> <content...>\n"},
		{name: "Like without target", line: "like", expected: "usage: like <n>|#<id>\n"},
		{name: "Login missing password", line: "login alice", expected: "usage: login <user> <pass>\n"},
		{name: "Register extra args", line: "register a b c", expected: "usage: register <user> <pass>\n"},
		{name: "Unknown", line: "dance", expected: "unknown command \"dance\", try help\n"},
		{name: "Like missing report", line: "like 7", expected: "no report 7 on the board\n"},
		{name: "Blank line", line: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSetup(t)
			assert.Equal(t, tt.expected, s.run(t, tt.line))
			assert.Zero(t, s.srv.TotalHits())
		})
	}
}

func TestRun_StopsOnQuit(t *testing.T) {
	s := newSetup(t)
	in := strings.NewReader("status\nquit\nlist\n")

	require.NoError(t, s.sh.Run(context.Background(), in))

	assert.Equal(t, "> Not logged in\n> ", s.out.String())
	assert.Zero(t, s.srv.TotalHits(), "lines after quit are not run")
}

func TestRun_StopsOnEOF(t *testing.T) {
	s := newSetup(t)

	require.NoError(t, s.sh.Run(context.Background(), strings.NewReader("help\n")))

	assert.Contains(t, s.out.String(), "commands:")
	assert.True(t, strings.HasSuffix(s.out.String(), "> "))
}

func TestRun_CanceledContext(t *testing.T) {
	s := newSetup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.sh.Run(ctx, strings.NewReader("list\n"))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, s.srv.TotalHits())
}

func TestRun_CancelWhileWaitingForInput(t *testing.T) {
	s := newSetup(t)
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.sh.Run(ctx, pr) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run still blocked on input after cancel")
	}
}
