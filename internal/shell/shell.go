// Package shell is the interactive, line-oriented front end of the client.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"reportboard/client/internal/board"
	"reportboard/client/internal/controller"
	"reportboard/client/internal/models"
	"reportboard/client/internal/render"
)

const helpText = `commands:
  list                      reload and show reports
  show                      show reports without reloading
  post <room> <content...>  send a report
  like <n>|#<id>            like the n-th shown report, or by id
  register <user> <pass>    create an account
  login <user> <pass>       log in
  logout                    log out
  me                        re-check the session
  status                    show who is logged in
  help                      this text
  quit                      leave
`

// Shell reads commands and drives a controller.
type Shell struct {
	Ctrl    *controller.Controller
	Printer *Printer
	now     func() time.Time
}

// New creates a shell. now is used for the entering marker; nil means time.Now.
func New(ctrl *controller.Controller, p *Printer, now func() time.Time) *Shell {
	if now == nil {
		now = time.Now
	}
	return &Shell{Ctrl: ctrl, Printer: p, now: now}
}

// Run executes lines from in until EOF, "quit" or ctx is done. It returns as
// soon as ctx is done, even while waiting for input; the reader goroutine is
// then left blocked until in yields or is closed.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.prompt()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if err := ctx.Err(); err != nil {
				return err
			}
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			if quit := s.Execute(ctx, line); quit {
				return nil
			}
		}
	}
}

func (s *Shell) prompt() {
	s.Printer.write(func(w io.Writer) error {
		_, err := io.WriteString(w, "> ")
		return err
	})
}

func (s *Shell) println(format string, args ...any) {
	s.Printer.write(func(w io.Writer) error {
		_, err := fmt.Fprintf(w, format+"\n", args...)
		return err
	})
}

func (s *Shell) showBoard() {
	items := s.Ctrl.Board.Items()
	now := s.now()
	s.Printer.write(func(w io.Writer) error {
		if len(items) == 0 {
			_, err := io.WriteString(w, "(no reports)\n")
			return err
		}
		return render.Board(w, items, now)
	})
}

// Execute runs one command line and reports whether the shell should stop.
// Controller failures are already shown as alerts, so their errors are dropped here.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true
	case "help", "?":
		s.println("%s", strings.TrimRight(helpText, "\n"))
	case "list", "refresh":
		if err := s.Ctrl.LoadReports(ctx); err == nil {
			s.showBoard()
		}
	case "show":
		s.showBoard()
	case "post":
		if len(args) < 2 {
			s.println("usage: post <room> <content...>")
			return false
		}
		s.Ctrl.SetForm(controller.Form{Room: args[0], Content: strings.Join(args[1:], " ")})
		if err := s.Ctrl.Submit(ctx); err == nil {
			s.showTop()
		}
	case "like":
		if len(args) != 1 {
			s.println("usage: like <n>|#<id>")
			return false
		}
		s.like(ctx, args[0])
	case "register":
		if len(args) != 2 {
			s.println("usage: register <user> <pass>")
			return false
		}
		_ = s.Ctrl.Register(ctx, args[0], args[1])
	case "login":
		if len(args) != 2 {
			s.println("usage: login <user> <pass>")
			return false
		}
		_ = s.Ctrl.Login(ctx, args[0], args[1])
	case "logout":
		if !s.Ctrl.UserStatus().LogoutVisible {
			s.Printer.UserChanged(s.Ctrl.UserStatus())
			return false
		}
		_ = s.Ctrl.Logout(ctx)
	case "me":
		s.Ctrl.CheckMe(ctx)
	case "status":
		s.Printer.UserChanged(s.Ctrl.UserStatus())
	default:
		s.println("unknown command %q, try help", cmd)
	}
	return false
}

func (s *Shell) showTop() {
	items := s.Ctrl.Board.Items()
	if len(items) == 0 {
		return
	}
	now := s.now()
	s.Printer.write(func(w io.Writer) error {
		return render.Report(w, items[0], now)
	})
}

// like resolves a position ("3") or an id ("#42") to the view's bound action.
func (s *Shell) like(ctx context.Context, ref string) {
	var (
		view  board.ReportView
		found bool
	)
	if id, ok := strings.CutPrefix(ref, "#"); ok {
		view, found = s.Ctrl.Board.Find(models.ReportID(id))
	} else if n, err := strconv.Atoi(ref); err == nil {
		items := s.Ctrl.Board.Items()
		if n >= 1 && n <= len(items) {
			view, found = items[n-1], true
		}
	}
	if !found {
		s.println("no report %s on the board", ref)
		return
	}

	if err := s.Ctrl.Dispatch(ctx, view.Like); err == nil {
		if updated, ok := s.Ctrl.Board.Find(view.ID); ok {
			s.println("#%s %s", render.Sanitize(updated.ID.String()), updated.LikeLabel)
		}
	}
}
