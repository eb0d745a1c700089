package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"reportboard/client/internal/api"
	"reportboard/client/internal/auth"
	"reportboard/client/internal/config"
	"reportboard/client/internal/controller"
	"reportboard/client/internal/localization"
	"reportboard/client/internal/render"
	"reportboard/client/internal/session"
	"reportboard/client/internal/shell"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: feed [-server URL] <command> [args]")
	fmt.Fprintln(w, "  list                      print the board")
	fmt.Fprintln(w, "  post <room> <content...>  send a report")
	fmt.Fprintln(w, "  status                    print the session status")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
// Alerts go to stderr, results to stdout.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("feed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	server := fs.String("server", "", "report board base URL (overrides REPORTBOARD_SERVER)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	args = fs.Args()
	if len(args) < 1 {
		usage(stdout)
		return 1
	}

	env, err := config.Load()
	if err != nil {
		log.Printf("ERROR: failed to load configuration: %v", err)
		return 1
	}
	env = env.WithServer(*server)

	client, err := api.NewClient(env.ServerURL, env.Timeout)
	if err != nil {
		log.Printf("ERROR: failed to create API client: %v", err)
		return 1
	}
	l, err := localization.Default()
	if err != nil {
		log.Printf("ERROR: failed to load message catalogs: %v", err)
		return 1
	}

	printer := shell.NewPrinter(stderr)
	ctrl := controller.New(client, auth.NewService(client, session.NewStore()), printer,
		localization.Catalog{L: l, Lang: env.Language}, time.Now)

	ctx, cancel := context.WithTimeout(context.Background(), 2*env.Timeout)
	defer cancel()

	command := args[0]

	switch command {
	case "list":
		if len(args) != 1 {
			fmt.Fprintln(stdout, "Usage: feed list")
			return 1
		}
		if err := ctrl.LoadReports(ctx); err != nil {
			return 1
		}
		if err := render.Board(stdout, ctrl.Board.Items(), time.Now()); err != nil {
			log.Printf("ERROR: printing reports: %v", err)
			return 1
		}
	case "post":
		if len(args) < 3 {
			fmt.Fprintln(stdout, "Usage: feed post <room> <content...>")
			return 1
		}
		ctrl.SetForm(controller.Form{Room: args[1], Content: strings.Join(args[2:], " ")})
		if err := ctrl.Submit(ctx); err != nil {
			return 1
		}
		top := ctrl.Board.Items()[0]
		fmt.Fprintf(stdout, "Report #%s posted as %s.\n", render.Sanitize(top.ID.String()), render.Sanitize(top.Nickname))
	case "status":
		if len(args) != 1 {
			fmt.Fprintln(stdout, "Usage: feed status")
			return 1
		}
		ctrl.CheckMe(ctx)
		if err := render.Status(stdout, ctrl.UserStatus()); err != nil {
			log.Printf("ERROR: printing status: %v", err)
			return 1
		}
	default:
		fmt.Fprintf(stdout, "Unknown command: %s\n", command)
		usage(stdout)
		return 1
	}
	return 0
}
