package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"reportboard/client/internal/api"
	"reportboard/client/internal/auth"
	"reportboard/client/internal/config"
	"reportboard/client/internal/controller"
	"reportboard/client/internal/localization"
	"reportboard/client/internal/session"
	"reportboard/client/internal/shell"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	server := flag.String("server", "", "report board base URL (overrides REPORTBOARD_SERVER)")
	flag.Parse()

	env, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	env = env.WithServer(*server)

	client, err := api.NewClient(env.ServerURL, env.Timeout)
	if err != nil {
		log.Fatalf("Failed to create API client: %v", err)
	}

	l, err := localization.Default()
	if err != nil {
		log.Fatalf("Failed to load message catalogs: %v", err)
	}
	if !slices.Contains(l.Languages(), env.Language) {
		log.Printf("WARN: unknown language %q, messages fall back to en", env.Language)
	}

	printer := shell.NewPrinter(os.Stdout)
	authSvc := auth.NewService(client, session.NewStore())
	ctrl := controller.New(client, authSvc, printer, localization.Catalog{L: l, Lang: env.Language}, time.Now)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		// A second Ctrl-C kills the process.
		stop()
	}()

	sh := shell.New(ctrl, printer, time.Now)

	log.Printf("INFO: connecting to %s", env.ServerURL)
	if err := ctrl.Start(ctx); err != nil {
		// Already alerted; "list" retries.
		log.Printf("WARN: start-up load failed: %v", err)
	} else {
		sh.Execute(ctx, "show")
	}

	if err := sh.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		log.Fatalf("Shell stopped: %v", err)
	}
}
