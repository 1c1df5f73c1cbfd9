package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"charm.land/glamour/v2"
	"github.com/chamberhq/join/internal/config"
	"github.com/chamberhq/join/internal/logger"
	natsutil "github.com/chamberhq/join/internal/nats"
	"github.com/chamberhq/join/internal/registration"
	"github.com/chamberhq/join/internal/submit"
	"github.com/spf13/cobra"
)

var inboxFlags struct {
	host string
	port int
}

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Run a local broker and print incoming applications",
	Long: `Start an embedded NATS server and print every application published to it.

Point 'join apply' at it with nats_url (or JOIN_NATS_URL), for example
nats://127.0.0.1:4222, to try the full flow on one machine.`,
	RunE: runInbox,
}

func init() {
	inboxCmd.Flags().StringVar(&inboxFlags.host, "host", "127.0.0.1", "Address to listen on")
	inboxCmd.Flags().IntVar(&inboxFlags.port, "port", 4222, "Port to listen on (-1 picks a free port)")
}

func runInbox(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Default.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	ns, err := natsutil.StartEmbedded(inboxFlags.host, inboxFlags.port)
	if err != nil {
		return fmt.Errorf("failed to start broker: %w", err)
	}
	conn, err := natsutil.ConnectInProcess(ns)
	if err != nil {
		_ = natsutil.Shutdown(nil, ns)
		return err
	}
	defer func() {
		if err := natsutil.Shutdown(conn, ns); err != nil {
			fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		}
	}()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	sub, err := submit.Watch(conn, cfg.SubjectPrefix, func(app registration.Application) {
		out, err := renderer.Render(app.Markdown())
		if err != nil {
			out = app.Markdown()
		}
		fmt.Print(out)
	})
	if err != nil {
		return err
	}
	defer func() { _ = sub.Unsubscribe() }()

	fmt.Printf("Listening on %s for %s\n", ns.ClientURL(), natsutil.SubjectForAll(cfg.SubjectPrefix))
	fmt.Println("Press Ctrl+C to stop.")

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-sigChan:
		fmt.Println("\nShutting down gracefully...")
	case <-cmd.Context().Done():
	}
	return nil
}
