package main

import (
	"errors"
	"fmt"

	"github.com/chamberhq/join/internal/config"
	"github.com/chamberhq/join/internal/logger"
	natsutil "github.com/chamberhq/join/internal/nats"
	"github.com/chamberhq/join/internal/submit"
	"github.com/chamberhq/join/internal/tui/wizard"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Start a membership application",
	Long: `Start the membership registration wizard.

Configuration is loaded from multiple sources with the following precedence:
  Environment variables > Project config > Global config > Defaults

Project config: ./join.yml
Global config: ~/.config/join/join.yml

When nats_url is set, every confirmed application is published to
<subject_prefix>.<reference>. Otherwise applications are logged and dropped.`,
	RunE: runApply,
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Default.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	var submitter submit.Submitter = submit.Discard{}
	if cfg.NatsURL != "" {
		conn, err := natsutil.Connect(cfg.NatsURL)
		if err != nil {
			return fmt.Errorf("failed to reach broker: %w", err)
		}
		defer func() {
			if err := natsutil.Shutdown(conn, nil); err != nil {
				logger.Warn("Closing NATS connection: %v", err)
			}
		}()
		submitter = submit.NewPublisher(conn, cfg.SubjectPrefix)
	}

	res, err := wizard.Run(cmd.Context(), wizard.Options{
		TransitionDelay: cfg.TransitionDelay,
		Submitter:       submitter,
		DataDir:         cfg.DataDir,
	})
	if errors.Is(err, wizard.ErrCancelled) {
		fmt.Println("Application cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	if res.Submitted {
		fmt.Printf("Application %s received (%s).\n", res.Application.Reference, res.Application.ID)
	}
	return nil
}
