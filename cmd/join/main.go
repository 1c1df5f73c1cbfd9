package main

import (
	"context"
	"os"
	"strings"

	"github.com/chamberhq/join/internal/logger"
	"github.com/chamberhq/join/internal/tui/theme"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "▀█ █▀█ █ █▄ █"
	logoText2 = "▄█ █▄█ █ █ ▀█"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "join",
	Short: "Chamber membership registration kiosk",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

join walks a company through the chamber's membership application in eight
steps: membership tier, account details, phone verification, company and
representative profiles, line of business, a review page and payment.

Confirmed applications can be published to NATS for the back office; run
'join inbox' to watch them arrive locally.`

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(inboxCmd)
}
