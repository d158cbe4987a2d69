// cmd/depcheck/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SnowS2471/BettaFish/internal/config"
	"github.com/SnowS2471/BettaFish/internal/depcheck"
	"github.com/SnowS2471/BettaFish/internal/httpapi"
	"github.com/SnowS2471/BettaFish/internal/logging"
	"github.com/SnowS2471/BettaFish/internal/notify"
)

var (
	configFile string
	verbose    bool
)

// errUnavailable marks a probe that completed and found PDF export unusable.
// main maps it to exit status 1 without the error banner; the message has
// already been printed.
var errUnavailable = errors.New("pdf export unavailable")

// newChecker is a seam for tests to simulate probe outcomes.
var newChecker = depcheck.NewChecker

var rootCmd = &cobra.Command{
	Use:   "depcheck",
	Short: "Check the native dependencies PDF export needs",
	Long: `depcheck probes the WeasyPrint/Pango stack the report engine uses for
PDF export and prints what to install when something is missing.

Example usage:
  depcheck
  depcheck --verbose
  depcheck serve --config depcheck.yaml

Exit status is 0 when PDF export is available and 1 otherwise.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the dependency status over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Optional YAML config overlaying the environment")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print per-library load status")
	rootCmd.AddCommand(serveCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	return checkStatus(cmd.OutOrStdout(), newChecker(cfg.RendererBin), verbose)
}

// checkStatus prints the probe outcome and reports an unusable host as
// errUnavailable so the exit status carries the result.
func checkStatus(w io.Writer, chk *depcheck.Checker, verbose bool) error {
	res := chk.CheckPangoAvailable()
	fmt.Fprintln(w, res.Message)

	if verbose {
		libs, _ := chk.Scan()
		for _, l := range libs {
			if l.Loaded {
				fmt.Fprintln(w, "✔", l.Name)
			} else {
				fmt.Fprintln(w, "✖", l.Name+":", l.Error)
			}
		}
	}

	if !res.Available {
		return errUnavailable
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		return err
	}
	defer logger.Sync()

	chk := newChecker(cfg.RendererBin)
	available := chk.LogDependencyStatus(logging.NewStatusLogger(logger))
	alertIfUnavailable(cmd.Context(), logger, notify.NewSlack(cfg.AlertWebhook), chk.Platform.String(), available)

	api := httpapi.NewServer(logger, chk)
	logger.Info("api_listen", zap.String("addr", cfg.Addr))
	return http.ListenAndServe(cfg.Addr, api.Router())
}

// alertIfUnavailable pings the webhook once when the startup probe failed.
// A nil client means no webhook is configured.
func alertIfUnavailable(ctx context.Context, logger *zap.Logger, s *notify.Slack, platformName string, available bool) {
	if available || s == nil {
		return
	}
	host, _ := os.Hostname()
	alert := notify.DependencyAlert{Host: host, Platform: platformName}
	if err := s.SendDependencyAlert(ctx, alert); err != nil {
		logger.Warn("alert_send_failed", zap.Error(err))
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

func main() {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errUnavailable) {
		fmt.Fprintln(os.Stderr, "✖", err)
	}
	os.Exit(exitCode(err))
}
