package cmd

import (
	"errors"
	"fmt"
	"os"

	"appserve/core/handler"
	"appserve/core/logger"
	"appserve/core/server"
	"appserve/core/settings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "appserve",
	Short: "Settings-driven application server",
	Long: `appserve locates a project's settings module, merges it into the live
settings and serves the apps it installs over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		if msg, ok := diagnostic(err); ok {
			fmt.Fprintln(os.Stderr, msg)
			os.Exit(1)
		}

		// Console format at debug level gives ISO8601 timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// usageError reports a wrong number of positional arguments.
type usageError struct {
	got int
}

func (e *usageError) Error() string {
	return fmt.Sprintf("Expected zero or one arguments, got %d", e.got)
}

// zeroOrOneArg accepts an optional settings file path.
func zeroOrOneArg(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return &usageError{got: len(args)}
	}
	return nil
}

func settingsArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return ""
}

// diagnostic returns the single stderr line for the fatal errors of the
// startup sequence. It reports false for anything else.
func diagnostic(err error) (string, bool) {
	var (
		notFound *settings.NotFoundError
		badZone  *settings.InvalidTimezoneError
		bind     *server.Error
		usage    *usageError
	)
	switch {
	case errors.As(err, &usage):
		return "Error: " + usage.Error(), true
	case errors.As(err, &notFound):
		if notFound.Import {
			return fmt.Sprintf("Error: Can't find '%s' in your search path.", notFound.Name), true
		}
		return fmt.Sprintf("Settings file '%s' not found in current folder.", notFound.Name), true
	case errors.As(err, &badZone):
		return "Error: " + badZone.Error(), true
	case errors.As(err, &bind), errors.Is(err, handler.ErrBuild):
		return "Error: " + server.Translate(err), true
	}
	return "", false
}
