package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errSignedOut reports commands that need an active session.
var errSignedOut = errors.New("Aucune session active.")

// errAlertRejected reports an alert draft the store ignored.
var errAlertRejected = errors.New("Une alerte nécessite au moins un mot-clé et une localisation.")

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the twota CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "twota",
		Short:         "2TA - job search companion",
		Long:          "Drive the 2TA account state store: sign in, track applications, manage alerts, CVs and notifications.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewWhoamiCommand(opts))
	cmd.AddCommand(NewPasswordCommand(opts))
	cmd.AddCommand(NewAccountCommand(opts))
	cmd.AddCommand(NewProfileCommand(opts))
	cmd.AddCommand(NewFavoriteCommand(opts))
	cmd.AddCommand(NewFollowCommand(opts))
	cmd.AddCommand(NewApplicationsCommand(opts))
	cmd.AddCommand(NewAlertsCommand(opts))
	cmd.AddCommand(NewCVCommand(opts))
	cmd.AddCommand(NewNotificationsCommand(opts))
	cmd.AddCommand(NewSettingsCommand(opts))
	cmd.AddCommand(NewJobsCommand(opts))
	cmd.AddCommand(NewCompaniesCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// runWithApp wires the application, runs fn, then tears the wiring down.
func runWithApp(opts *RootOptions, cmd *cobra.Command, fn func(app *App, f *OutputFormatter) error) error {
	app, err := newApp(opts, cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return fn(app, f)
}

// fail reports a store operation failure in the configured format and
// converts it into a non-zero exit.
func fail(f *OutputFormatter, err error) error {
	f.Error(err.Error())
	return &ExitError{Code: ExitFailure, Message: err.Error(), Err: err}
}
