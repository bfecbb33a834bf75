package cli

import (
	"github.com/spf13/cobra"

	"github.com/Loocist23/2ta-mobile-app/internal/account"
)

// NewPasswordCommand creates the password management command.
func NewPasswordCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Update the password or request a reset",
	}

	var current, next string
	update := &cobra.Command{
		Use:   "update",
		Short: "Set a new password for the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				err := app.Store.UpdatePassword(cmd.Context(), account.PasswordUpdate{
					CurrentPassword: current,
					NewPassword:     next,
				})
				if err != nil {
					return fail(f, err)
				}
				return f.Success("Password updated.")
			})
		},
	}
	update.Flags().StringVar(&current, "current", "", "current password, omit when the account has none")
	update.Flags().StringVar(&next, "new", "", "new password (8+ characters, a letter and a digit)")
	update.MarkFlagRequired("new")

	reset := &cobra.Command{
		Use:   "reset <email>",
		Short: "Request a password reset email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				if err := app.Store.RequestPasswordReset(cmd.Context(), args[0]); err != nil {
					return fail(f, err)
				}
				return f.Success("Reset email sent.")
			})
		},
	}

	cmd.AddCommand(update, reset)
	return cmd
}

// NewAccountCommand creates the account management command.
func NewAccountCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the account itself",
	}

	var confirmed bool
	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete the account and its stored data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				if !confirmed {
					f.Error("deletion is irreversible, pass --yes to confirm")
					return &ExitError{Code: ExitCommandError, Message: "deletion not confirmed"}
				}
				if err := app.Store.DeleteAccount(cmd.Context()); err != nil {
					return fail(f, err)
				}
				return f.Success("Account deleted.")
			})
		},
	}
	del.Flags().BoolVar(&confirmed, "yes", false, "confirm the deletion")

	cmd.AddCommand(del)
	return cmd
}
