package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Loocist23/2ta-mobile-app/internal/account"
	"github.com/Loocist23/2ta-mobile-app/internal/profile"
)

// NewAlertsCommand creates the saved-search alert command.
func NewAlertsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Manage job alerts",
	}
	cmd.AddCommand(
		newAlertsListCommand(rootOpts),
		newAlertsCreateCommand(rootOpts),
		newAlertsEditCommand(rootOpts),
		newAlertsToggleCommand(rootOpts),
		newAlertsDeleteCommand(rootOpts),
	)
	return cmd
}

func newAlertsListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List job alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				user, ok := app.Store.Current()
				if !ok {
					return fail(f, errSignedOut)
				}
				return f.Success(alertList(user.Alerts))
			})
		},
	}
}

func newAlertsCreateCommand(rootOpts *RootOptions) *cobra.Command {
	var title, location, frequency string
	var keywords []string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a job alert",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				id := app.Store.CreateAlert(cmd.Context(), account.AlertDraft{
					Title:     title,
					Keywords:  keywords,
					Location:  location,
					Frequency: profile.AlertFrequency(frequency),
				})
				if id == "" {
					return fail(f, errAlertRejected)
				}
				return f.Success(fmt.Sprintf("Alert %s created.", id))
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "alert title, derived from keywords when empty")
	cmd.Flags().StringSliceVar(&keywords, "keyword", nil, "search keyword, repeatable")
	cmd.Flags().StringVar(&location, "location", "", "search location")
	cmd.Flags().StringVar(&frequency, "frequency", "daily", "run frequency (daily|weekly)")
	cmd.MarkFlagRequired("keyword")
	cmd.MarkFlagRequired("location")
	return cmd
}

func newAlertsEditCommand(rootOpts *RootOptions) *cobra.Command {
	var title, location, frequency string
	var keywords []string
	var active bool
	cmd := &cobra.Command{
		Use:   "edit <alert-id>",
		Short: "Edit a job alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				patch := account.AlertPatch{}
				if cmd.Flags().Changed("title") {
					patch.Title = &title
				}
				if cmd.Flags().Changed("keyword") {
					patch.Keywords = &keywords
				}
				if cmd.Flags().Changed("location") {
					patch.Location = &location
				}
				if cmd.Flags().Changed("frequency") {
					freq := profile.AlertFrequency(frequency)
					patch.Frequency = &freq
				}
				if cmd.Flags().Changed("active") {
					patch.Active = &active
				}
				app.Store.UpdateAlert(cmd.Context(), args[0], patch)
				return f.Success(fmt.Sprintf("Alert %s updated.", args[0]))
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "alert title")
	cmd.Flags().StringSliceVar(&keywords, "keyword", nil, "search keyword, repeatable")
	cmd.Flags().StringVar(&location, "location", "", "search location")
	cmd.Flags().StringVar(&frequency, "frequency", "", "run frequency (daily|weekly)")
	cmd.Flags().BoolVar(&active, "active", true, "whether the alert runs")
	return cmd
}

func newAlertsToggleCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <alert-id>",
		Short: "Flip an alert between active and paused",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				app.Store.ToggleAlertActivation(cmd.Context(), args[0])
				return f.Success(fmt.Sprintf("Alert %s toggled.", args[0]))
			})
		},
	}
}

func newAlertsDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <alert-id>",
		Short: "Delete a job alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				app.Store.DeleteAlert(cmd.Context(), args[0])
				return f.Success(fmt.Sprintf("Alert %s deleted.", args[0]))
			})
		},
	}
}

// alertList renders alerts for both output modes.
type alertList []profile.Alert

func (l alertList) String() string {
	if len(l) == 0 {
		return "No alerts."
	}
	var b strings.Builder
	for i, a := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		state := "active"
		if !a.Active {
			state = "paused"
		}
		fmt.Fprintf(&b, "%s  %s (%s, %s)  %s, last run %s",
			a.ID, a.Title, strings.Join(a.Keywords, ", "), a.Location, state, a.LastRun)
	}
	return b.String()
}
