package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Loocist23/2ta-mobile-app/internal/account"
	"github.com/Loocist23/2ta-mobile-app/internal/profile"
)

// NewApplicationsCommand creates the application pipeline command.
func NewApplicationsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "applications",
		Aliases: []string{"apps"},
		Short:   "Track job applications",
	}
	cmd.AddCommand(
		newApplicationsListCommand(rootOpts),
		newApplicationsAddCommand(rootOpts),
		newApplicationsStatusCommand(rootOpts),
		newApplicationsNoteCommand(rootOpts),
		newApplicationsEditCommand(rootOpts),
	)
	return cmd
}

func newApplicationsListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the application pipeline, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				user, ok := app.Store.Current()
				if !ok {
					return fail(f, errSignedOut)
				}
				return f.Success(applicationList(user.Applications))
			})
		},
	}
}

func newApplicationsAddCommand(rootOpts *RootOptions) *cobra.Command {
	var draft account.ApplicationDraft
	var status, note string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new application",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				draft.Status = profile.ApplicationStatus(status)
				if note != "" {
					draft.Notes = []string{note}
				}
				// Fill company and title from the catalog when only a job id
				// was given.
				if job, ok := app.Catalog.JobByID(draft.JobID); ok {
					if draft.Title == "" {
						draft.Title = job.Title
					}
					if draft.Company == "" {
						draft.Company = job.Company
					}
				}
				id := app.Store.AddApplication(cmd.Context(), draft)
				if id == "" {
					return fail(f, errSignedOut)
				}
				return f.Success(fmt.Sprintf("Application %s recorded.", id))
			})
		},
	}
	cmd.Flags().StringVar(&draft.JobID, "job", "", "job id from the catalog, or free text")
	cmd.Flags().StringVar(&draft.Company, "company", "", "company name")
	cmd.Flags().StringVar(&draft.Title, "title", "", "position title")
	cmd.Flags().StringVar(&status, "status", "", "initial status, defaults to Envoyée")
	cmd.Flags().StringVar(&draft.NextStep, "next-step", "", "next step, if known")
	cmd.Flags().StringVar(&note, "note", "", "initial note")
	return cmd
}

func newApplicationsStatusCommand(rootOpts *RootOptions) *cobra.Command {
	var status, nextStep string
	cmd := &cobra.Command{
		Use:   "status <application-id>",
		Short: "Move an application to a new status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				st := profile.ApplicationStatus(status)
				if !st.Valid() {
					f.Error(fmt.Sprintf("unknown status %q", status))
					return &ExitError{Code: ExitCommandError, Message: "unknown status"}
				}
				app.Store.UpdateApplicationStatus(cmd.Context(), args[0], st, nextStep)
				return f.Success(fmt.Sprintf("Application %s moved to %s.", args[0], st))
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "new status")
	cmd.Flags().StringVar(&nextStep, "next-step", "", "next step, empty clears it")
	cmd.MarkFlagRequired("status")
	return cmd
}

func newApplicationsNoteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "note <application-id> <text>",
		Short: "Append a note to an application",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				app.Store.AddApplicationNote(cmd.Context(), args[0], args[1])
				return f.Success("Note added.")
			})
		},
	}
}

func newApplicationsEditCommand(rootOpts *RootOptions) *cobra.Command {
	var company, title string
	cmd := &cobra.Command{
		Use:   "edit <application-id>",
		Short: "Edit an application's company or title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				patch := account.ApplicationPatch{}
				if cmd.Flags().Changed("company") {
					patch.Company = &company
				}
				if cmd.Flags().Changed("title") {
					patch.Title = &title
				}
				app.Store.UpdateApplication(cmd.Context(), args[0], patch)
				return f.Success(fmt.Sprintf("Application %s updated.", args[0]))
			})
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&title, "title", "", "position title")
	return cmd
}

// applicationList renders the pipeline for both output modes.
type applicationList []profile.Application

func (l applicationList) String() string {
	if len(l) == 0 {
		return "No applications."
	}
	var b strings.Builder
	for i, a := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s  %s @ %s  [%s]", a.ID, a.Title, a.Company, a.Status)
		if a.NextStep != "" {
			fmt.Fprintf(&b, "  next: %s", a.NextStep)
		}
	}
	return b.String()
}
