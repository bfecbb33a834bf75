package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Loocist23/2ta-mobile-app/internal/profile"
)

// NewCVCommand creates the CV document command.
func NewCVCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cv",
		Short: "Manage CV documents",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List CV documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				user, ok := app.Store.Current()
				if !ok {
					return fail(f, errSignedOut)
				}
				return f.Success(cvList(user.CVs))
			})
		},
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a CV document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				id := app.Store.AddCV(cmd.Context(), args[0])
				if id == "" {
					return fail(f, errSignedOut)
				}
				return f.Success(fmt.Sprintf("CV %s added.", id))
			})
		},
	}

	rename := &cobra.Command{
		Use:   "rename <cv-id> <name>",
		Short: "Rename a CV document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				app.Store.RenameCV(cmd.Context(), args[0], args[1])
				return f.Success(fmt.Sprintf("CV %s renamed.", args[0]))
			})
		},
	}

	remove := &cobra.Command{
		Use:   "remove <cv-id>",
		Short: "Delete a CV document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				app.Store.RemoveCV(cmd.Context(), args[0])
				return f.Success(fmt.Sprintf("CV %s removed.", args[0]))
			})
		},
	}

	primary := &cobra.Command{
		Use:   "primary <cv-id>",
		Short: "Make a CV the application default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				app.Store.SetPrimaryCV(cmd.Context(), args[0])
				return f.Success(fmt.Sprintf("CV %s is now primary.", args[0]))
			})
		},
	}

	cmd.AddCommand(list, add, rename, remove, primary)
	return cmd
}

// cvList renders CV documents for both output modes.
type cvList []profile.CV

func (l cvList) String() string {
	if len(l) == 0 {
		return "No CVs."
	}
	var b strings.Builder
	for i, cv := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		marker := " "
		if cv.IsPrimary {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %s  %s  (%s)", marker, cv.ID, cv.Name, cv.UpdatedAt)
	}
	return b.String()
}
