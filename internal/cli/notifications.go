package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Loocist23/2ta-mobile-app/internal/profile"
)

// NewNotificationsCommand creates the notification center command.
func NewNotificationsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Read and prune notifications",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				user, ok := app.Store.Current()
				if !ok {
					return fail(f, errSignedOut)
				}
				return f.Success(notificationList(user.Notifications))
			})
		},
	}

	read := &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark one notification read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				app.Store.MarkNotificationRead(cmd.Context(), args[0])
				return f.Success(fmt.Sprintf("Notification %s read.", args[0]))
			})
		},
	}

	readAll := &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification read",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				app.Store.MarkAllNotificationsRead(cmd.Context())
				return f.Success("All notifications read.")
			})
		},
	}

	remove := &cobra.Command{
		Use:   "remove <notification-id>",
		Short: "Delete one notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				app.Store.RemoveNotification(cmd.Context(), args[0])
				return f.Success(fmt.Sprintf("Notification %s removed.", args[0]))
			})
		},
	}

	cmd.AddCommand(list, read, readAll, remove)
	return cmd
}

// notificationList renders notifications for both output modes.
type notificationList []profile.Notification

func (l notificationList) String() string {
	if len(l) == 0 {
		return "No notifications."
	}
	var b strings.Builder
	for i, n := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		marker := "·"
		if !n.Read {
			marker = "●"
		}
		fmt.Fprintf(&b, "%s %s  %s: %s  (%s)", marker, n.ID, n.Title, n.Message, n.Date)
	}
	return b.String()
}
