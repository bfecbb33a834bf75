package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewFavoriteCommand creates the favorite toggle command.
func NewFavoriteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <job-id>",
		Short: "Toggle a job in the favorites list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				jobID := args[0]
				app.Store.ToggleFavorite(cmd.Context(), jobID)

				user, ok := app.Store.Current()
				if !ok {
					return f.Success("Signed out, nothing changed.")
				}
				for _, id := range user.Favorites {
					if id == jobID {
						return f.Success(fmt.Sprintf("Added %s to favorites.", jobID))
					}
				}
				return f.Success(fmt.Sprintf("Removed %s from favorites.", jobID))
			})
		},
	}
}

// NewFollowCommand creates the company follow command.
func NewFollowCommand(rootOpts *RootOptions) *cobra.Command {
	var remove bool
	cmd := &cobra.Command{
		Use:   "follow <company-id>",
		Short: "Follow a company, or unfollow with --remove",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				companyID := args[0]
				if remove {
					app.Store.UnfollowCompany(cmd.Context(), companyID)
					return f.Success(fmt.Sprintf("Unfollowed %s.", companyID))
				}
				app.Store.FollowCompany(cmd.Context(), companyID)
				return f.Success(fmt.Sprintf("Following %s.", companyID))
			})
		},
	}
	cmd.Flags().BoolVar(&remove, "remove", false, "unfollow instead of follow")
	return cmd
}
