package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Loocist23/2ta-mobile-app/internal/account"
	"github.com/Loocist23/2ta-mobile-app/internal/profile"
)

// LoginOptions holds flags for the email login flow.
type LoginOptions struct {
	*RootOptions
	Email    string
	Password string
	FullName string
}

// NewLoginCommand creates the login command with one subcommand per
// provider flow.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email, Google or Apple",
	}

	opts := &LoginOptions{RootOptions: rootOpts}
	email := &cobra.Command{
		Use:   "email",
		Short: "Sign in (or sign up) with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				user, err := app.Store.SignInWithEmail(cmd.Context(), account.Credentials{
					Email:    opts.Email,
					Password: opts.Password,
					FullName: opts.FullName,
				})
				if err != nil {
					return fail(f, err)
				}
				return f.Success(sessionSummary(user, app.Store.Provider()))
			})
		},
	}
	email.Flags().StringVar(&opts.Email, "email", "", "account email")
	email.Flags().StringVar(&opts.Password, "password", "", "account password")
	email.Flags().StringVar(&opts.FullName, "name", "", "full name, used when creating the account")
	email.MarkFlagRequired("email")
	email.MarkFlagRequired("password")

	google := &cobra.Command{
		Use:   "google",
		Short: "Sign in with the simulated Google account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				user, err := app.Store.SignInWithGoogle(cmd.Context())
				if err != nil {
					return fail(f, err)
				}
				return f.Success(sessionSummary(user, app.Store.Provider()))
			})
		},
	}

	apple := &cobra.Command{
		Use:   "apple",
		Short: "Sign in with the simulated Apple account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				user, err := app.Store.SignInWithApple(cmd.Context())
				if err != nil {
					return fail(f, err)
				}
				return f.Success(sessionSummary(user, app.Store.Provider()))
			})
		},
	}

	cmd.AddCommand(email, google, apple)
	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out, keeping the account on this device",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				app.Store.SignOut(cmd.Context())
				return f.Success("Signed out.")
			})
		},
	}
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				user, ok := app.Store.Current()
				if !ok {
					return f.Success("Signed out.")
				}
				return f.Success(sessionSummary(user, app.Store.Provider()))
			})
		},
	}
}

// NewProfileCommand creates the profile edit command.
func NewProfileCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Edit the profile identity",
	}

	var name, title, location, phone, bio string
	edit := &cobra.Command{
		Use:   "edit",
		Short: "Update name, title, location, phone or bio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				patch := account.IdentityPatch{}
				if cmd.Flags().Changed("name") {
					patch.Name = &name
				}
				if cmd.Flags().Changed("title") {
					patch.Title = &title
				}
				if cmd.Flags().Changed("location") {
					patch.Location = &location
				}
				if cmd.Flags().Changed("phone") {
					patch.Phone = &phone
				}
				if cmd.Flags().Changed("bio") {
					patch.Bio = &bio
				}
				app.Store.UpdateIdentity(cmd.Context(), patch)

				user, ok := app.Store.Current()
				if !ok {
					return f.Success("Signed out.")
				}
				return f.Success(sessionSummary(user, app.Store.Provider()))
			})
		},
	}
	edit.Flags().StringVar(&name, "name", "", "display name")
	edit.Flags().StringVar(&title, "title", "", "job title")
	edit.Flags().StringVar(&location, "location", "", "location")
	edit.Flags().StringVar(&phone, "phone", "", "phone number")
	edit.Flags().StringVar(&bio, "bio", "", "short bio")

	cmd.AddCommand(edit)
	return cmd
}

// sessionRow is the JSON projection of a session for CLI output.
type sessionRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Provider string `json:"provider"`
	Title    string `json:"title,omitempty"`
	Location string `json:"location,omitempty"`
}

func sessionSummary(user profile.User, provider profile.Provider) sessionRow {
	return sessionRow{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Provider: string(provider),
		Title:    user.Title,
		Location: user.Location,
	}
}

// String renders the text form of a session summary.
func (r sessionRow) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s <%s>", r.Name, r.Email)
	if r.Provider != "" {
		fmt.Fprintf(&b, " via %s", r.Provider)
	}
	if r.Title != "" {
		fmt.Fprintf(&b, "\n%s - %s", r.Title, r.Location)
	}
	return b.String()
}
