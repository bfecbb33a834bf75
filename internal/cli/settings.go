package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Loocist23/2ta-mobile-app/internal/profile"
)

// NewSettingsCommand creates the settings command.
func NewSettingsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change application settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				user, ok := app.Store.Current()
				if !ok {
					return fail(f, errSignedOut)
				}
				return f.Success(settingsView{user.Settings})
			})
		},
	}

	var push, emails, accessibility bool
	var cookies string
	set := &cobra.Command{
		Use:   "set",
		Short: "Change one or more settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				patch := profile.SettingsPatch{}
				if cmd.Flags().Changed("push") {
					patch.PushNotifications = &push
				}
				if cmd.Flags().Changed("emails") {
					patch.EmailSubscriptions = &emails
				}
				if cmd.Flags().Changed("cookies") {
					patch.CookieConsent = &cookies
				}
				if cmd.Flags().Changed("accessibility") {
					patch.AccessibilityMode = &accessibility
				}
				app.Store.UpdateSettings(cmd.Context(), patch)

				user, ok := app.Store.Current()
				if !ok {
					return fail(f, errSignedOut)
				}
				return f.Success(settingsView{user.Settings})
			})
		},
	}
	set.Flags().BoolVar(&push, "push", false, "push notifications")
	set.Flags().BoolVar(&emails, "emails", false, "email subscriptions")
	set.Flags().StringVar(&cookies, "cookies", "", "cookie consent level")
	set.Flags().BoolVar(&accessibility, "accessibility", false, "accessibility mode")

	cmd.AddCommand(show, set)
	return cmd
}

// settingsView renders settings for both output modes.
type settingsView struct {
	profile.Settings
}

func (v settingsView) String() string {
	return fmt.Sprintf("push=%t emails=%t cookies=%s accessibility=%t",
		v.PushNotifications, v.EmailSubscriptions, v.CookieConsent, v.AccessibilityMode)
}
