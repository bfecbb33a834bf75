package account

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Loocist23/2ta-mobile-app/internal/profile"
)

// signedInStore returns a store with an active email session.
func signedInStore(t *testing.T) *Store {
	t.Helper()
	s, _ := newTestStore(t)
	_, err := s.SignInWithEmail(context.Background(), Credentials{
		Email:    "test@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	return s
}

func current(t *testing.T, s *Store) profile.User {
	t.Helper()
	user, ok := s.Current()
	require.True(t, ok)
	return user
}

func TestMutators_NoopWhileSignedOut(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	s.ToggleFavorite(ctx, "job-1")
	s.FollowCompany(ctx, "company-hellowork")
	s.MarkAllNotificationsRead(ctx)
	s.UpdateSettings(ctx, profile.SettingsPatch{})
	assert.Equal(t, "", s.CreateAlert(ctx, AlertDraft{Keywords: []string{"Go"}, Location: "Paris"}))
	assert.Equal(t, "", s.AddCV(ctx, "CV.pdf"))
	assert.Equal(t, "", s.AddApplication(ctx, ApplicationDraft{Title: "Dev"}))

	_, ok := s.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, kv.Len(), "signed-out mutators must not write")
}

func TestToggleFavorite_Parity(t *testing.T) {
	ctx := context.Background()
	s := signedInStore(t)

	before := current(t, s).Favorites

	s.ToggleFavorite(ctx, "job-6")
	assert.Contains(t, current(t, s).Favorites, "job-6")

	s.ToggleFavorite(ctx, "job-6")
	after := current(t, s).Favorites
	assert.NotContains(t, after, "job-6")
	assert.Equal(t, before, after, "double toggle restores the set")
}

func TestFollowCompany_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := signedInStore(t)

	s.FollowCompany(ctx, "company-saasly")
	s.FollowCompany(ctx, "company-saasly")
	followed := current(t, s).FollowedCompanies
	assert.Equal(t, 1, count(followed, "company-saasly"))

	s.UnfollowCompany(ctx, "company-saasly")
	s.UnfollowCompany(ctx, "company-saasly")
	assert.NotContains(t, current(t, s).FollowedCompanies, "company-saasly")
}

func count(list []string, want string) int {
	n := 0
	for _, v := range list {
		if v == want {
			n++
		}
	}
	return n
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()
	s := signedInStore(t)

	s.MarkNotificationRead(ctx, "notification-1")
	s.MarkNotificationRead(ctx, "notification-1") // idempotent
	s.MarkNotificationRead(ctx, "does-not-exist") // ignored

	for _, n := range current(t, s).Notifications {
		if n.ID == "notification-1" {
			assert.True(t, n.Read)
		}
	}

	s.MarkAllNotificationsRead(ctx)
	for _, n := range current(t, s).Notifications {
		assert.True(t, n.Read)
	}

	s.RemoveNotification(ctx, "notification-2")
	assert.Len(t, current(t, s).Notifications, 2)
}

func TestCreateAlert(t *testing.T) {
	ctx := context.Background()
	s := signedInStore(t)

	// Keywords are trimmed and blanks dropped; title is derived.
	id := s.CreateAlert(ctx, AlertDraft{
		Keywords: []string{" Go ", "", "Backend"},
		Location: " Nantes ",
	})
	require.NotEmpty(t, id)
	assert.True(t, strings.HasPrefix(id, "alert-"))

	user := current(t, s)
	created := user.Alerts[len(user.Alerts)-1]
	assert.Equal(t, id, created.ID)
	assert.Equal(t, []string{"Go", "Backend"}, created.Keywords)
	assert.Equal(t, "Nantes", created.Location)
	assert.Equal(t, "Go, Backend - Nantes", created.Title)
	assert.Equal(t, profile.FrequencyDaily, created.Frequency)
	assert.Equal(t, profile.AlertNeverRun, created.LastRun)
	assert.True(t, created.Active)

	// Drafts without keywords or location are rejected.
	assert.Empty(t, s.CreateAlert(ctx, AlertDraft{Location: "Paris"}))
	assert.Empty(t, s.CreateAlert(ctx, AlertDraft{Keywords: []string{"Go"}}))
	assert.Len(t, current(t, s).Alerts, len(user.Alerts))
}

func TestUpdateAlert(t *testing.T) {
	ctx := context.Background()
	s := signedInStore(t)

	title := "Renamed"
	active := false
	lastRun := "Il y a 1 minute"
	s.UpdateAlert(ctx, "alert-1", AlertPatch{Title: &title, Active: &active, LastRun: &lastRun})

	alert := current(t, s).Alerts[0]
	assert.Equal(t, "Renamed", alert.Title)
	assert.False(t, alert.Active)
	assert.Equal(t, "Il y a 1 minute", alert.LastRun)
	assert.Equal(t, []string{"UX", "Figma", "Research"}, alert.Keywords, "unpatched fields keep their value")

	s.ToggleAlertActivation(ctx, "alert-1")
	assert.True(t, current(t, s).Alerts[0].Active)

	s.DeleteAlert(ctx, "alert-1")
	for _, a := range current(t, s).Alerts {
		assert.NotEqual(t, "alert-1", a.ID)
	}
}

func TestCVs_PrimaryInvariant(t *testing.T) {
	ctx := context.Background()
	s := signedInStore(t)

	id := s.AddCV(ctx, "CV_2026.pdf")
	require.NotEmpty(t, id)
	assert.Empty(t, s.AddCV(ctx, "   "), "blank names are ignored")

	s.SetPrimaryCV(ctx, id)
	assertOnePrimary(t, current(t, s).CVs, id)

	// Removing the primary promotes the first remaining CV.
	s.RemoveCV(ctx, id)
	cvs := current(t, s).CVs
	require.NotEmpty(t, cvs)
	assertOnePrimary(t, cvs, cvs[0].ID)

	s.RenameCV(ctx, "cv-2", "Portfolio_2026.pdf")
	for _, cv := range current(t, s).CVs {
		if cv.ID == "cv-2" {
			assert.Equal(t, "Portfolio_2026.pdf", cv.Name)
			assert.Equal(t, "Mis à jour à l'instant", cv.UpdatedAt)
		}
	}
}

func assertOnePrimary(t *testing.T, cvs []profile.CV, wantID string) {
	t.Helper()
	primaries := 0
	for _, cv := range cvs {
		if cv.IsPrimary {
			primaries++
			assert.Equal(t, wantID, cv.ID)
		}
	}
	assert.Equal(t, 1, primaries, "exactly one primary CV")
}

func TestAddApplication(t *testing.T) {
	ctx := context.Background()
	s := signedInStore(t)

	id := s.AddApplication(ctx, ApplicationDraft{
		JobID:   "job-2",
		Company: "Startup Nantaise",
		Title:   "UI Designer",
		Notes:   []string{"  premier contact  ", ""},
	})
	require.NotEmpty(t, id)

	user := current(t, s)
	app := user.Applications[0]
	assert.Equal(t, id, app.ID, "new applications go to the head")
	assert.Equal(t, profile.StatusSent, app.Status, "status defaults to sent")
	assert.Equal(t, "À l'instant", app.LastUpdate)
	assert.True(t, strings.HasPrefix(app.AppliedOn, "Candidature du "))
	assert.Equal(t, []string{"premier contact"}, app.Notes)
	assert.Equal(t, 4, user.Stats.ApplicationsInProgress)
}

func TestUpdateApplicationStatus_StatsInvariant(t *testing.T) {
	ctx := context.Background()
	s := signedInStore(t)

	s.UpdateApplicationStatus(ctx, "application-1", profile.StatusOffer, "")
	user := current(t, s)
	assert.Equal(t, 2, user.Stats.ApplicationsInProgress, "terminal status leaves the pipeline")

	app := user.Applications[0]
	assert.Equal(t, profile.StatusOffer, app.Status)
	assert.Empty(t, app.NextStep, "empty next step clears the field")
	assert.Equal(t, "À l'instant", app.LastUpdate)

	// Unknown statuses are ignored.
	s.UpdateApplicationStatus(ctx, "application-1", "Refusée", "step")
	assert.Equal(t, profile.StatusOffer, current(t, s).Applications[0].Status)

	// Moving back out of the terminal status restores the count.
	s.UpdateApplicationStatus(ctx, "application-1", profile.StatusInterview, "Préparer l'entretien")
	user = current(t, s)
	assert.Equal(t, 3, user.Stats.ApplicationsInProgress)
	assert.Equal(t, "Préparer l'entretien", user.Applications[0].NextStep)
}

func TestAddApplicationNote(t *testing.T) {
	ctx := context.Background()
	s := signedInStore(t)

	s.AddApplicationNote(ctx, "application-2", "Relance envoyée")
	s.AddApplicationNote(ctx, "application-2", "   ")

	for _, app := range current(t, s).Applications {
		if app.ID == "application-2" {
			assert.Equal(t, []string{"Relance envoyée"}, app.Notes)
			assert.Equal(t, "À l'instant", app.LastUpdate)
		}
	}
}

func TestUpdateApplication_PartialPatch(t *testing.T) {
	ctx := context.Background()
	s := signedInStore(t)

	company := "HelloWork Group"
	s.UpdateApplication(ctx, "application-1", ApplicationPatch{Company: &company})

	app := current(t, s).Applications[0]
	assert.Equal(t, "HelloWork Group", app.Company)
	assert.Equal(t, "Product Designer Senior", app.Title, "unpatched fields keep their value")
}

func TestUpdateSettings_ShallowMerge(t *testing.T) {
	ctx := context.Background()
	s := signedInStore(t)

	push := false
	s.UpdateSettings(ctx, profile.SettingsPatch{PushNotifications: &push})

	settings := current(t, s).Settings
	assert.False(t, settings.PushNotifications)
	assert.True(t, settings.EmailSubscriptions, "unpatched fields keep their value")
	assert.Equal(t, "Complet", settings.CookieConsent)
}

func TestUpdateIdentity(t *testing.T) {
	ctx := context.Background()
	s := signedInStore(t)

	name := "Marie Curie"
	title := "Physicienne"
	s.UpdateIdentity(ctx, IdentityPatch{Name: &name, Title: &title})

	user := current(t, s)
	assert.Equal(t, "Marie Curie", user.Name)
	assert.Equal(t, "MC", user.AvatarInitials, "initials follow the name")
	assert.Equal(t, "Physicienne", user.Title)

	// Blank names are ignored, other fields still apply.
	blank := "   "
	bio := "Bio"
	s.UpdateIdentity(ctx, IdentityPatch{Name: &blank, Bio: &bio})
	user = current(t, s)
	assert.Equal(t, "Marie Curie", user.Name)
	assert.Equal(t, "Bio", user.Bio)
}

func TestMutation_PersistsDurably(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	_, err := s.SignInWithEmail(ctx, Credentials{Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	s.ToggleFavorite(ctx, "job-6")

	// A fresh store sees the mutation.
	s2 := New(kv, WithSignInDelays(0, 0))
	s2.Hydrate(ctx)
	assert.Contains(t, current(t, s2).Favorites, "job-6")
}
