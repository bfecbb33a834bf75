package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Loocist23/2ta-mobile-app/internal/profile"
	"github.com/Loocist23/2ta-mobile-app/internal/toast"
)

// Freshness labels applied by mutators. Timestamps in this model are
// human-readable labels, not machine time.
const (
	labelJustNow   = "À l'instant"
	labelCVUpdated = "Mis à jour à l'instant"
)

// mutate is the single code path for every profile mutator: take the lock,
// no-op without a session, deep-copy the session, apply fn, and commit the
// copy if fn reports a change. Mutators therefore never fail and never
// publish a partially-applied session.
func (s *Store) mutate(ctx context.Context, fn func(u *profile.User) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	next := s.user.Clone()
	if !fn(&next) {
		return
	}
	s.user = &next
	s.persistLocked(ctx)
}

// ToggleFavorite flips membership of jobID in the favorites set. Toggling
// twice is a no-op overall.
func (s *Store) ToggleFavorite(ctx context.Context, jobID string) {
	s.mutate(ctx, func(u *profile.User) bool {
		for i, id := range u.Favorites {
			if id == jobID {
				u.Favorites = append(u.Favorites[:i], u.Favorites[i+1:]...)
				return true
			}
		}
		u.Favorites = append(u.Favorites, jobID)
		return true
	})
}

// FollowCompany adds companyID to the followed set. Idempotent.
func (s *Store) FollowCompany(ctx context.Context, companyID string) {
	s.mutate(ctx, func(u *profile.User) bool {
		for _, id := range u.FollowedCompanies {
			if id == companyID {
				return false
			}
		}
		u.FollowedCompanies = append(u.FollowedCompanies, companyID)
		return true
	})
}

// UnfollowCompany removes companyID from the followed set. Idempotent.
func (s *Store) UnfollowCompany(ctx context.Context, companyID string) {
	s.mutate(ctx, func(u *profile.User) bool {
		for i, id := range u.FollowedCompanies {
			if id == companyID {
				u.FollowedCompanies = append(u.FollowedCompanies[:i], u.FollowedCompanies[i+1:]...)
				return true
			}
		}
		return false
	})
}

// MarkNotificationRead marks one notification read. Idempotent; unknown
// ids are ignored.
func (s *Store) MarkNotificationRead(ctx context.Context, notificationID string) {
	s.mutate(ctx, func(u *profile.User) bool {
		for i := range u.Notifications {
			if u.Notifications[i].ID == notificationID {
				if u.Notifications[i].Read {
					return false
				}
				u.Notifications[i].Read = true
				return true
			}
		}
		return false
	})
}

// MarkAllNotificationsRead marks every notification read. Idempotent.
func (s *Store) MarkAllNotificationsRead(ctx context.Context) {
	s.mutate(ctx, func(u *profile.User) bool {
		changed := false
		for i := range u.Notifications {
			if !u.Notifications[i].Read {
				u.Notifications[i].Read = true
				changed = true
			}
		}
		return changed
	})
}

// RemoveNotification deletes one notification by id.
func (s *Store) RemoveNotification(ctx context.Context, notificationID string) {
	s.mutate(ctx, func(u *profile.User) bool {
		for i := range u.Notifications {
			if u.Notifications[i].ID == notificationID {
				u.Notifications = append(u.Notifications[:i], u.Notifications[i+1:]...)
				return true
			}
		}
		return false
	})
}

// AlertDraft describes a saved search to create.
type AlertDraft struct {
	Title     string
	Keywords  []string
	Location  string
	Frequency profile.AlertFrequency
}

// CreateAlert creates a saved search and returns its id so the caller can
// navigate to it immediately. Keywords are trimmed and blanks dropped; a
// draft with no keywords or no location is ignored and returns "". New
// alerts start active and have never run. Returns "" while signed out.
func (s *Store) CreateAlert(ctx context.Context, draft AlertDraft) string {
	keywords := make([]string, 0, len(draft.Keywords))
	for _, kw := range draft.Keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	location := strings.TrimSpace(draft.Location)
	if len(keywords) == 0 || location == "" {
		return ""
	}

	title := strings.TrimSpace(draft.Title)
	if title == "" {
		title = fmt.Sprintf("%s - %s", strings.Join(keywords, ", "), location)
	}
	frequency := draft.Frequency
	if frequency != profile.FrequencyDaily && frequency != profile.FrequencyWeekly {
		frequency = profile.FrequencyDaily
	}

	id := newID("alert")
	created := false
	s.mutate(ctx, func(u *profile.User) bool {
		u.Alerts = append(u.Alerts, profile.Alert{
			ID:        id,
			Title:     title,
			Keywords:  keywords,
			Location:  location,
			Frequency: frequency,
			LastRun:   profile.AlertNeverRun,
			Active:    true,
		})
		created = true
		return true
	})
	if !created {
		return ""
	}

	s.notifier.Show(toast.Options{Message: "Votre alerte a bien été créée.", Severity: toast.SeveritySuccess})
	return id
}

// AlertPatch is a partial alert update. Nil fields keep their value.
// LastRun is patchable so a simulated background run can stamp itself.
type AlertPatch struct {
	Title     *string
	Keywords  *[]string
	Location  *string
	Frequency *profile.AlertFrequency
	LastRun   *string
	Active    *bool
}

// UpdateAlert applies a partial patch to one alert. Unknown ids are
// ignored.
func (s *Store) UpdateAlert(ctx context.Context, alertID string, patch AlertPatch) {
	s.mutate(ctx, func(u *profile.User) bool {
		for i := range u.Alerts {
			if u.Alerts[i].ID != alertID {
				continue
			}
			if patch.Title != nil {
				u.Alerts[i].Title = *patch.Title
			}
			if patch.Keywords != nil {
				u.Alerts[i].Keywords = append([]string(nil), (*patch.Keywords)...)
			}
			if patch.Location != nil {
				u.Alerts[i].Location = *patch.Location
			}
			if patch.Frequency != nil {
				u.Alerts[i].Frequency = *patch.Frequency
			}
			if patch.LastRun != nil {
				u.Alerts[i].LastRun = *patch.LastRun
			}
			if patch.Active != nil {
				u.Alerts[i].Active = *patch.Active
			}
			return true
		}
		return false
	})
}

// ToggleAlertActivation flips one alert's active flag.
func (s *Store) ToggleAlertActivation(ctx context.Context, alertID string) {
	s.mutate(ctx, func(u *profile.User) bool {
		for i := range u.Alerts {
			if u.Alerts[i].ID == alertID {
				u.Alerts[i].Active = !u.Alerts[i].Active
				return true
			}
		}
		return false
	})
}

// DeleteAlert removes one alert by id. Removal only, no tombstone.
func (s *Store) DeleteAlert(ctx context.Context, alertID string) {
	s.mutate(ctx, func(u *profile.User) bool {
		for i := range u.Alerts {
			if u.Alerts[i].ID == alertID {
				u.Alerts = append(u.Alerts[:i], u.Alerts[i+1:]...)
				return true
			}
		}
		return false
	})
}

// AddCV adds a document reference and returns its id. The first CV of a
// profile becomes primary. Blank names are ignored and return "".
func (s *Store) AddCV(ctx context.Context, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	id := newID("cv")
	added := false
	s.mutate(ctx, func(u *profile.User) bool {
		u.CVs = append(u.CVs, profile.CV{
			ID:        id,
			Name:      name,
			UpdatedAt: labelCVUpdated,
			IsPrimary: len(u.CVs) == 0,
		})
		added = true
		return true
	})
	if !added {
		return ""
	}
	return id
}

// RenameCV renames a document and refreshes its updated label.
func (s *Store) RenameCV(ctx context.Context, cvID, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	s.mutate(ctx, func(u *profile.User) bool {
		for i := range u.CVs {
			if u.CVs[i].ID == cvID {
				u.CVs[i].Name = name
				u.CVs[i].UpdatedAt = labelCVUpdated
				return true
			}
		}
		return false
	})
}

// RemoveCV deletes a document. When the removed CV was primary, the first
// remaining CV is promoted so a non-empty list always has exactly one
// primary.
func (s *Store) RemoveCV(ctx context.Context, cvID string) {
	s.mutate(ctx, func(u *profile.User) bool {
		for i := range u.CVs {
			if u.CVs[i].ID != cvID {
				continue
			}
			wasPrimary := u.CVs[i].IsPrimary
			u.CVs = append(u.CVs[:i], u.CVs[i+1:]...)
			if wasPrimary && len(u.CVs) > 0 {
				u.CVs[0].IsPrimary = true
			}
			return true
		}
		return false
	})
}

// SetPrimaryCV flags one CV as the application default and demotes all
// others.
func (s *Store) SetPrimaryCV(ctx context.Context, cvID string) {
	s.mutate(ctx, func(u *profile.User) bool {
		found := false
		for i := range u.CVs {
			if u.CVs[i].ID == cvID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
		for i := range u.CVs {
			u.CVs[i].IsPrimary = u.CVs[i].ID == cvID
		}
		return true
	})
}

// ApplicationDraft describes a new application. JobID may point into the
// job catalog or hold free text when the position came from elsewhere.
type ApplicationDraft struct {
	JobID    string
	Company  string
	Title    string
	Status   profile.ApplicationStatus
	NextStep string
	Notes    []string
}

// AddApplication records a new application at the head of the pipeline and
// returns its id. The status defaults to "sent", the freshness labels to
// now, and the draft notes are copied defensively. Stats are recomputed.
// Returns "" while signed out.
func (s *Store) AddApplication(ctx context.Context, draft ApplicationDraft) string {
	status := draft.Status
	if !status.Valid() {
		status = profile.StatusSent
	}

	notes := make([]string, 0, len(draft.Notes))
	for _, note := range draft.Notes {
		if note = strings.TrimSpace(note); note != "" {
			notes = append(notes, note)
		}
	}

	id := newID("application")
	added := false
	s.mutate(ctx, func(u *profile.User) bool {
		application := profile.Application{
			ID:         id,
			JobID:      draft.JobID,
			Company:    draft.Company,
			Title:      draft.Title,
			Status:     status,
			LastUpdate: labelJustNow,
			NextStep:   draft.NextStep,
			AppliedOn:  appliedOnLabel(time.Now()),
			Notes:      notes,
		}
		u.Applications = append([]profile.Application{application}, u.Applications...)
		recomputeStats(u)
		added = true
		return true
	})
	if !added {
		return ""
	}

	s.notifier.Show(toast.Options{
		Message:  fmt.Sprintf("Votre candidature pour \"%s\" a bien été envoyée.", draft.Title),
		Severity: toast.SeveritySuccess,
	})
	return id
}

// ApplicationPatch is a partial application update. The id and jobId are
// not patchable.
type ApplicationPatch struct {
	Company    *string
	Title      *string
	Status     *profile.ApplicationStatus
	LastUpdate *string
	NextStep   *string
}

// UpdateApplication applies a partial patch to one application,
// recomputing stats when the status changes. Unknown ids are ignored.
func (s *Store) UpdateApplication(ctx context.Context, applicationID string, patch ApplicationPatch) {
	s.mutate(ctx, func(u *profile.User) bool {
		for i := range u.Applications {
			if u.Applications[i].ID != applicationID {
				continue
			}
			if patch.Company != nil {
				u.Applications[i].Company = *patch.Company
			}
			if patch.Title != nil {
				u.Applications[i].Title = *patch.Title
			}
			if patch.Status != nil && patch.Status.Valid() {
				u.Applications[i].Status = *patch.Status
				recomputeStats(u)
			}
			if patch.LastUpdate != nil {
				u.Applications[i].LastUpdate = *patch.LastUpdate
			}
			if patch.NextStep != nil {
				u.Applications[i].NextStep = *patch.NextStep
			}
			return true
		}
		return false
	})
}

// AddApplicationNote appends one note to an application's history and
// refreshes its freshness label. Notes are append-only. Blank notes are
// ignored.
func (s *Store) AddApplicationNote(ctx context.Context, applicationID, note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	s.mutate(ctx, func(u *profile.User) bool {
		for i := range u.Applications {
			if u.Applications[i].ID == applicationID {
				u.Applications[i].Notes = append(u.Applications[i].Notes, note)
				u.Applications[i].LastUpdate = labelJustNow
				return true
			}
		}
		return false
	})
}

// UpdateApplicationStatus moves one application to a new status, replaces
// its next step (empty clears it), refreshes the freshness label and
// recomputes stats. Unknown statuses are ignored.
func (s *Store) UpdateApplicationStatus(ctx context.Context, applicationID string, status profile.ApplicationStatus, nextStep string) {
	if !status.Valid() {
		return
	}
	s.mutate(ctx, func(u *profile.User) bool {
		for i := range u.Applications {
			if u.Applications[i].ID == applicationID {
				u.Applications[i].Status = status
				u.Applications[i].NextStep = strings.TrimSpace(nextStep)
				u.Applications[i].LastUpdate = labelJustNow
				recomputeStats(u)
				return true
			}
		}
		return false
	})
}

// UpdateSettings shallow-merges a partial patch into the settings.
func (s *Store) UpdateSettings(ctx context.Context, patch profile.SettingsPatch) {
	s.mutate(ctx, func(u *profile.User) bool {
		changed := false
		if patch.PushNotifications != nil {
			u.Settings.PushNotifications = *patch.PushNotifications
			changed = true
		}
		if patch.EmailSubscriptions != nil {
			u.Settings.EmailSubscriptions = *patch.EmailSubscriptions
			changed = true
		}
		if patch.CookieConsent != nil {
			u.Settings.CookieConsent = *patch.CookieConsent
			changed = true
		}
		if patch.AccessibilityMode != nil {
			u.Settings.AccessibilityMode = *patch.AccessibilityMode
			changed = true
		}
		return changed
	})
}

// IdentityPatch is a partial update of the editable identity fields. The
// email is the account key and cannot be patched.
type IdentityPatch struct {
	Name     *string
	Title    *string
	Location *string
	Phone    *string
	Bio      *string
}

// UpdateIdentity applies a partial identity patch, rederiving the avatar
// initials when the name changes. Blank names are ignored.
func (s *Store) UpdateIdentity(ctx context.Context, patch IdentityPatch) {
	s.mutate(ctx, func(u *profile.User) bool {
		changed := false
		if patch.Name != nil {
			if name := strings.TrimSpace(*patch.Name); name != "" {
				u.Name = name
				u.AvatarInitials = profile.Initials(name)
				changed = true
			}
		}
		if patch.Title != nil {
			u.Title = *patch.Title
			changed = true
		}
		if patch.Location != nil {
			u.Location = *patch.Location
			changed = true
		}
		if patch.Phone != nil {
			u.Phone = *patch.Phone
			changed = true
		}
		if patch.Bio != nil {
			u.Bio = *patch.Bio
			changed = true
		}
		return changed
	})
}

// recomputeStats refreshes the derived counters after an application
// change. ApplicationsInProgress counts non-terminal applications.
func recomputeStats(u *profile.User) {
	count := 0
	for _, application := range u.Applications {
		if !application.Status.Terminal() {
			count++
		}
	}
	u.Stats.ApplicationsInProgress = count
}

// appliedOnLabel renders the human-readable creation label for a new
// application.
func appliedOnLabel(t time.Time) string {
	return fmt.Sprintf("Candidature du %s", t.Format("02/01/2006"))
}
