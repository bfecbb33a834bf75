package profile

// Provider identifies the authentication method bound to a stored account.
type Provider string

const (
	// ProviderNone tags the signed-out state.
	ProviderNone Provider = ""
	// ProviderGoogle tags accounts created through the simulated Google flow.
	ProviderGoogle Provider = "google"
	// ProviderApple tags accounts created through the simulated Apple flow.
	ProviderApple Provider = "apple"
	// ProviderEmail tags password-based accounts. The historical storage
	// format spells this "email", not "password".
	ProviderEmail Provider = "email"
)

// Federated reports whether the provider is an external identity provider.
func (p Provider) Federated() bool {
	return p == ProviderGoogle || p == ProviderApple
}

// ApplicationStatus is the lifecycle state of a job application.
type ApplicationStatus string

const (
	StatusSent        ApplicationStatus = "Candidature envoyée"
	StatusUnderReview ApplicationStatus = "En cours d'étude"
	StatusInterview   ApplicationStatus = "Entretien planifié"
	// StatusOffer is the terminal status. Applications in this state no
	// longer count toward Stats.ApplicationsInProgress.
	StatusOffer ApplicationStatus = "Proposition reçue"
)

// AllStatuses lists the valid application statuses in pipeline order.
var AllStatuses = []ApplicationStatus{StatusSent, StatusUnderReview, StatusInterview, StatusOffer}

// Valid reports whether s is one of the known statuses.
func (s ApplicationStatus) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether the status ends the in-progress pipeline.
func (s ApplicationStatus) Terminal() bool {
	return s == StatusOffer
}

// AlertFrequency is how often a saved search alert runs.
type AlertFrequency string

const (
	FrequencyDaily  AlertFrequency = "daily"
	FrequencyWeekly AlertFrequency = "weekly"
)

// AlertNeverRun is the LastRun label for an alert that has not fired yet.
const AlertNeverRun = "Never"

// NotificationType categorizes inbox entries.
type NotificationType string

const (
	NotificationApplication NotificationType = "application"
	NotificationAlert       NotificationType = "alert"
	NotificationInformation NotificationType = "information"
)

// LinkKind tags the target of a notification deep-link.
type LinkKind string

const (
	LinkJob         LinkKind = "job"
	LinkApplication LinkKind = "application"
	LinkAlert       LinkKind = "alert"
)

// Link points a notification at a job offer, an application or an alert.
// The presentation layer uses it for deep navigation; this core only
// stores and round-trips it.
type Link struct {
	Kind LinkKind `json:"kind"`
	ID   string   `json:"id"`
}

// Notification is one inbox entry.
type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Date    string           `json:"date"`
	Type    NotificationType `json:"type"`
	Read    bool             `json:"read"`
	Link    *Link            `json:"link,omitempty"`
}

// Alert is a saved search with a run schedule.
type Alert struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Keywords  []string       `json:"keywords"`
	Location  string         `json:"location"`
	Frequency AlertFrequency `json:"frequency"`
	LastRun   string         `json:"lastRun"`
	Active    bool           `json:"active"`
}

// CV is a named document reference. At most one CV per profile carries
// IsPrimary; the account store maintains that invariant.
type CV struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UpdatedAt string `json:"updatedAt"`
	IsPrimary bool   `json:"isPrimary,omitempty"`
}

// Application is one job application. JobID may reference the job catalog
// or be a free-text identifier when no catalog entry exists. Notes are
// append-only.
type Application struct {
	ID         string            `json:"id"`
	JobID      string            `json:"jobId"`
	Company    string            `json:"company"`
	Title      string            `json:"title"`
	Status     ApplicationStatus `json:"status"`
	LastUpdate string            `json:"lastUpdate"`
	NextStep   string            `json:"nextStep,omitempty"`
	AppliedOn  string            `json:"appliedOn,omitempty"`
	Notes      []string          `json:"notes"`
}

// Stats holds derived profile counters. ApplicationsInProgress is
// recomputed by the account store on every application change and always
// equals the count of non-terminal applications.
type Stats struct {
	ProfileViews           int `json:"profileViews"`
	RecruiterMessages      int `json:"recruiterMessages"`
	ApplicationsInProgress int `json:"applicationsInProgress"`
}

// Settings holds the profile feature toggles.
type Settings struct {
	PushNotifications  bool   `json:"pushNotifications"`
	EmailSubscriptions bool   `json:"emailSubscriptions"`
	CookieConsent      string `json:"cookieConsent"`
	AccessibilityMode  bool   `json:"accessibilityMode"`
}

// SettingsPatch is a partial settings update. Nil fields are left unchanged.
type SettingsPatch struct {
	PushNotifications  *bool
	EmailSubscriptions *bool
	CookieConsent      *string
	AccessibilityMode  *bool
}

// User is the live profile of the authenticated person (the Session value).
// The email, lower-cased and trimmed, is the unique account key.
type User struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Email             string         `json:"email"`
	AvatarInitials    string         `json:"avatarInitials"`
	Title             string         `json:"title"`
	Location          string         `json:"location"`
	Phone             string         `json:"phone,omitempty"`
	Bio               string         `json:"bio,omitempty"`
	HasPassword       bool           `json:"hasPassword"`
	Favorites         []string       `json:"favorites"`
	Alerts            []Alert        `json:"alerts"`
	CVs               []CV           `json:"cvs"`
	Applications      []Application  `json:"applications"`
	Notifications     []Notification `json:"notifications"`
	FollowedCompanies []string       `json:"followedCompanies"`
	Stats             Stats          `json:"stats"`
	Settings          Settings       `json:"settings"`
}

// StoredAccount pairs a profile snapshot with its auth provider. Password is
// set only for email-provider accounts, or once a federated account creates
// one. Stored as-is: credential hardening is out of scope for this local,
// simulated auth store.
type StoredAccount struct {
	User     User     `json:"user"`
	Provider Provider `json:"provider"`
	Password string   `json:"password,omitempty"`
}

// Directory is the durable map of every known local account, keyed by
// normalized email.
type Directory map[string]StoredAccount
