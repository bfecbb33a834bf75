package profile

import "strings"

// Template returns the seeded demo profile every new sign-in starts from.
// The caller receives a fresh deep copy and owns it outright.
func Template() User {
	return templateUser.Clone()
}

// NewFromTemplate builds a profile for a new identity: the template content
// with the given identity fields applied and the avatar initials rederived.
func NewFromTemplate(id, name, email string, hasPassword bool) User {
	u := Template()
	u.ID = id
	u.Name = name
	u.Email = email
	u.AvatarInitials = Initials(name)
	u.HasPassword = hasPassword
	return u
}

// Initials derives the avatar initials from a display name: first letter of
// the first and last words, upper-cased. Single-word names use their first
// two characters. Empty names fall back to "US".
func Initials(name string) string {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "US"
	case 1:
		word := []rune(fields[0])
		if len(word) == 1 {
			return strings.ToUpper(string(word))
		}
		return strings.ToUpper(string(word[:2]))
	default:
		first := []rune(fields[0])
		last := []rune(fields[len(fields)-1])
		return strings.ToUpper(string(first[0]) + string(last[0]))
	}
}

var templateUser = User{
	ID:             "user-1",
	Name:           "Camille Martin",
	Email:          "camille.martin@example.com",
	AvatarInitials: "CM",
	Title:          "Product Designer",
	Location:       "Paris, Île-de-France",
	HasPassword:    false,
	Favorites:      []string{"job-1", "job-3"},
	Alerts: []Alert{
		{
			ID:        "alert-1",
			Title:     "UX Designer - Télétravail",
			Keywords:  []string{"UX", "Figma", "Research"},
			Location:  "Télétravail",
			Frequency: FrequencyDaily,
			LastRun:   "Il y a 2 heures",
			Active:    true,
		},
		{
			ID:        "alert-2",
			Title:     "Product Manager - Paris",
			Keywords:  []string{"Product", "Agile"},
			Location:  "Paris (75)",
			Frequency: FrequencyWeekly,
			LastRun:   "Hier",
			Active:    true,
		},
		{
			ID:        "alert-3",
			Title:     "Lead Designer - Lyon",
			Keywords:  []string{"Design System"},
			Location:  "Lyon (69)",
			Frequency: FrequencyWeekly,
			LastRun:   "Il y a 3 jours",
			Active:    false,
		},
	},
	CVs: []CV{
		{ID: "cv-1", Name: "CV_Product_Designer.pdf", UpdatedAt: "Mis à jour il y a 5 jours", IsPrimary: true},
		{ID: "cv-2", Name: "Portfolio_2025.pdf", UpdatedAt: "Mis à jour il y a 12 jours"},
	},
	Applications: []Application{
		{
			ID:         "application-1",
			JobID:      "job-1",
			Company:    "HelloWork",
			Title:      "Product Designer Senior",
			Status:     StatusInterview,
			LastUpdate: "Entretien le 15 mai",
			NextStep:   "Préparer le cas pratique",
			AppliedOn:  "Candidature du 2 mai",
			Notes:      []string{},
		},
		{
			ID:         "application-2",
			JobID:      "job-4",
			Company:    "SaaSly",
			Title:      "UX Researcher",
			Status:     StatusSent,
			LastUpdate: "Envoyée il y a 3 jours",
			AppliedOn:  "Candidature du 12 mai",
			Notes:      []string{},
		},
		{
			ID:         "application-3",
			JobID:      "job-3",
			Company:    "RetailX",
			Title:      "Lead Product Designer",
			Status:     StatusUnderReview,
			LastUpdate: "Reçu il y a 1 semaine",
			AppliedOn:  "Candidature du 7 mai",
			Notes:      []string{},
		},
	},
	Notifications: []Notification{
		{
			ID:      "notification-1",
			Title:   "Réponse à votre candidature",
			Message: "L'équipe HelloWork souhaite vous rencontrer.",
			Date:    "Il y a 2 heures",
			Type:    NotificationApplication,
			Read:    false,
			Link:    &Link{Kind: LinkApplication, ID: "application-1"},
		},
		{
			ID:      "notification-2",
			Title:   "Nouvelle offre pour votre alerte",
			Message: "3 nouvelles offres correspondent à \"UX Designer - Télétravail\".",
			Date:    "Il y a 5 heures",
			Type:    NotificationAlert,
			Read:    false,
			Link:    &Link{Kind: LinkAlert, ID: "alert-1"},
		},
		{
			ID:      "notification-3",
			Title:   "Astuce carrière",
			Message: "Découvrez comment optimiser votre portfolio pour les recruteurs.",
			Date:    "Hier",
			Type:    NotificationInformation,
			Read:    true,
		},
	},
	FollowedCompanies: []string{"company-hellowork"},
	Stats: Stats{
		ProfileViews:           126,
		RecruiterMessages:      4,
		ApplicationsInProgress: 3,
	},
	Settings: Settings{
		PushNotifications:  true,
		EmailSubscriptions: true,
		CookieConsent:      "Complet",
		AccessibilityMode:  false,
	},
}
