package profile

// Clone returns a deep copy of the user. Every ownership boundary (persist,
// directory upsert, Current() reads) must go through Clone so the persisted
// snapshot and the live value never alias the same slices. Slices come back
// non-nil so emptied collections still serialize as [] rather than null.
func (u User) Clone() User {
	out := u
	out.Favorites = cloneStrings(u.Favorites)
	out.FollowedCompanies = cloneStrings(u.FollowedCompanies)

	out.Alerts = make([]Alert, len(u.Alerts))
	for i, alert := range u.Alerts {
		out.Alerts[i] = alert.Clone()
	}

	out.CVs = make([]CV, len(u.CVs))
	copy(out.CVs, u.CVs)

	out.Applications = make([]Application, len(u.Applications))
	for i, app := range u.Applications {
		out.Applications[i] = app.Clone()
	}

	out.Notifications = make([]Notification, len(u.Notifications))
	for i, n := range u.Notifications {
		out.Notifications[i] = n.Clone()
	}

	return out
}

// Clone returns a deep copy of the alert.
func (a Alert) Clone() Alert {
	out := a
	out.Keywords = cloneStrings(a.Keywords)
	return out
}

// Clone returns a deep copy of the application.
func (a Application) Clone() Application {
	out := a
	out.Notes = cloneStrings(a.Notes)
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Clone returns a deep copy of the notification.
func (n Notification) Clone() Notification {
	out := n
	if n.Link != nil {
		link := *n.Link
		out.Link = &link
	}
	return out
}

// Clone returns a deep copy of the stored account.
func (a StoredAccount) Clone() StoredAccount {
	out := a
	out.User = a.User.Clone()
	return out
}

// Clone returns a deep copy of the directory.
func (d Directory) Clone() Directory {
	out := make(Directory, len(d))
	for email, account := range d {
		out[email] = account.Clone()
	}
	return out
}
