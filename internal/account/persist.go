package account

import (
	"context"
	"encoding/json"

	"github.com/Loocist23/2ta-mobile-app/internal/profile"
)

// persistLocked writes the session and the directory after a state change.
// Caller holds s.mu.
//
// With an active session: store the session document, then upsert the
// directory entry for its normalized email (keeping an existing entry's
// provider and password; a brand-new entry defaults to the email provider
// with no stored secret), then rewrite the whole directory. The directory
// rewrite on every edit is accepted write amplification.
//
// With no session: remove the session key instead, then rewrite the
// directory.
//
// Write failures are logged, never surfaced; mutators cannot fail.
func (s *Store) persistLocked(ctx context.Context) {
	if s.user != nil {
		data, err := json.Marshal(s.user)
		if err != nil {
			s.log.Warn().Err(err).Msg("session serialize failed")
			return
		}
		if err := s.kv.Set(ctx, SessionKey, string(data)); err != nil {
			s.log.Warn().Err(err).Msg("session write failed")
		}

		s.upsertDirectoryLocked()
	} else {
		if err := s.kv.Remove(ctx, SessionKey); err != nil {
			s.log.Warn().Err(err).Msg("session remove failed")
		}
	}

	s.writeDirectoryLocked(ctx)
}

// upsertDirectoryLocked reconciles the live session into its directory
// entry. Caller holds s.mu and s.user is non-nil.
func (s *Store) upsertDirectoryLocked() {
	norm := normalizeEmail(s.user.Email)
	entry, ok := s.accounts[norm]
	if ok {
		entry.User = s.user.Clone()
	} else {
		entry = profile.StoredAccount{User: s.user.Clone(), Provider: profile.ProviderEmail}
	}
	s.accounts[norm] = entry
}

// writeDirectoryLocked rewrites the whole directory document.
func (s *Store) writeDirectoryLocked(ctx context.Context) {
	data, err := json.Marshal(s.accounts)
	if err != nil {
		s.log.Warn().Err(err).Msg("account directory serialize failed")
		return
	}
	if err := s.kv.Set(ctx, DirectoryKey, string(data)); err != nil {
		s.log.Warn().Err(err).Msg("account directory write failed")
	}
}
