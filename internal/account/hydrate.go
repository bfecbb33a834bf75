package account

import (
	"context"
	"encoding/json"

	"github.com/Loocist23/2ta-mobile-app/internal/profile"
)

// Hydrate loads the two persisted documents. It flips the hydrated flag
// exactly once, whether or not the load succeeds: a missing or corrupt
// document reads as empty state and never blocks startup. Safe to call
// repeatedly; only the first call does work.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked(ctx)
}

func (s *Store) hydrateLocked(ctx context.Context) {
	if s.hydrated {
		return
	}
	s.hydrated = true

	if raw, ok, err := s.kv.Get(ctx, DirectoryKey); err != nil {
		s.log.Warn().Err(err).Msg("account directory read failed, starting empty")
	} else if ok {
		var dir profile.Directory
		if err := json.Unmarshal([]byte(raw), &dir); err != nil {
			s.log.Warn().Err(err).Msg("account directory unreadable, starting empty")
		} else if dir != nil {
			s.accounts = dir
		}
	}

	raw, ok, err := s.kv.Get(ctx, SessionKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("session read failed, starting signed out")
		return
	}
	if !ok {
		return
	}

	var user profile.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn().Err(err).Msg("session unreadable, starting signed out")
		return
	}

	restored := user.Clone()
	s.user = &restored
	s.provider = profile.ProviderEmail
	if entry, found := s.accounts[normalizeEmail(user.Email)]; found {
		s.provider = entry.Provider
	}
	s.log.Info().Str("email", normalizeEmail(user.Email)).Msg("session rehydrated")
}
