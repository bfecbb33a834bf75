package account

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Loocist23/2ta-mobile-app/internal/profile"
	"github.com/Loocist23/2ta-mobile-app/internal/storage"
	"github.com/Loocist23/2ta-mobile-app/internal/toast"
)

// Persisted document keys.
const (
	// SessionKey holds the serialized session profile; absent when
	// signed out.
	SessionKey = "auth.currentUser"
	// DirectoryKey holds the serialized map of every known account,
	// keyed by normalized email.
	DirectoryKey = "auth.accounts"
)

// Simulated network round-trip delays for the sign-in flows.
const (
	defaultProviderDelay = 750 * time.Millisecond
	defaultEmailDelay    = 600 * time.Millisecond
)

// Store owns the session and the account directory. It is the single
// mutation entry point for both; see the package documentation for the
// ownership and error model.
type Store struct {
	mu       sync.Mutex
	kv       storage.Store
	log      zerolog.Logger
	notifier toast.Notifier

	providerDelay time.Duration
	emailDelay    time.Duration

	user     *profile.User
	accounts profile.Directory
	provider profile.Provider
	hydrated bool
	inFlight bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a logger. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithNotifier attaches the toast handle used to report operation outcomes
// to the user. Defaults to a discard notifier.
func WithNotifier(n toast.Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithSignInDelays overrides the simulated round-trip delays. Tests pass
// zero to keep sign-in flows instant.
func WithSignInDelays(provider, email time.Duration) Option {
	return func(s *Store) {
		s.providerDelay = provider
		s.emailDelay = email
	}
}

// New creates a store over the given durable storage. Call Hydrate before
// reading session state; auth operations hydrate lazily.
func New(kv storage.Store, opts ...Option) *Store {
	s := &Store{
		kv:            kv,
		log:           zerolog.Nop(),
		notifier:      toast.Nop{},
		providerDelay: defaultProviderDelay,
		emailDelay:    defaultEmailDelay,
		accounts:      profile.Directory{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns a deep copy of the session profile. ok is false while
// signed out. Callers must also check Hydrated: before hydration completes
// "no session" means "unknown", not "logged out".
func (s *Store) Current() (profile.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return profile.User{}, false
	}
	return s.user.Clone(), true
}

// Provider returns the auth provider of the active session, or
// profile.ProviderNone while signed out.
func (s *Store) Provider() profile.Provider {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.provider
}

// Hydrated reports whether the startup load has completed.
func (s *Store) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// InFlight reports whether a sign-in flow is currently running. The
// presentation layer uses it to disable auth buttons.
func (s *Store) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Accounts returns a deep copy of the account directory. Exposed for the
// CLI surface and tests; the directory itself never leaves the store.
func (s *Store) Accounts() profile.Directory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts.Clone()
}

// beginSignIn enforces single-flight sign-in at the controller level.
func (s *Store) beginSignIn() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return authorizationError("Une connexion est déjà en cours.")
	}
	s.inFlight = true
	return nil
}

func (s *Store) endSignIn() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

// wait simulates a network round trip, honoring context cancellation.
func (s *Store) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// newID mints a prefixed, generation-time-ordered identifier.
func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.Must(uuid.NewV7()).String())
}
