package account

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Loocist23/2ta-mobile-app/internal/storage"
	"github.com/Loocist23/2ta-mobile-app/internal/toast"
)

func TestCurrent_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	_, err := s.SignInWithEmail(ctx, Credentials{Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	user, ok := s.Current()
	require.True(t, ok)
	user.Favorites = append(user.Favorites, "job-9")
	user.Name = "Changed"

	fresh, _ := s.Current()
	assert.NotContains(t, fresh.Favorites, "job-9")
	assert.NotEqual(t, "Changed", fresh.Name)
}

func TestSignIn_SingleFlight(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemStore()
	s := New(kv, WithSignInDelays(200*time.Millisecond, 200*time.Millisecond))
	s.Hydrate(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.SignInWithGoogle(ctx)
		assert.NoError(t, err)
	}()

	// Wait for the first flow to take the in-flight slot.
	deadline := time.Now().Add(2 * time.Second)
	for !s.InFlight() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	require.True(t, s.InFlight())

	_, err := s.SignInWithEmail(ctx, Credentials{Email: "a@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.True(t, IsAuthorization(err))
	assert.Equal(t, "Une connexion est déjà en cours.", err.Error())

	wg.Wait()
	assert.False(t, s.InFlight())
}

func TestSignIn_ContextCancellation(t *testing.T) {
	kv := storage.NewMemStore()
	s := New(kv, WithSignInDelays(time.Minute, time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SignInWithGoogle(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.InFlight())
}

func TestNewID_PrefixedAndOrdered(t *testing.T) {
	ids := []string{newID("alert"), newID("alert"), newID("alert")}

	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	assert.Equal(t, ids, sorted, "ids sort in generation order")

	for _, id := range ids {
		assert.True(t, strings.HasPrefix(id, "alert-"))
	}
	assert.NotEqual(t, ids[0], ids[1])
}

// recordingNotifier captures shown notices for assertions.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []toast.Options
}

func (n *recordingNotifier) Show(opts toast.Options) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, opts)
}

func (n *recordingNotifier) messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.notices))
	for i, opt := range n.notices {
		out[i] = opt.Message
	}
	return out
}

func TestOperations_RaiseToasts(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	s := New(storage.NewMemStore(), WithSignInDelays(0, 0), WithNotifier(notifier))
	s.Hydrate(ctx)

	_, err := s.SignInWithEmail(ctx, Credentials{Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	s.CreateAlert(ctx, AlertDraft{Keywords: []string{"Go"}, Location: "Paris"})
	s.AddApplication(ctx, ApplicationDraft{Title: "Développeur Go", Company: "SaaSly"})
	require.NoError(t, s.UpdatePassword(ctx, PasswordUpdate{CurrentPassword: "secret123", NewPassword: "newpass99"}))
	require.NoError(t, s.DeleteAccount(ctx))

	assert.Equal(t, []string{
		"Votre alerte a bien été créée.",
		"Votre candidature pour \"Développeur Go\" a bien été envoyée.",
		"Votre mot de passe a bien été mis à jour.",
		"Votre compte et vos données associées ont été supprimés.",
	}, notifier.messages())
}
