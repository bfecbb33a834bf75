package account

import (
	"context"

	"github.com/Loocist23/2ta-mobile-app/internal/profile"
	"github.com/Loocist23/2ta-mobile-app/internal/toast"
)

// Fixed identities for the simulated federated flows.
const (
	googleUserID = "google-user-1"
	googleEmail  = "camille.martin@example.com"
	appleUserID  = "apple-user-1"
	appleEmail   = "camille.martin@icloud.com"
)

// Credentials are the inputs of the email sign-in flow. FullName is only
// used when the email has no existing account.
type Credentials struct {
	Email    string
	Password string
	FullName string
}

// PasswordUpdate are the inputs of UpdatePassword. CurrentPassword must be
// empty when the account has no password yet.
type PasswordUpdate struct {
	CurrentPassword string
	NewPassword     string
}

// SignInWithGoogle runs the simulated Google flow: after a fixed delay it
// derives the templated profile for the fixed Google identity, registers
// it in the directory under the google provider with no password, and
// makes it the active session. Always overwrites the active session, even
// when already signed in with the same identity.
func (s *Store) SignInWithGoogle(ctx context.Context) (profile.User, error) {
	return s.signInWithProvider(ctx, profile.ProviderGoogle, googleUserID, googleEmail)
}

// SignInWithApple runs the simulated Apple flow; see SignInWithGoogle.
func (s *Store) SignInWithApple(ctx context.Context) (profile.User, error) {
	return s.signInWithProvider(ctx, profile.ProviderApple, appleUserID, appleEmail)
}

func (s *Store) signInWithProvider(ctx context.Context, provider profile.Provider, id, email string) (profile.User, error) {
	if err := s.beginSignIn(); err != nil {
		return profile.User{}, err
	}
	defer s.endSignIn()

	if err := s.wait(ctx, s.providerDelay); err != nil {
		return profile.User{}, err
	}

	user := profile.Template()
	user.ID = id
	user.Email = email
	user.HasPassword = false

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked(ctx)

	s.accounts[normalizeEmail(email)] = profile.StoredAccount{
		User:     user.Clone(),
		Provider: provider,
	}
	s.setSessionLocked(ctx, user, provider)

	s.log.Info().Str("provider", string(provider)).Str("email", normalizeEmail(email)).Msg("signin")
	return user.Clone(), nil
}

// SignInWithEmail validates the credentials, then either signs into the
// stored account for that email or creates a new password-provider account
// from the template.
//
// Failure cases: malformed email or short password (validation), an
// existing federated account with no password set (authorization), a
// stored password mismatch (authorization).
func (s *Store) SignInWithEmail(ctx context.Context, creds Credentials) (profile.User, error) {
	norm := normalizeEmail(creds.Email)
	if err := validateEmail(norm); err != nil {
		return profile.User{}, err
	}
	if err := validateSignInPassword(creds.Password); err != nil {
		return profile.User{}, err
	}

	if err := s.beginSignIn(); err != nil {
		return profile.User{}, err
	}
	defer s.endSignIn()

	if err := s.wait(ctx, s.emailDelay); err != nil {
		return profile.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked(ctx)

	if entry, ok := s.accounts[norm]; ok {
		if entry.Provider.Federated() && entry.Password == "" {
			return profile.User{}, authorizationError("Ce compte utilise une connexion via un fournisseur externe. Veuillez vous connecter avec celui-ci.")
		}
		if entry.Password != creds.Password {
			return profile.User{}, authorizationError("Mot de passe incorrect.")
		}

		user := entry.User.Clone()
		s.setSessionLocked(ctx, user, entry.Provider)
		s.log.Info().Str("email", norm).Msg("signin")
		return user.Clone(), nil
	}

	user := profile.NewFromTemplate(newID("email-user"), displayName(creds.FullName, norm), norm, true)
	s.accounts[norm] = profile.StoredAccount{
		User:     user.Clone(),
		Provider: profile.ProviderEmail,
		Password: creds.Password,
	}
	s.setSessionLocked(ctx, user, profile.ProviderEmail)

	s.log.Info().Str("email", norm).Msg("account created")
	return user.Clone(), nil
}

// SignOut clears the session and the provider tag. The account directory
// is untouched; the account stays known to this device.
func (s *Store) SignOut(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked(ctx)

	if s.user == nil {
		return
	}
	s.user = nil
	s.provider = profile.ProviderNone
	s.persistLocked(ctx)
	s.log.Info().Msg("signout")
}

// RequestPasswordReset validates the email and checks that a resettable
// account exists. The reset email itself is simulated; success has no
// further side effect.
func (s *Store) RequestPasswordReset(ctx context.Context, email string) error {
	norm := normalizeEmail(email)
	if err := validateEmail(norm); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked(ctx)

	entry, ok := s.accounts[norm]
	if !ok {
		return notFoundError("Aucun compte n'est associé à cette adresse email.")
	}
	if entry.Provider.Federated() && entry.Password == "" {
		return authorizationError("Ce compte utilise une connexion via un fournisseur externe. Veuillez vous connecter avec celui-ci.")
	}

	s.log.Info().Str("email", norm).Msg("password reset requested")
	return nil
}

// UpdatePassword sets a new password for the active session.
//
// The new password must be at least 8 characters with a letter and a
// digit. Accounts that already hold a password require the matching
// current password; accounts without one reject a supplied current
// password, since there is nothing to verify it against. On success the
// session gains hasPassword and the secret is stored under the account's
// existing provider tag.
func (s *Store) UpdatePassword(ctx context.Context, update PasswordUpdate) error {
	if err := validateNewPassword(update.NewPassword); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked(ctx)

	if s.user == nil {
		return authorizationError("Aucune session active.")
	}

	norm := normalizeEmail(s.user.Email)
	entry, ok := s.accounts[norm]
	if !ok {
		entry = profile.StoredAccount{User: s.user.Clone(), Provider: s.provider}
	}

	if entry.Password != "" {
		if update.CurrentPassword == "" {
			return validationError("Veuillez renseigner votre mot de passe actuel.")
		}
		if entry.Password != update.CurrentPassword {
			return authorizationError("Mot de passe actuel incorrect.")
		}
	} else if update.CurrentPassword != "" {
		return validationError("Aucun mot de passe actuel n'est associé à ce compte.")
	}

	next := s.user.Clone()
	next.HasPassword = true
	s.user = &next

	entry.User = next.Clone()
	entry.Password = update.NewPassword
	s.accounts[norm] = entry
	s.persistLocked(ctx)

	s.notifier.Show(toast.Options{Message: "Votre mot de passe a bien été mis à jour.", Severity: toast.SeveritySuccess})
	s.log.Info().Str("email", norm).Msg("password updated")
	return nil
}

// DeleteAccount removes the active session's directory entry and signs
// out. Irreversible: the stored snapshot and password are gone.
func (s *Store) DeleteAccount(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked(ctx)

	if s.user == nil {
		return authorizationError("Aucune session active.")
	}

	norm := normalizeEmail(s.user.Email)
	delete(s.accounts, norm)
	s.user = nil
	s.provider = profile.ProviderNone
	s.persistLocked(ctx)

	s.notifier.Show(toast.Options{Message: "Votre compte et vos données associées ont été supprimés.", Severity: toast.SeverityInfo})
	s.log.Info().Str("email", norm).Msg("account deleted")
	return nil
}

// setSessionLocked installs user as the active session and persists.
// Caller holds s.mu; user ownership transfers to the store.
func (s *Store) setSessionLocked(ctx context.Context, user profile.User, provider profile.Provider) {
	s.user = &user
	s.provider = provider
	s.persistLocked(ctx)
}
