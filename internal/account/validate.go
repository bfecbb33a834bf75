package account

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// emailPattern accepts the conventional local@domain.tld shape. This is a
// plausibility check for a local store, not RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// normalizeEmail lower-cases and trims an email; the result is the account
// directory key.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return validationError("Veuillez renseigner une adresse email.")
	}
	if !emailPattern.MatchString(email) {
		return validationError("L'adresse email n'est pas valide.")
	}
	return nil
}

// validateSignInPassword applies the sign-in rule: at least 6 characters.
func validateSignInPassword(password string) error {
	if len(password) < 6 {
		return validationError("Le mot de passe doit contenir au moins 6 caractères.")
	}
	return nil
}

// validateNewPassword applies the password-change rule: at least 8
// characters with at least one letter and one digit.
func validateNewPassword(password string) error {
	if len(password) < 8 {
		return validationError("Le nouveau mot de passe doit contenir au moins 8 caractères.")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return validationError("Le mot de passe doit contenir au moins une lettre et un chiffre.")
	}
	return nil
}

// displayName derives the profile name for a new email account: the given
// full name when present, otherwise the email's local part, title-cased
// per word.
func displayName(fullName, normalizedEmail string) string {
	source := strings.TrimSpace(fullName)
	if source == "" {
		source, _, _ = strings.Cut(normalizedEmail, "@")
	}
	name := cases.Title(language.French).String(source)
	if name == "" {
		return "Utilisateur 2TA"
	}
	return name
}
