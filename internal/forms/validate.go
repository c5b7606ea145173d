package forms

import (
	"regexp"

	"github.com/vishwasri/techfest-backend/internal/domain"
)

// Boundary validation for the form-ingest endpoints. The message strings
// are part of the client contract and must stay byte-for-byte stable.
var (
	nameRe   = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobileRe = regexp.MustCompile(`^[0-9]{10}$`)
)

const (
	msgAllFieldsRequired = "All fields are required"
	msgNameAlphabets     = "Name should contain only alphabets and spaces"
	msgInvalidEmail      = "Invalid email format"
	msgMobileTenDigits   = "Mobile number should be 10 digits"
	msgSponsorshipTerms  = "All fields are required and Terms must be accepted."
)

func validateCommon(name, email, mobile string) error {
	if !nameRe.MatchString(name) {
		return domain.Invalid(msgNameAlphabets)
	}
	if !emailRe.MatchString(email) {
		return domain.Invalid(msgInvalidEmail)
	}
	if !mobileRe.MatchString(mobile) {
		return domain.Invalid(msgMobileTenDigits)
	}
	return nil
}
