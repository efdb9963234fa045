// Package validation checks registration input before any state is touched.
package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/studentteacher/internal/common"
	"github.com/dmitrijs2005/studentteacher/internal/server/models"
)

// MinPasswordLength is the minimum number of characters in a password.
const MinPasswordLength = 6

// Field names reported in InvalidFieldError, in checking order.
const (
	FieldFirstName   = "FirstName"
	FieldLastName    = "LastName"
	FieldDateOfBirth = "DateOfBirth"
	FieldEmail       = "Email"
	FieldPassword    = "Password"
)

var emailRegex = regexp.MustCompile(`^[\w.-]+@[a-zA-Z\d.-]+\.[a-zA-Z]{2,6}$`)

// Validator is a pure rule checker. The clock only matters for the
// date-of-birth rule.
type Validator struct {
	now func() time.Time
}

func New(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{now: now}
}

// Validate returns a *common.InvalidFieldError naming the first failing field.
func (v *Validator) Validate(u models.DraftUser) error {
	if strings.TrimSpace(u.FirstName) == "" {
		return common.NewInvalidFieldError(FieldFirstName, "must not be empty")
	}
	if strings.TrimSpace(u.LastName) == "" {
		return common.NewInvalidFieldError(FieldLastName, "must not be empty")
	}
	if u.DateOfBirth.After(v.now()) {
		return common.NewInvalidFieldError(FieldDateOfBirth, "must not be in the future")
	}
	if err := ValidateEmail(u.Email); err != nil {
		return err
	}
	return ValidatePassword(u.Password)
}

// ValidateEmail checks the local-part@domain.tld shape.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return common.NewInvalidFieldError(FieldEmail, "must look like name@domain.tld")
	}
	return nil
}

// ValidatePassword requires at least MinPasswordLength characters, no
// whitespace, and at least one ASCII upper-case letter, lower-case letter and
// digit. Letters and digits outside ASCII count as neither.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return common.NewInvalidFieldError(FieldPassword, "must be at least 6 characters long")
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return common.NewInvalidFieldError(FieldPassword, "must not contain whitespace")
		case 'A' <= r && r <= 'Z':
			upper = true
		case 'a' <= r && r <= 'z':
			lower = true
		case '0' <= r && r <= '9':
			digit = true
		}
	}

	if !upper || !lower || !digit {
		return common.NewInvalidFieldError(FieldPassword, "needs an upper-case letter, a lower-case letter and a digit")
	}
	return nil
}
