/* Explicit field validation, executed before any persistence call. */

package models

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// ValidationError names the offending field so handlers can return it as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "invalid email address"}
	}
	return nil
}

// Password policy: at least 8 characters with an upper, a lower, a digit
// and a special character.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return &ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return &ValidationError{Field: "password", Message: "password must contain upper and lower case letters, a digit and a special character"}
	}
	return nil
}

func ValidateFullname(fullname string) error {
	trimmed := strings.TrimSpace(fullname)
	if len(trimmed) < 3 {
		return &ValidationError{Field: "fullname", Message: "fullname requires at least 3 characters"}
	}
	if len(trimmed) > 50 {
		return &ValidationError{Field: "fullname", Message: "fullname allows at most 50 characters"}
	}
	return nil
}

func ValidateAge(age int) error {
	if age < 0 || age > 120 {
		return &ValidationError{Field: "age", Message: fmt.Sprintf("age %d is out of range 0-120", age)}
	}
	return nil
}

func ValidateGender(gender string) error {
	switch gender {
	case GenderMale, GenderFemale, GenderOther:
		return nil
	}
	return &ValidationError{Field: "gender", Message: "gender must be one of male, female or other"}
}

// ValidateSignup checks every field required to create an account.
func ValidateSignup(email, password, fullname string, age int, gender string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if err := ValidateFullname(fullname); err != nil {
		return err
	}
	if err := ValidateAge(age); err != nil {
		return err
	}
	return ValidateGender(gender)
}

// Validate checks only the fields a partial update actually carries.
func (u UserUpdate) Validate() error {
	if u.Fullname != nil {
		if err := ValidateFullname(*u.Fullname); err != nil {
			return err
		}
	}
	if u.Age != nil {
		if err := ValidateAge(*u.Age); err != nil {
			return err
		}
	}
	if u.Gender != nil {
		if err := ValidateGender(*u.Gender); err != nil {
			return err
		}
	}
	return nil
}
