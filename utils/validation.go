// utils/validation.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// phoneRegex allows an optional + prefix followed by 7-15 digits.
var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

// ValidateEmail checks whether the given address is a well-formed email.
func ValidateEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// ValidatePhone checks if a phone number is in a valid international format.
func ValidatePhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phoneRegex.MatchString(cleaned)
}
