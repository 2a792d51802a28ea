package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"ada@example.com",
		"first.last@sub.example.co.uk",
	}
	for _, email := range valid {
		assert.True(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing@domain",
		"@example.com",
		"spaces in@example.com",
	}
	for _, email := range invalid {
		assert.False(t, ValidateEmail(email), email)
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+14155550100",
		"14155550100",
		"+44 20 7946 0958",
		"(415) 555-0100",
	}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), phone)
	}

	invalid := []string{
		"",
		"abc",
		"12345",
		"+0123456789",
	}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), phone)
	}
}
