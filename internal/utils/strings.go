package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9_%+\-]([a-zA-Z0-9._%+\-]*[a-zA-Z0-9_%+\-])?@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)
	digitsRegex = regexp.MustCompile(`[^0-9]`)
)

// IsValidEmail checks if a string is a valid email address
func IsValidEmail(email string) bool {
	// - Local part doesn't start or end with dots
	// - Domain parts don't start or end with dashes
	return emailRegex.MatchString(email)
}

// MaskEmail masks the local part of an email address
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	localPart := parts[0]
	domain := parts[1]

	var maskedLocal string
	if len(localPart) <= 2 {
		maskedLocal = localPart
	} else {
		maskedLocal = localPart[:2] + strings.Repeat("*", len(localPart)-2)
	}

	return maskedLocal + "@" + domain
}

// MaskAccountNumber masks a bank account number, keeping only the last 4 digits visible
func MaskAccountNumber(account string) string {
	clean := digitsRegex.ReplaceAllString(account, "")
	if len(clean) <= 4 {
		return clean
	}

	return strings.Repeat("*", len(clean)-4) + clean[len(clean)-4:]
}
