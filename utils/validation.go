// utils/validation.go
package utils

import (
	"regexp"
	"strings"
	"time"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Regular expression for international phone numbers
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateDate checks for an ISO calendar date (YYYY-MM-DD)
func ValidateDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// ValidateTimeOfDay checks for an HH:MM time-of-day value
func ValidateTimeOfDay(value string) bool {
	_, err := time.Parse(TimeLayout, value)
	return err == nil
}
