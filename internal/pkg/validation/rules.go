package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// USN (university serial number) pattern - uppercase alphanumeric
	USNPattern = `^[A-Z0-9]{2,30}$`

	// Attendance date pattern - YYYY-MM-DD
	DatePattern = `^\d{4}-\d{2}-\d{2}$`

	// Password min length
	PasswordMinLength = 6
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
	USN   *regexp.Regexp
	Date  *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	USN:   regexp.MustCompile(USNPattern),
	Date:  regexp.MustCompile(DatePattern),
}

// IsValidDate reports whether the value matches the YYYY-MM-DD shape.
func IsValidDate(value string) bool {
	return CompiledPatterns.Date.MatchString(value)
}

// IsValidUSN reports whether the value is an acceptable student USN.
func IsValidUSN(value string) bool {
	return CompiledPatterns.USN.MatchString(value)
}
