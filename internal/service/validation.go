package service

import (
	"regexp"
	"strings"
)

// Validation error messages. The exact strings are part of the API
// contract and are returned verbatim in the "details" array.
const (
	msgNameRequired  = "Name is required and must be a non-empty string"
	msgEmailRequired = "Email is required and must be a non-empty string"
	msgEmailInvalid  = "Email must be a valid email address"
)

// emailPattern matches local@domain.tld where no part contains
// whitespace or a second "@".
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateUserPayload checks a decoded JSON object for the fields a user
// create/update requires. It accepts the payload untyped so that wrong
// JSON types ({"name": 123}) are reported as field errors rather than
// decode failures.
//
// Errors accumulate in field order so the client sees every defect in
// one round trip. The two email messages are mutually exclusive: the
// format check only runs once the presence check passes. The payload is
// never mutated; trimming for storage happens in the service methods.
func ValidateUserPayload(payload map[string]any) []string {
	var errs []string

	name, ok := payload["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		errs = append(errs, msgNameRequired)
	}

	email, ok := payload["email"].(string)
	trimmed := strings.TrimSpace(email)
	switch {
	case !ok || trimmed == "":
		errs = append(errs, msgEmailRequired)
	case !emailPattern.MatchString(trimmed):
		errs = append(errs, msgEmailInvalid)
	}

	return errs
}
