package genquiz

import "errors"

// Internal error kinds. The HTTP handler collapses all of them into one
// generic client-facing message; they exist so server-side logs can tell
// configuration problems, provider failures and format drift apart.
var (
	ErrMissingCredential = errors.New("provider API key not configured")
	ErrInvalidResponse   = errors.New("invalid response from provider")
	ErrParse             = errors.New("provider returned malformed quiz JSON")
	ErrValidation        = errors.New("provider returned an invalid quiz structure")
)
