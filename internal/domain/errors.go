package domain

import "errors"

var (
	// ErrConfig indicates missing or invalid configuration. Raised before
	// any network activity is attempted.
	ErrConfig = errors.New("invalid configuration")
	// ErrAuth indicates the login redirect did not resolve to a user page.
	ErrAuth = errors.New("authentication failed")
	// ErrInvalidRange indicates an unparsable or inverted export range.
	ErrInvalidRange = errors.New("invalid export range")
	// ErrFetch indicates a request to the origin failed after retries.
	ErrFetch = errors.New("fetch failed")
	// ErrParse indicates an expected page structure was missing. Absent
	// distance or duration sub-fields are not parse errors.
	ErrParse = errors.New("parse failed")
)
