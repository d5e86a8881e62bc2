package uri

import (
	"errors"

	"github.com/ghettovoice/uribuilder/internal/errorutil"
	"github.com/ghettovoice/uribuilder/params"
)

// Error is the type of sentinel errors returned by this package.
type Error = errorutil.Error

const (
	// ErrMalformedURI is returned by [Parse] when the input can not be decomposed into URI components.
	ErrMalformedURI Error = "malformed URI"
	// ErrMissingComponent is returned when a required component is absent.
	// Use [MissingComponent] to get the component name.
	ErrMissingComponent Error = "missing URI component"
	// ErrInvalidParameterType is returned when a query parameter value is not a scalar.
	ErrInvalidParameterType = params.ErrInvalidType
)

type missingComponentError struct {
	name string
}

func (e *missingComponentError) Error() string { return string(ErrMissingComponent) + ": " + e.name }

func (e *missingComponentError) Unwrap() error { return ErrMissingComponent }

func newMissingComponentErr(name string) error {
	return &missingComponentError{name} //errtrace:skip
}

// MissingComponent returns the name of the first missing component ("scheme", "host" or "query")
// reported in err.
func MissingComponent(err error) (string, bool) {
	var e *missingComponentError
	if errors.As(err, &e) {
		return e.name, true
	}
	return "", false
}
