package resolver

import "errors"

// ErrNoConfigSpecified is returned when the user dismisses the configuration prompt
var ErrNoConfigSpecified = errors.New("no test configuration specified")
