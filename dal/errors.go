package dal

import (
	"fmt"
	"strings"
)

const (
	errPrefixConfiguration = `configuration: `
	errPrefixConsistency   = `internal consistency: `
)

// ConfigurationError describes an invalid column/aggregation pairing or other
// bad report definition.  These are detected before any SQL is compiled and
// should block the offending report from being saved.
func ConfigurationError(format string, values ...interface{}) error {
	return fmt.Errorf(errPrefixConfiguration+format, values...)
}

func IsConfigurationErr(err error) bool {
	if err == nil {
		return false
	}

	return strings.HasPrefix(err.Error(), errPrefixConfiguration)
}

// InternalConsistencyError describes a decode or dialect failure that cannot
// be caused by user input; it indicates a bug in the compiler or a dialect
// adapter.  Callers should surface these as a hard "report could not be
// displayed" failure rather than emitting partial output.
func InternalConsistencyError(format string, values ...interface{}) error {
	return fmt.Errorf(errPrefixConsistency+format, values...)
}

func IsInternalConsistencyErr(err error) bool {
	if err == nil {
		return false
	}

	return strings.HasPrefix(err.Error(), errPrefixConsistency)
}
