package querybuilder

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two client-error conditions the builders detect.
var (
	// ErrNoData is returned when a partial update carries no fields.
	ErrNoData = errors.New("no data to update")

	// ErrUnknownFilter is returned when a filter key is outside the
	// resource's vocabulary.
	ErrUnknownFilter = errors.New("unknown filter key")
)

// UnknownFilterError carries the offending key for a precise client message.
type UnknownFilterError struct {
	Key string
}

func (e *UnknownFilterError) Error() string {
	return fmt.Sprintf("unknown filter key: %q", e.Key)
}

func (e *UnknownFilterError) Is(target error) bool {
	return target == ErrUnknownFilter
}
