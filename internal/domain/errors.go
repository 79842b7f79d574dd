package domain

import (
	"errors"
	"fmt"
)

// ValidationError marks a caller contract violation at a component boundary,
// e.g. a negative unit price or an empty product ID. The component state is
// left unchanged when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
