package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var _ error = (*MissingArgumentError)(nil)
var _ error = (*ValidationError)(nil)

type MissingArgumentError struct {
	name string
	arg  string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.arg)
}

// Field returns the name of the Config field that is not set.
func (e *MissingArgumentError) Field() string {
	return e.name
}

type ValidationError struct {
	errors validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	errMsgs := make([]string, len(e.errors))
	for i, fe := range e.errors {
		errMsgs[i] = fmt.Sprintf("%s, bad value: '%v'", fe.Error(), fe.Value())
	}

	return fmt.Sprintf("found invalid values in the config: %s", strings.Join(errMsgs, "; "))
}
