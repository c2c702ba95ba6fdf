package placeholder

import "fmt"

var _ error = (*UnknownPlaceholderError)(nil)
var _ error = (*MarshalError)(nil)

type UnknownPlaceholderError struct {
	name string
}

func (e *UnknownPlaceholderError) Error() string {
	return fmt.Sprintf("unknown placeholder: %s", e.name)
}

// Name returns the placeholder name that was not found.
func (e *UnknownPlaceholderError) Name() string {
	return e.name
}

type MarshalError struct {
	name string
	err  error
}

func (e *MarshalError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("couldn't build %s output: %s", e.name, e.err.Error())
	}

	return fmt.Sprintf("couldn't build %s output", e.name)
}

func (e *MarshalError) Unwrap() error {
	return e.err
}
