package encoder

import "fmt"

var _ error = (*UnknownEncoderError)(nil)

type UnknownEncoderError struct {
	name string
}

func (e *UnknownEncoderError) Error() string {
	return fmt.Sprintf("unknown encoder: %s", e.name)
}

// Name returns the encoder name that was not found.
func (e *UnknownEncoderError) Name() string {
	return e.name
}
