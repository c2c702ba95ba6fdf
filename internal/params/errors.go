package params

import "fmt"

var _ error = (*FileReadError)(nil)

type FileReadError struct {
	path string
	err  error
}

func (e *FileReadError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("couldn't read params file %s: %s", e.path, e.err.Error())
	}

	return fmt.Sprintf("couldn't read params file %s", e.path)
}

func (e *FileReadError) Unwrap() error {
	return e.err
}

// Path returns the path of the file that couldn't be read.
func (e *FileReadError) Path() string {
	return e.path
}
