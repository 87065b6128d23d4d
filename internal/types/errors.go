package types

import "fmt"

// ReadError reports that a source document could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%v (file: %s)", e.Err, e.Path)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports that a converted document could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%v (file: %s)", e.Err, e.Path)
}

func (e *WriteError) Unwrap() error { return e.Err }
