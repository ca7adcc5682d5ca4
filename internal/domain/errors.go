package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNoContent           = errors.New("no content")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrDestinationWrite    = errors.New("destination write failed")
	ErrInvalidTransition   = errors.New("invalid import state transition")
)

// ImportError reports the first hard failure of an import run. Its message is
// the underlying error's message, unchanged, so callers can surface it as-is.
type ImportError struct {
	State ImportState
	Err   error
}

func (e *ImportError) Error() string {
	return e.Err.Error()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// Is makes every failure raised while inserting match ErrDestinationWrite.
func (e *ImportError) Is(target error) bool {
	return target == ErrDestinationWrite && e.State.Inserting()
}
