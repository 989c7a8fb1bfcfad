package usecase

import "errors"

var (
	// ErrMovieNotFound indicates no movie row matches the requested id.
	ErrMovieNotFound = errors.New("movie not found")
)

// StoreError wraps any failure reaching the data store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
