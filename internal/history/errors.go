package history

import (
	"errors"
	"fmt"
)

// ErrNoMoreCommits is returned by iterators once the sequence is finished
var ErrNoMoreCommits = errors.New("no more commits")

// MalformedCommitDataError indicates a commit whose message has no usable first line
type MalformedCommitDataError struct {
	SHA string
}

func (e *MalformedCommitDataError) Error() string {
	return "malformed commit data: commit " + e.SHA + " has an empty message"
}

// TransportError wraps a failure of the commit source (network, auth, rate limit)
type TransportError struct {
	Op  string
	Err error
	// Auth is set when the source rejected the credentials
	Auth bool
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsAuthError reports whether err is a TransportError caused by rejected credentials
func IsAuthError(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Auth
}
