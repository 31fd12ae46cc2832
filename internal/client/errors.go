package client

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	// KindNetwork means no response was received.
	KindNetwork ErrorKind = iota + 1
	// KindStatus means the service answered outside the 2xx range.
	KindStatus
	// KindDecode means the body could not be decoded as an AnalyzeResponse.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is returned by Client.Analyze for every failure.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("API error %d", e.StatusCode)
	case KindDecode:
		return fmt.Sprintf("failed to decode API response: %v", e.Err)
	default:
		return fmt.Sprintf("failed to reach API: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a client error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var clientErr *Error
	return errors.As(err, &clientErr) && clientErr.Kind == kind
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var clientErr *Error
	if errors.As(err, &clientErr) && clientErr.Kind == KindStatus {
		return clientErr.StatusCode
	}
	return 0
}
