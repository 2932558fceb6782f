package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// unavailable stands in for a backend that could not be initialized.
// Every call fails with ErrUnavailable so callers surface an actionable error
// instead of the process refusing to start.
type unavailable struct {
	cause error
}

// Unavailable returns a Storage whose every operation fails with ErrUnavailable.
func Unavailable(cause error) Storage {
	return unavailable{cause: cause}
}

func (u unavailable) err() error {
	if u.cause == nil {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, u.cause)
}

func (u unavailable) Bucket() string { return "" }

func (u unavailable) Endpoint() string { return "" }

func (u unavailable) Put(context.Context, string, io.Reader, PutObjectOptions) (ObjectInfo, error) {
	return ObjectInfo{}, u.err()
}

func (u unavailable) Get(context.Context, string) (io.ReadCloser, ObjectInfo, error) {
	return nil, ObjectInfo{}, u.err()
}

func (u unavailable) Stat(context.Context, string) (ObjectInfo, error) {
	return ObjectInfo{}, u.err()
}

func (u unavailable) Delete(context.Context, string) error { return u.err() }

func (u unavailable) PresignGet(context.Context, string, time.Duration, PresignOptions) (string, error) {
	return "", u.err()
}
