package snapshot

import "errors"

var (
	ErrBadFormat        = errors.New("snapshot: bad format")
	ErrSealVerifyFailed = errors.New("snapshot: seal verification failed")
	ErrSnapshotNotFound = errors.New("snapshot: not found")
	ErrInvalidName      = errors.New("snapshot: invalid name")
	ErrBlobNotFound     = errors.New("snapshot: blob not found")
)
