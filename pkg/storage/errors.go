package storage

import "errors"

// ErrNotFound is returned when the requested document does not exist.
var ErrNotFound = errors.New("not found")

// ErrConditionFailed is returned when a guarded write's precondition no longer
// holds, e.g. a request was already settled by someone else. Nothing is written.
var ErrConditionFailed = errors.New("condition failed")

// ErrVersionConflict is returned when a wallet kept changing underneath a ledger
// write and every retry lost the compare-and-swap.
var ErrVersionConflict = errors.New("wallet version conflict")

// ErrAlreadyExists is returned when creating a document whose key is taken.
var ErrAlreadyExists = errors.New("already exists")
