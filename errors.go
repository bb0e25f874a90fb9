package hashtable

import "github.com/pkg/errors"

// ErrCapacityExceeded is returned by Insert when no empty or tombstoned slot
// is reachable within the table's bucket count.
var ErrCapacityExceeded = errors.New("hash table full")

// ErrDestroyed is returned by Insert once Destroy has been called.
var ErrDestroyed = errors.New("hash table destroyed")

// ErrInvalidConfig is returned by New and LoadConfig for a Config that fails
// validation.
var ErrInvalidConfig = errors.New("invalid hash table config")
