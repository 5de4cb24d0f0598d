package entity

import "github.com/pkg/errors"

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("not found")
