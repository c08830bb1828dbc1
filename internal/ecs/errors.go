package ecs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("entity not found")
	ErrTypeMismatch = errors.New("entity type mismatch")
)

// LookupError describes a failed typed lookup.
type LookupError struct {
	ID   EntityID
	Want string // requested type
	Got  string // stored type, empty when the entity does not exist
	Err  error
}

func (e *LookupError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("entity %d: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("entity %d: %v: holds %s, want %s", e.ID, e.Err, e.Got, e.Want)
}

func (e *LookupError) Unwrap() error { return e.Err }
