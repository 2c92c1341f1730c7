package errors

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Map converts repo/infra errors into the engine taxonomy.
// Keeps the service layer clean by centralizing error mapping.
func Map(op string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &NotFoundError{Resource: op}

	case errors.Is(err, context.DeadlineExceeded):
		return &TimeoutError{Op: op}

	// caller-initiated cancellation is not a store timeout; pass it
	// through so nothing upstream schedules a retry for an abandoned call
	case errors.Is(err, context.Canceled):
		return err

	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &ConflictError{Reason: op}

	default:
		return err
	}
}
