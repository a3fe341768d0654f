package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/usersync/internal/logger"
	"github.com/dtroode/usersync/internal/model"
)

// Deleter removes a user together with dependent pet rows.
type Deleter struct {
	users  model.UserStore
	pets   model.PetStore
	logger *logger.Logger
}

// NewDeleter creates new Deleter.
func NewDeleter(users model.UserStore, pets model.PetStore, l *logger.Logger) *Deleter {
	return &Deleter{
		users:  users,
		pets:   pets,
		logger: l,
	}
}

// Delete removes the user whose stored version matches updatedAt, then
// unconditionally removes the user's pets. A version mismatch aborts the
// operation before any pet row is touched and is reported on the receipt,
// not as an error.
func (d *Deleter) Delete(ctx context.Context, userID string, updatedAt time.Time) (*model.DeleteReceipt, error) {
	d.logger.Debug("deleting user header", "user_id", userID)

	err := d.users.DeleteVersioned(ctx, userID, updatedAt)
	if errors.Is(err, model.ErrStaleRecord) {
		d.logger.Debug("delete aborted", "user_id", userID)
		return &model.DeleteReceipt{
			UserID:  userID,
			Outcome: model.DeleteAborted,
			Violation: &model.FieldError{
				Field: "user_id",
				Value: userID,
				Code:  model.CodeStaleRecord,
				Err:   model.ErrStaleRecord,
			},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete user %q: %w", userID, err)
	}

	deleted, err := d.pets.DeleteByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete pets of user %q: %w", userID, err)
	}

	d.logger.Debug("cascade complete", "user_id", userID, "pets_deleted", deleted)

	return &model.DeleteReceipt{
		UserID:      userID,
		Outcome:     model.DeleteCascadeDeleted,
		PetsDeleted: deleted,
	}, nil
}
