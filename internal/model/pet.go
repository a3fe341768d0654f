package model

import (
	"context"
	"time"
)

// PetStore defines persistence operations for pets.
type PetStore interface {
	StreamAll(ctx context.Context, fn func(Pet) error) error
	Update(ctx context.Context, pet Pet) error
	Insert(ctx context.Context, pet Pet) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

// Pet represents a dependent row owned by a user. Pets carry no version
// token of their own.
type Pet struct {
	ID          string
	UserID      string
	Name        string
	SpeciesCode string
	BirthDate   time.Time
}
