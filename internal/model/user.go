package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	StreamAll(ctx context.Context, fn func(User) error) error
	Update(ctx context.Context, user User) error
	Insert(ctx context.Context, user User) error
	DeleteVersioned(ctx context.Context, id string, updatedAt time.Time) error
}

// User represents a row of the synchronized user table. UpdatedAt doubles as
// the optimistic-lock version token and is always supplied by the caller;
// the store never generates it.
type User struct {
	ID           string
	Name         string
	Email        string
	CountryCode  string
	GenderCode   string
	SpouseCode   string
	IncomeAmount string
	BirthDate    time.Time
	UpdatedAt    time.Time
}
