package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/usersync/internal/model"
)

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) StreamAll(ctx context.Context, fn func(model.User) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

func (m *MockUserStore) Update(ctx context.Context, user model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) Insert(ctx context.Context, user model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) DeleteVersioned(ctx context.Context, id string, updatedAt time.Time) error {
	args := m.Called(ctx, id, updatedAt)
	return args.Error(0)
}

// MockPetStore mocks the PetStore interface
type MockPetStore struct {
	mock.Mock
}

func (m *MockPetStore) StreamAll(ctx context.Context, fn func(model.Pet) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

func (m *MockPetStore) Update(ctx context.Context, pet model.Pet) error {
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *MockPetStore) Insert(ctx context.Context, pet model.Pet) error {
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *MockPetStore) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockArchive mocks the Archive interface
type MockArchive struct {
	mock.Mock
}

func (m *MockArchive) Upload(ctx context.Context, key string, reader io.Reader) error {
	args := m.Called(ctx, key, reader)
	return args.Error(0)
}

func (m *MockArchive) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
