package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/usersync/internal/model"
	"github.com/dtroode/usersync/internal/schema"
)

func newPetRepo(t *testing.T) (*PetRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewPetRepository(&Connection{DB: db}), mock
}

func testPet() model.Pet {
	return model.Pet{
		ID:          "p1",
		UserID:      "u1",
		Name:        "Rex",
		SpeciesCode: "DOG",
		BirthDate:   time.Date(2020, 5, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestPetRepository_Update(t *testing.T) {
	pet := testPet()

	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{
			name:     "one row updated",
			affected: 1,
		},
		{
			name:     "no row matched",
			affected: 0,
			wantErr:  model.ErrNotFound,
		},
		{
			name:     "multiple rows matched",
			affected: 3,
			wantErr:  model.ErrDataIntegrity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newPetRepo(t)

			mock.ExpectExec(regexp.QuoteMeta("UPDATE pets")).
				WithArgs(pet.ID, pet.UserID, pet.Name, pet.SpeciesCode, pet.BirthDate).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.Update(context.Background(), pet)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPetRepository_Insert(t *testing.T) {
	pet := testPet()
	repo, mock := newPetRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pets")).
		WithArgs(pet.ID, pet.UserID, pet.Name, pet.SpeciesCode, pet.BirthDate).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), pet)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetRepository_DeleteByUser(t *testing.T) {
	t.Run("reports deleted count", func(t *testing.T) {
		repo, mock := newPetRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pets WHERE user_id = $1")).
			WithArgs("u1").
			WillReturnResult(sqlmock.NewResult(0, 2))

		n, err := repo.DeleteByUser(context.Background(), "u1")

		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero matches is not an error", func(t *testing.T) {
		repo, mock := newPetRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pets WHERE user_id = $1")).
			WithArgs("nobody").
			WillReturnResult(sqlmock.NewResult(0, 0))

		n, err := repo.DeleteByUser(context.Background(), "nobody")

		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("exec failure", func(t *testing.T) {
		repo, mock := newPetRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pets")).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.DeleteByUser(context.Background(), "u1")

		assert.Error(t, err)
	})
}

func TestPetRepository_StreamAll(t *testing.T) {
	t.Run("streams rows in cursor order", func(t *testing.T) {
		repo, mock := newPetRepo(t)

		rows := sqlmock.NewRows(schema.PetColumns).
			AddRow("p1", "u1", "Rex", "DOG", time.Date(2020, 5, 10, 0, 0, 0, 0, time.UTC)).
			AddRow("p2", "u1", "Milo", "CAT", time.Date(2021, 3, 2, 0, 0, 0, 0, time.UTC))
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY pet_id ASC")).WillReturnRows(rows)

		var got []model.Pet
		err := repo.StreamAll(context.Background(), func(p model.Pet) error {
			got = append(got, p)
			return nil
		})

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "p1", got[0].ID)
		assert.Equal(t, "Milo", got[1].Name)
	})

	t.Run("rejects cursor with unexpected columns", func(t *testing.T) {
		repo, mock := newPetRepo(t)

		rows := sqlmock.NewRows([]string{"pet_id", "pet_nm"}).AddRow("p1", "Rex")
		mock.ExpectQuery(regexp.QuoteMeta("FROM pets")).WillReturnRows(rows)

		err := repo.StreamAll(context.Background(), func(model.Pet) error { return nil })

		assert.ErrorIs(t, err, model.ErrDataIntegrity)
	})
}
