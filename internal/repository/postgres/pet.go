package postgres

import (
	"context"
	"fmt"
	"slices"

	"github.com/dtroode/usersync/internal/model"
	"github.com/dtroode/usersync/internal/schema"
)

var _ model.PetStore = (*PetRepository)(nil)

type PetRepository struct {
	db *Connection
}

func NewPetRepository(db *Connection) *PetRepository {
	return &PetRepository{
		db: db,
	}
}

func (r *PetRepository) StreamAll(ctx context.Context, fn func(model.Pet) error) error {
	query := `
		SELECT pet_id, user_id, pet_nm, species_cs, birth_dt
		FROM pets
		ORDER BY pet_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	if !slices.Equal(cols, schema.PetColumns) {
		return fmt.Errorf("cursor columns %v differ from pet schema: %w", cols, model.ErrDataIntegrity)
	}

	for rows.Next() {
		var pet model.Pet
		err := rows.Scan(&pet.ID, &pet.UserID, &pet.Name, &pet.SpeciesCode, &pet.BirthDate)
		if err != nil {
			return err
		}
		if err := fn(pet); err != nil {
			return err
		}
	}

	return rows.Err()
}

func (r *PetRepository) Update(ctx context.Context, pet model.Pet) error {
	query := `
		UPDATE pets
		SET user_id = $2, pet_nm = $3, species_cs = $4, birth_dt = $5
		WHERE pet_id = $1`

	res, err := r.db.ExecContext(ctx, query, pet.ID, pet.UserID, pet.Name, pet.SpeciesCode, pet.BirthDate)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrNotFound
	}
	if affected > 1 {
		return fmt.Errorf("update matched %d rows for pet %q: %w", affected, pet.ID, model.ErrDataIntegrity)
	}
	return nil
}

func (r *PetRepository) Insert(ctx context.Context, pet model.Pet) error {
	query := `
		INSERT INTO pets (pet_id, user_id, pet_nm, species_cs, birth_dt)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query, pet.ID, pet.UserID, pet.Name, pet.SpeciesCode, pet.BirthDate)
	return err
}

func (r *PetRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	const query = `DELETE FROM pets WHERE user_id = $1`

	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
