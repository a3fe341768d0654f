package postgres

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dtroode/usersync/internal/model"
	"github.com/dtroode/usersync/internal/schema"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) StreamAll(ctx context.Context, fn func(model.User) error) error {
	query := `
		SELECT user_id, user_nm, email, country_cs, gender_cs, spouse_cs, income_am, birth_dt, upd_ts
		FROM users
		ORDER BY user_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	// The file header is written from the schema column list, so the cursor
	// must come back in exactly that shape.
	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	if !slices.Equal(cols, schema.UserColumns) {
		return fmt.Errorf("cursor columns %v differ from user schema: %w", cols, model.ErrDataIntegrity)
	}

	for rows.Next() {
		var user model.User
		err := rows.Scan(
			&user.ID, &user.Name, &user.Email,
			&user.CountryCode, &user.GenderCode, &user.SpouseCode,
			&user.IncomeAmount, &user.BirthDate, &user.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if err := fn(user); err != nil {
			return err
		}
	}

	return rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, user model.User) error {
	query := `
		UPDATE users
		SET user_nm = $2, email = $3, country_cs = $4, gender_cs = $5, spouse_cs = $6,
		    income_am = $7, birth_dt = $8, upd_ts = $9
		WHERE user_id = $1`

	res, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email,
		user.CountryCode, user.GenderCode, user.SpouseCode,
		user.IncomeAmount, user.BirthDate, user.UpdatedAt,
	)
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
		return fmt.Errorf("update matched %d rows for user %q: %w", affected, user.ID, model.ErrDataIntegrity)
	}
	return nil
}

func (r *UserRepository) Insert(ctx context.Context, user model.User) error {
	query := `
		INSERT INTO users (user_id, user_nm, email, country_cs, gender_cs, spouse_cs, income_am, birth_dt, upd_ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email,
		user.CountryCode, user.GenderCode, user.SpouseCode,
		user.IncomeAmount, user.BirthDate, user.UpdatedAt,
	)
	return err
}

func (r *UserRepository) DeleteVersioned(ctx context.Context, id string, updatedAt time.Time) error {
	const query = `DELETE FROM users WHERE user_id = $1 AND upd_ts = $2`

	res, err := r.db.ExecContext(ctx, query, id, updatedAt)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrStaleRecord
	}
	if affected > 1 {
		return fmt.Errorf("versioned delete matched %d rows for user %q: %w", affected, id, model.ErrDataIntegrity)
	}
	return nil
}
