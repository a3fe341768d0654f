package schema

import (
	"fmt"
	"time"

	"github.com/dtroode/usersync/internal/model"
)

// UserColumns is the ordered header of the user exchange file. The codec
// writes and reads fields in exactly this order; the store cursor is
// verified against it before rows are streamed.
var UserColumns = []string{
	"user_id",
	"user_nm",
	"email",
	"country_cs",
	"gender_cs",
	"spouse_cs",
	"income_am",
	"birth_dt",
	"upd_ts",
}

// EncodeUser renders a user as one exchange record in UserColumns order.
func EncodeUser(u model.User) []string {
	return []string{
		u.ID,
		u.Name,
		u.Email,
		u.CountryCode,
		u.GenderCode,
		u.SpouseCode,
		u.IncomeAmount,
		u.BirthDate.Format(DateLayout),
		u.UpdatedAt.Format(TimestampLayout),
	}
}

// DecodeUser parses one exchange record in UserColumns order.
func DecodeUser(fields []string) (model.User, error) {
	if len(fields) != len(UserColumns) {
		return model.User{}, fmt.Errorf("expected %d fields, got %d", len(UserColumns), len(fields))
	}

	u := model.User{
		ID:          fields[0],
		Name:        fields[1],
		Email:       fields[2],
		CountryCode: fields[3],
		GenderCode:  fields[4],
		SpouseCode:  fields[5],
	}
	if u.ID == "" {
		return model.User{}, fmt.Errorf("user_id is empty")
	}

	if !decimalRe.MatchString(fields[6]) {
		return model.User{}, fmt.Errorf("income_am %q is not a decimal", fields[6])
	}
	u.IncomeAmount = fields[6]

	birth, err := time.Parse(DateLayout, fields[7])
	if err != nil {
		return model.User{}, fmt.Errorf("birth_dt %q: %w", fields[7], err)
	}
	u.BirthDate = birth

	updated, err := time.Parse(TimestampLayout, fields[8])
	if err != nil {
		return model.User{}, fmt.Errorf("upd_ts %q: %w", fields[8], err)
	}
	u.UpdatedAt = updated

	return u, nil
}
