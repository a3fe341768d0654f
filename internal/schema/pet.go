package schema

import (
	"fmt"
	"time"

	"github.com/dtroode/usersync/internal/model"
)

// PetColumns is the ordered header of the pet exchange file.
var PetColumns = []string{
	"pet_id",
	"user_id",
	"pet_nm",
	"species_cs",
	"birth_dt",
}

// EncodePet renders a pet as one exchange record in PetColumns order.
func EncodePet(p model.Pet) []string {
	return []string{
		p.ID,
		p.UserID,
		p.Name,
		p.SpeciesCode,
		p.BirthDate.Format(DateLayout),
	}
}

// DecodePet parses one exchange record in PetColumns order.
func DecodePet(fields []string) (model.Pet, error) {
	if len(fields) != len(PetColumns) {
		return model.Pet{}, fmt.Errorf("expected %d fields, got %d", len(PetColumns), len(fields))
	}

	p := model.Pet{
		ID:          fields[0],
		UserID:      fields[1],
		Name:        fields[2],
		SpeciesCode: fields[3],
	}
	if p.ID == "" {
		return model.Pet{}, fmt.Errorf("pet_id is empty")
	}
	if p.UserID == "" {
		return model.Pet{}, fmt.Errorf("user_id is empty")
	}

	birth, err := time.Parse(DateLayout, fields[4])
	if err != nil {
		return model.Pet{}, fmt.Errorf("birth_dt %q: %w", fields[4], err)
	}
	p.BirthDate = birth

	return p, nil
}
