package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dtroode/usersync/internal/csvio"
	"github.com/dtroode/usersync/internal/logger"
	"github.com/dtroode/usersync/internal/model"
	"github.com/dtroode/usersync/internal/schema"
)

// Importer loads delimited files into tables row by row.
type Importer struct {
	users   model.UserStore
	pets    model.PetStore
	archive model.Archive
	logger  *logger.Logger
}

// NewImporter creates new Importer.
func NewImporter(users model.UserStore, pets model.PetStore, archive model.Archive, l *logger.Logger) *Importer {
	return &Importer{
		users:   users,
		pets:    pets,
		archive: archive,
		logger:  l,
	}
}

type upsertFunc func(ctx context.Context, fields []string) (updated bool, err error)

// ImportUsers applies every data row of the file at path to the user table.
// Rows are applied one at a time in file order. A row that fails stops the
// run; rows already applied stay applied.
func (i *Importer) ImportUsers(ctx context.Context, path string) (*model.ImportSummary, error) {
	return i.run(ctx, path, i.upsertUser)
}

// ImportPets applies every data row of the file at path to the pet table.
func (i *Importer) ImportPets(ctx context.Context, path string) (*model.ImportSummary, error) {
	return i.run(ctx, path, i.upsertPet)
}

func (i *Importer) run(ctx context.Context, path string, apply upsertFunc) (*model.ImportSummary, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputMissing, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	r := csvio.NewReader(f)

	summary := &model.ImportSummary{Path: path}

	// First line is the header; it is skipped, not validated.
	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			i.logger.Warn("no data", "path", path)
			return summary, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", summary.Read+1, err)
		}

		summary.Read++

		updated, err := apply(ctx, fields)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", summary.Read, err)
		}
		if updated {
			summary.Updated++
		} else {
			summary.Inserted++
		}
	}

	if summary.Read == 0 {
		i.logger.Warn("no data", "path", path)
	}

	return summary, nil
}

func (i *Importer) upsertUser(ctx context.Context, fields []string) (bool, error) {
	user, err := schema.DecodeUser(fields)
	if err != nil {
		return false, err
	}

	err = i.users.Update(ctx, user)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return false, fmt.Errorf("failed to update user %q: %w", user.ID, err)
	}

	if err := i.users.Insert(ctx, user); err != nil {
		return false, fmt.Errorf("failed to insert user %q: %w", user.ID, err)
	}

	return false, nil
}

func (i *Importer) upsertPet(ctx context.Context, fields []string) (bool, error) {
	pet, err := schema.DecodePet(fields)
	if err != nil {
		return false, err
	}

	err = i.pets.Update(ctx, pet)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return false, fmt.Errorf("failed to update pet %q: %w", pet.ID, err)
	}

	if err := i.pets.Insert(ctx, pet); err != nil {
		return false, fmt.Errorf("failed to insert pet %q: %w", pet.ID, err)
	}

	return false, nil
}

// FetchFromArchive downloads the archived object named after path's base name
// and writes it to path, which must not exist yet.
func (i *Importer) FetchFromArchive(ctx context.Context, path string) error {
	if i.archive == nil {
		return errors.New("archive is not configured")
	}

	if err := checkNewFilePath(path); err != nil {
		return err
	}

	key := filepath.Base(path)
	obj, err := i.archive.Download(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to download %q from archive: %w", key, err)
	}
	defer obj.Close()

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create input file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, obj); err != nil {
		return fmt.Errorf("failed to write input file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close input file: %w", err)
	}

	i.logger.Debug("fetched file from archive", "key", key, "path", path)

	return nil
}
