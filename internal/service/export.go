package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dtroode/usersync/internal/csvio"
	"github.com/dtroode/usersync/internal/logger"
	"github.com/dtroode/usersync/internal/model"
	"github.com/dtroode/usersync/internal/schema"
)

var (
	// ErrOutputExists is returned when an export target file is already present.
	ErrOutputExists = errors.New("output path already exists")
	// ErrOutputDirMissing is returned when the export target directory does not exist.
	ErrOutputDirMissing = errors.New("output directory does not exist")
	// ErrInputMissing is returned when an import source file does not exist.
	ErrInputMissing = errors.New("input path does not exist")
)

// Exporter writes table snapshots to delimited files.
type Exporter struct {
	users   model.UserStore
	pets    model.PetStore
	archive model.Archive
	logger  *logger.Logger
}

// NewExporter creates new Exporter.
func NewExporter(users model.UserStore, pets model.PetStore, archive model.Archive, l *logger.Logger) *Exporter {
	return &Exporter{
		users:   users,
		pets:    pets,
		archive: archive,
		logger:  l,
	}
}

// ExportUsers writes every user row, ordered by id, to a new file at path.
func (e *Exporter) ExportUsers(ctx context.Context, path string) (*model.ExportSummary, error) {
	return e.export(ctx, path, schema.UserColumns, func(w *csvio.Writer) (int64, error) {
		var rows int64
		err := e.users.StreamAll(ctx, func(u model.User) error {
			if err := w.Write(schema.EncodeUser(u)); err != nil {
				return err
			}
			rows++
			return nil
		})
		return rows, err
	})
}

// ExportPets writes every pet row, ordered by id, to a new file at path.
func (e *Exporter) ExportPets(ctx context.Context, path string) (*model.ExportSummary, error) {
	return e.export(ctx, path, schema.PetColumns, func(w *csvio.Writer) (int64, error) {
		var rows int64
		err := e.pets.StreamAll(ctx, func(p model.Pet) error {
			if err := w.Write(schema.EncodePet(p)); err != nil {
				return err
			}
			rows++
			return nil
		})
		return rows, err
	})
}

func (e *Exporter) export(ctx context.Context, path string, header []string, body func(*csvio.Writer) (int64, error)) (*model.ExportSummary, error) {
	if err := checkNewFilePath(path); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csvio.NewWriter(f)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	rows, err := body(w)
	if err != nil {
		return nil, fmt.Errorf("failed to export rows: %w", err)
	}

	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush output file: %w", err)
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close output file: %w", err)
	}

	if rows == 0 {
		e.logger.Warn("no data", "path", path)
	}

	if e.archive != nil {
		if err := e.uploadToArchive(ctx, path); err != nil {
			return nil, err
		}
	}

	return &model.ExportSummary{Path: path, Rows: rows}, nil
}

func (e *Exporter) uploadToArchive(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file for archive upload: %w", err)
	}
	defer f.Close()

	key := filepath.Base(path)
	if err := e.archive.Upload(ctx, key, f); err != nil {
		return fmt.Errorf("failed to upload %q to archive: %w", key, err)
	}

	e.logger.Debug("uploaded export to archive", "key", key)

	return nil
}

// checkNewFilePath verifies path does not exist yet and its parent directory does.
func checkNewFilePath(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrOutputExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat output path: %w", err)
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputDirMissing, dir)
	}

	return nil
}
