package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/cobra"

	"github.com/dtroode/usersync/internal/config"
	"github.com/dtroode/usersync/internal/logger"
	"github.com/dtroode/usersync/internal/model"
	"github.com/dtroode/usersync/internal/repository/postgres"
	"github.com/dtroode/usersync/internal/service"
	storage "github.com/dtroode/usersync/internal/storage/minio"
)

const (
	exitFault  = 1
	exitConfig = 2
)

type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }

func (e *codedError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	return &codedError{code: code, err: err}
}

// coded classifies a service error: violated file preconditions are operator
// mistakes, anything else is a runtime fault.
func coded(err error) error {
	switch {
	case errors.Is(err, service.ErrOutputExists),
		errors.Is(err, service.ErrOutputDirMissing),
		errors.Is(err, service.ErrInputMissing):
		return withCode(exitConfig, err)
	}
	return withCode(exitFault, err)
}

func exitCode(err error) int {
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitConfig
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "usersync",
		Short:         "Bulk file exchange and lifecycle maintenance for user records",
		Version:       fmt.Sprintf("%s (built %s, commit %s)", buildVersion, buildDate, buildCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newDeleteCmd())
	cmd.AddCommand(newMigrateCmd())

	return cmd
}

type app struct {
	cfg     *config.Config
	logger  *logger.Logger
	db      *postgres.Connection
	users   *postgres.UserRepository
	pets    *postgres.PetRepository
	archive model.Archive
}

func setup(ctx context.Context) (*app, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, withCode(exitConfig, fmt.Errorf("failed to parse config: %w", err))
	}
	l := logger.New(cfg.LogLevel).With("run_id", uuid.NewString())

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, nil, withCode(exitFault, fmt.Errorf("failed to initialize database: %w", err))
	}
	cleanup := func() { _ = db.Close() }

	a := &app{
		cfg:    cfg,
		logger: l,
		db:     db,
		users:  postgres.NewUserRepository(db),
		pets:   postgres.NewPetRepository(db),
	}

	if cfg.Archive.Enabled {
		minioClient, err := minio.New(cfg.Archive.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Archive.AccessKey, cfg.Archive.SecretKey, ""),
			Secure: cfg.Archive.UseSSL,
		})
		if err != nil {
			cleanup()
			return nil, nil, withCode(exitFault, fmt.Errorf("failed to create minio client: %w", err))
		}
		archiveClient, err := storage.NewClient(ctx, minioClient, cfg.Archive.Bucket)
		if err != nil {
			cleanup()
			return nil, nil, withCode(exitFault, fmt.Errorf("failed to initialize archive client: %w", err))
		}
		a.archive = archiveClient
	}

	return a, cleanup, nil
}
