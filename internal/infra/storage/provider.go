package storage

import (
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"skyvault/config"
	"skyvault/internal/domain/constants"
	"skyvault/internal/domain/service"
)

// Params holds dependencies for ObjectStorage, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewObjectStorage creates an ObjectStorage based on configuration.
// Business logic never branches on the provider; the choice lives here.
func NewObjectStorage(params Params) (service.ObjectStorage, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		return nil, errors.New("storage is not configured")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}

	switch cfg.Provider {
	case constants.StorageProviderMinio:
		logger.Info("Using MinIO object storage",
			slog.String("endpoint", cfg.Endpoint),
			slog.String("bucket", cfg.Bucket),
		)

		return NewMinioStorage(cfg, logger)

	case constants.StorageProviderS3:
		logger.Info("Using AWS S3 object storage",
			slog.String("region", cfg.Region),
			slog.String("bucket", cfg.Bucket),
		)

		return NewS3Storage(cfg, logger)

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}

// Module provides the object storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewObjectStorage),
)
