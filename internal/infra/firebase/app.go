// Package firebase builds the shared Firebase application handle.
package firebase

import (
	"context"
	"log/slog"

	"txtchange/config"
	"txtchange/internal/errors"

	fb "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp initializes the Firebase app. It returns nil when no project is
// configured, so backends that depend on it must be selected explicitly.
func NewApp(cfg *config.Config, logger *slog.Logger) (*fb.App, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		logger.Info("Firebase not configured")

		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := fb.NewApp(context.Background(), &fb.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	logger.Info("Firebase app initialized", slog.String("projectId", cfg.Firebase.ProjectID))

	return app, nil
}
