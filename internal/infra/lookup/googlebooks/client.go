// Package googlebooks resolves ISBNs to listing metadata with the Google Books API.
package googlebooks

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"txtchange/config"
	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/domain/service"
	"txtchange/internal/errors"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
	books "google.golang.org/api/books/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	defaultTitle    = "Unknown Title"
	defaultAuthor   = "Unknown Author"
	defaultCategory = "Unknown"

	defaultRequestsPerSecond = 5
	defaultMaxRetries        = 2
	defaultTimeout           = 10 * time.Second
)

// Params holds the dependencies of the lookup client.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type client struct {
	volumes    *books.VolumesService
	limiter    *rate.Limiter
	maxRetries int
	timeout    time.Duration
	logger     *slog.Logger
}

// New builds the Google Books lookup.
func New(params Params) (service.BookLookup, error) {
	cfg := params.Config.GoogleBooks
	if cfg == nil {
		cfg = &config.GoogleBooksConfig{}
	}

	opts := []option.ClientOption{option.WithHTTPClient(&http.Client{})}
	if cfg.APIKey != "" {
		opts = []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := books.NewService(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Google Books client")
	}

	return newClient(svc, cfg, params.Logger), nil
}

func newClient(svc *books.Service, cfg *config.GoogleBooksConfig, logger *slog.Logger) *client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	} else if maxRetries == 0 {
		maxRetries = defaultMaxRetries
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &client{
		volumes:    svc.Volumes,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		maxRetries: maxRetries,
		timeout:    timeout,
		logger:     logger,
	}
}

// LookupISBN fetches the first volume matching isbn.
func (c *client) LookupISBN(ctx context.Context, isbn string) (*entity.BookMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var result *books.Volumes
	operation := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		volumes, err := c.volumes.List("isbn:" + isbn).Context(ctx).Do()
		if err != nil {
			if retryable(err) {
				return err
			}

			return backoff.Permanent(err)
		}
		result = volumes

		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.maxRetries)), ctx)
	notify := func(err error, wait time.Duration) {
		c.logger.WarnContext(ctx, "Google Books request failed, retrying",
			slog.String("isbn", isbn),
			slog.Duration("wait", wait),
			slog.Any("error", err),
		)
	}
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return nil, domainerrors.ErrLookupFailed.WrapMessage(err.Error())
	}

	return toMetadata(result)
}

func toMetadata(volumes *books.Volumes) (*entity.BookMetadata, error) {
	if volumes == nil || len(volumes.Items) == 0 || volumes.Items[0].VolumeInfo == nil {
		return nil, domainerrors.ErrLookupNoResults
	}

	info := volumes.Items[0].VolumeInfo
	if info.ImageLinks == nil || info.ImageLinks.Thumbnail == "" || info.Description == "" {
		return nil, domainerrors.ErrLookupFailed.WithDetails("volume has no thumbnail or description")
	}

	meta := &entity.BookMetadata{
		Title:            defaultTitle,
		Author:           defaultAuthor,
		ImageURL:         info.ImageLinks.Thumbnail,
		Description:      info.Description,
		ExternalCategory: defaultCategory,
	}
	if info.Title != "" {
		meta.Title = info.Title
	}
	if len(info.Authors) > 0 && info.Authors[0] != "" {
		meta.Author = info.Authors[0]
	}
	if len(info.Categories) > 0 && info.Categories[0] != "" {
		meta.ExternalCategory = info.Categories[0]
	}

	return meta, nil
}

func retryable(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}

	return true
}
