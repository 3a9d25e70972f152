package main

import (
	"context"
	"log/slog"
	"os"

	"txtchange/config"
	"txtchange/internal/delivery"
	"txtchange/internal/delivery/api"
	"txtchange/internal/delivery/api/middleware"
	"txtchange/internal/delivery/api/router/handler"
	"txtchange/internal/domain/service"
	"txtchange/internal/infra/auth"
	"txtchange/internal/infra/firebase"
	logs "txtchange/internal/infra/log"
	"txtchange/internal/infra/lookup/googlebooks"
	"txtchange/internal/infra/mail"
	"txtchange/internal/infra/persistence"
	"txtchange/internal/infra/persistence/document"
	"txtchange/internal/infra/pubsub"
	"txtchange/internal/infra/qrcode"
	"txtchange/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		persistence.NewStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(document.NewBookRepository, fx.From(new(document.Store))),
			fx.Annotate(document.NewUserRepository, fx.From(new(document.Store))),
			document.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewAuthProvider,
			googlebooks.New,
			mail.NewMailer,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	shareBaseURL := ""
	if cfg.Listing != nil {
		shareBaseURL = cfg.Listing.ShareBaseURL
	}
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M", shareBaseURL)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, shareBaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewListingService,
			impl.NewInterestService,
			impl.NewSearchService,
			impl.NewContactService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewListingHandler,
			handler.NewInterestHandler,
			handler.NewSearchHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
