package main

import (
	"context"
	"fmt"
	"os"

	"txtchange/config"
	"txtchange/internal/domain/service"
	"txtchange/internal/infra/auth"
	"txtchange/internal/infra/firebase"
	logs "txtchange/internal/infra/log"
	"txtchange/internal/infra/mail"
	"txtchange/internal/infra/persistence"
	"txtchange/internal/infra/persistence/document"
	"txtchange/internal/infra/qrcode"
	"txtchange/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// storeOverride replaces store.provider from config when set.
var storeOverride string

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "txtctl",
		Short:         "Operate the textbook marketplace",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&storeOverride, "store", "", "document store provider (memory, firestore, postgres)")

	root.AddCommand(
		newCategoriesCommand(),
		newReconcileCommand(),
		newAccountCommand(),
		newQRCommand(),
	)

	return root
}

// withApp builds the dependency graph, fills targets, and runs fn between
// start and stop so store hooks close cleanly.
func withApp(ctx context.Context, fn func() error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			firebase.NewApp,
			persistence.NewStore,
			fx.Annotate(document.NewBookRepository, fx.From(new(document.Store))),
			fx.Annotate(document.NewUserRepository, fx.From(new(document.Store))),
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewAuthProvider,
			mail.NewMailer,
			newQRCodeService,
			impl.NewAccountService,
			impl.NewReconcileService,
		),
		fx.Decorate(func(cfg *config.Config) *config.Config {
			if storeOverride != "" {
				cfg.Store.Provider = storeOverride
			}

			return cfg
		}),
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return err
	}

	if err := app.Start(ctx); err != nil {
		return err
	}
	runErr := fn()
	if err := app.Stop(context.Background()); err != nil && runErr == nil {
		runErr = err
	}

	return runErr
}

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

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
