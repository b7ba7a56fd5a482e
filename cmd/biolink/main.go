package main

import (
	"context"
	"log/slog"
	"os"

	"biolink/config"
	"biolink/internal/delivery"
	"biolink/internal/delivery/api"
	"biolink/internal/delivery/api/middleware"
	"biolink/internal/delivery/api/router/handler"
	"biolink/internal/domain/service"
	"biolink/internal/infra/auth"
	"biolink/internal/infra/cache"
	logs "biolink/internal/infra/log"
	"biolink/internal/infra/persistence/postgres"
	"biolink/internal/infra/pubsub"
	"biolink/internal/infra/qrcode"
	"biolink/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	defaultQRCodeSize  = 256
	defaultQRCodeLevel = "M"
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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
			cache.NewPublicPageCache,
			pubsub.NewEventPublisher,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultQRCodeSize, defaultQRCodeLevel
	if cfg.QRCode.Size > 0 {
		size = cfg.QRCode.Size
	}
	if cfg.QRCode.ErrorCorrectionLevel != "" {
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return qrcode.NewQRCodeService(size, level, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewStyleService,
			impl.NewLinkService,
			impl.NewPublicPageService,
			impl.NewClickService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
			handler.NewStyleHandler,
			handler.NewLinkHandler,
			handler.NewAnalyticsHandler,
			handler.NewPublicHandler,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
