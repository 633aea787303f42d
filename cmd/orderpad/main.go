package main

import (
	"context"
	"log/slog"
	"os"

	"orderpad/config"
	"orderpad/internal/delivery"
	"orderpad/internal/delivery/http"
	"orderpad/internal/delivery/http/middleware"
	"orderpad/internal/delivery/http/router/handler"
	logs "orderpad/internal/infra/log"
	"orderpad/internal/infra/persistence/localstore"
	"orderpad/internal/infra/seed"
	"orderpad/internal/usecase"
	"orderpad/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		localstore.New,
		seed.NewSource,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			localstore.NewCatalogRepository,
			localstore.NewHistoryRepository,
			localstore.NewPreferenceRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewHistoryService,
			impl.NewFavouritesService,
			impl.NewPreferenceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewHistoryHandler,
			handler.NewPreferenceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedCatalog imports the default catalog on first start. Failures are
// logged inside the usecase and never block startup.
func seedCatalog(lc fx.Lifecycle, uc usecase.CatalogUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return uc.Load(ctx)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
