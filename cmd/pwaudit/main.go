package main

import (
	"context"
	"log/slog"
	"os"

	"pwaudit/config"
	"pwaudit/internal/delivery"
	"pwaudit/internal/delivery/api"
	"pwaudit/internal/delivery/api/middleware"
	"pwaudit/internal/delivery/api/router/handler"
	"pwaudit/internal/domain/repository"
	"pwaudit/internal/infra/auth"
	"pwaudit/internal/infra/digest"
	"pwaudit/internal/infra/generator"
	logs "pwaudit/internal/infra/log"
	"pwaudit/internal/infra/persistence/memory"
	"pwaudit/internal/infra/persistence/postgres"
	"pwaudit/internal/infra/pwned"
	"pwaudit/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newCheckRecordRepository,
		),
	)
}

// newCheckRecordRepository stores check records in PostgreSQL when it is
// configured and in memory otherwise.
func newCheckRecordRepository(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repository.CheckRecordRepository, error) {
	if cfg.Postgres == nil {
		logger.Info("PostgreSQL not configured, keeping check records in memory",
			slog.Int("capacity", memory.DefaultCapacity))

		return memory.NewCheckRecordRepository(), nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: lc,
		Config:    cfg,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	return postgres.NewCheckRecordRepository(db), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			digest.NewSHA1Digester,
			pwned.New,
			generator.NewRandomGenerator,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewBreachService,
			impl.NewActivityService,
			impl.NewPasswordService,
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
			handler.NewBreachHandler,
			handler.NewPasswordHandler,
			handler.NewActivityHandler,
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
				os.Exit(1)
			}
		}()
	}
}
