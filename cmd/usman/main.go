package main

import (
	"context"
	"log/slog"
	"os"

	"usman/config"
	"usman/internal/delivery"
	"usman/internal/delivery/http"
	"usman/internal/delivery/http/middleware"
	"usman/internal/delivery/http/router/handler"
	"usman/internal/delivery/http/session"
	"usman/internal/domain/policy"
	"usman/internal/infra/asset"
	"usman/internal/infra/auth"
	"usman/internal/infra/auth/google"
	"usman/internal/infra/claims"
	logs "usman/internal/infra/log"
	"usman/internal/infra/persistence/postgres"
	"usman/internal/usecase/impl"

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
		postgres.New,
		asset.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewClaimRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewSessionTokenService,
			policy.NewDefaultRegistry,
			session.NewCookieWriter,
			fx.Annotate(
				claims.NewStoredProvider,
				fx.ResultTags(`group:"claimProviders"`),
			),
			fx.Annotate(
				claims.NewCityProvider,
				fx.ResultTags(`group:"claimProviders"`),
			),
			fx.Annotate(
				google.NewLoginProvider,
				fx.ResultTags(`group:"externalProviders"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				impl.NewAuthService,
				fx.ParamTags(``, ``, ``, ``, `group:"claimProviders"`, `group:"externalProviders"`, ``),
			),
			fx.Annotate(
				impl.NewMemberService,
				fx.ParamTags(``, ``, ``, ``, ``, ``, `group:"claimProviders"`, ``),
			),
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewPolicyMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewMemberHandler,
			handler.NewPolicyHandler,
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
