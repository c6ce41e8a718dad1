package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"crewdesk/config"
	"crewdesk/internal/delivery"
	"crewdesk/internal/delivery/http"
	"crewdesk/internal/delivery/http/middleware"
	"crewdesk/internal/delivery/http/router/handler"
	"crewdesk/internal/infra/auth"
	"crewdesk/internal/infra/countries"
	"crewdesk/internal/infra/jsonstore"
	logs "crewdesk/internal/infra/log"
	"crewdesk/internal/infra/mail"
	"crewdesk/internal/infra/newsapi"
	"crewdesk/internal/infra/translate"
	"crewdesk/internal/usecase/impl"
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
			jsonstore.NewUserRepository,
			jsonstore.NewEmployeeRepository,
			jsonstore.NewNoteRepository,
			jsonstore.NewHabitRepository,
			jsonstore.NewLocationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			mail.NewMailer,
			newsapi.NewClient,
			translate.NewClient,
			countries.NewClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewEmployeeService,
			impl.NewUserService,
			impl.NewDashboardService,
			impl.NewLocationService,
			impl.NewNewsService,
			impl.NewTranslationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewEmployeeHandler,
			handler.NewUserHandler,
			handler.NewDashboardHandler,
			handler.NewLocationHandler,
			handler.NewNewsHandler,
			handler.NewTranslationHandler,
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
