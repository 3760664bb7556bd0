package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/inkwell/modules/audience"
	"github.com/dmitrymomot/inkwell/modules/pages"
	"github.com/dmitrymomot/inkwell/newsletter"
	"github.com/dmitrymomot/inkwell/pkg/config"
	"github.com/dmitrymomot/inkwell/pkg/email"
	"github.com/dmitrymomot/inkwell/pkg/httpserver"
	"github.com/dmitrymomot/inkwell/pkg/logger"
	"github.com/dmitrymomot/inkwell/pkg/pg"
)

type appConfig struct {
	BaseURL     string `env:"SITE_BASE_URL" envDefault:"http://localhost:8080"`
	Environment string `env:"APP_ENV" envDefault:"production"`
	MailDir     string `env:"MAIL_DIR" envDefault:"./tmp/mail"` // where development-mode emails are written
}

// senderFactory picks the announcement mail transport for the environment:
// development writes messages to disk, everything else speaks SMTP (the nil
// factory defaults to the SMTP sender).
func senderFactory(environment, mailDir string) newsletter.SenderFactory {
	if environment != "development" {
		return nil
	}
	return func(email.TransportConfig) (email.EmailSender, error) {
		return email.NewDevSender(mailDir), nil
	}
}

func main() {
	var appCfg appConfig
	var httpCfg httpserver.Config
	var pgCfg pg.Config
	var emailCfg email.Config
	config.MustLoad(&appCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&pgCfg)
	config.MustLoad(&emailCfg)

	logOpt := logger.WithProduction("inkwell")
	if appCfg.Environment == "development" {
		logOpt = logger.WithDevelopment("inkwell")
	}
	log := logger.New(logOpt)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, appCfg, httpCfg, pgCfg, emailCfg, log); err != nil {
		log.ErrorContext(ctx, "server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, appCfg appConfig, httpCfg httpserver.Config, pgCfg pg.Config, emailCfg email.Config, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	pageStore := pages.NewStore(pool)
	audienceStore := audience.NewStore(pool)
	roster := audience.NewRoster(audienceStore)

	announcer := newsletter.NewAnnouncer(pageStore, roster, senderFactory(appCfg.Environment, appCfg.MailDir), emailCfg, appCfg.BaseURL, log)
	pageSvc := pages.NewService(pageStore, announcer, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/health", httpserver.HealthCheckHandler(log, pg.Healthcheck(pool)))
	r.Mount("/api", pages.Router(pageSvc, log))
	r.Mount("/", audience.Router(audienceStore, log))

	// Announcement goroutines are detached from request contexts and finish
	// on their own; shutdown only drains in-flight admin requests.
	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
