package main

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/contactform/modules/contact"
	"github.com/dmitrymomot/contactform/pkg/config"
	"github.com/dmitrymomot/contactform/pkg/email"
	"github.com/dmitrymomot/contactform/pkg/httpserver"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/recaptcha"
	"github.com/dmitrymomot/contactform/pkg/requestid"
)

type appConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
}

func main() {
	var (
		appCfg       appConfig
		serverCfg    httpserver.Config
		emailCfg     email.Config
		recaptchaCfg recaptcha.Config
		contactCfg   contact.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&serverCfg)
	config.MustLoad(&emailCfg)
	config.MustLoad(&recaptchaCfg)
	config.MustLoad(&contactCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Environment, "contactform"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	sender, err := email.New(emailCfg)
	if err != nil {
		log.Error("failed to initialize email sender", "error", err)
		os.Exit(1)
	}

	verifier, err := recaptcha.NewClient(recaptchaCfg)
	if err != nil {
		log.Error("failed to initialize recaptcha client", "error", err)
		os.Exit(1)
	}

	svc := contact.NewService(contactCfg, verifier, sender, log)
	handler := contact.NewHandler(svc, contactCfg, log)

	ctx := context.Background()

	r := chi.NewRouter()
	r.Get("/health", httpserver.HealthCheckHandler(ctx, log))
	r.Mount("/contact", contact.Router(handler))

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
