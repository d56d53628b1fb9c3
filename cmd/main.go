package main

import (
	"contact-service/internal/config"
	"contact-service/internal/delivery"
	"contact-service/internal/service"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("Warning: .env file not found, using system environment variables")
	} else {
		log.Info("Environment variables loaded from .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Recaptcha.SecretKey == "" {
		log.Warn("RECAPTCHA_SECRET_KEY is not set, contact submissions will fail with 500")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := service.NewMetrics(registry)

	verifier := service.NewRecaptchaVerifier(cfg.Recaptcha, metrics)
	contactService := service.NewContactService(verifier, metrics)
	handler := delivery.NewHandler(contactService)

	app := delivery.NewApp(handler, cfg.AllowOrigins, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	log.Infof("Contact service listening on %s", cfg.ListenAddr)
	log.Fatal(app.Listen(cfg.ListenAddr))
}
