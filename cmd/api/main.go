package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"claimdesk/docs"
	"claimdesk/internal/authz"
	"claimdesk/internal/config"
	"claimdesk/internal/database"
	"claimdesk/internal/database/migration"
	handlers "claimdesk/internal/http/handler"
	"claimdesk/internal/http/middleware"
	"claimdesk/internal/logging"
	"claimdesk/internal/metrics"
	"claimdesk/internal/otel"
	"claimdesk/internal/report"
	"claimdesk/internal/repository/postgres"
	"claimdesk/internal/service"
	"claimdesk/internal/storage"
)

// @title Claim Investigation API
// @version 1.0
// @description Cases, report templates, generated reports, evidence documents, commissions, companies and billing.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.New(os.Stdout, config.Location(cfg.Log.TimeZone), cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	objects := storage.NewClient(newStore(cfg, log), cfg.Storage.PresignExpiry, log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics, err := metrics.New(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register http metrics")
	}

	// Initialize repositories and services
	caseRepo := postgres.NewCasePostgres(db)
	templateRepo := postgres.NewTemplatePostgres(db)
	reportRepo := postgres.NewReportPostgres(db)
	docRepo := postgres.NewCaseDocumentPostgres(db)
	commissionRepo := postgres.NewCommissionPostgres(db)
	companyRepo := postgres.NewCompanyPostgres(db)
	billingRepo := postgres.NewBillingPostgres(db)

	fetcher := report.NewFetcher(objects, report.FetcherConfig{
		Timeout:      cfg.Report.FetchTimeout,
		MaxRedirects: cfg.Report.MaxRedirects,
		MaxBytes:     cfg.Report.MaxTemplateBytes,
	})

	deps := handlers.Deps{
		DB:     db,
		Tokens: authz.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Audience),
		Policy: authz.DefaultPolicy,
		Cases:  service.NewCaseService(caseRepo, objects),
		Reports: service.NewReportService(caseRepo, templateRepo, reportRepo, objects, fetcher, service.ReportOptions{
			Strict:   cfg.Report.StrictTokens,
			Location: config.Location(cfg.Report.TimeZone),
			Metrics:  appMetrics,
			Logger:   log,
		}),
		Templates: service.NewTemplateService(templateRepo, objects, service.TemplateOptions{
			Strict: cfg.Report.StrictTokens,
			Logger: log,
		}),
		Documents: service.NewCaseDocumentService(caseRepo, docRepo, objects, service.DocumentOptions{
			Concurrency:  cfg.Report.UploadConcurrency,
			MaxFileBytes: cfg.Report.MaxUploadBytes,
			MaxFiles:     cfg.Report.MaxUploadFiles,
			Metrics:      appMetrics,
			Logger:       log,
		}),
		Commissions:    service.NewCommissionService(caseRepo, commissionRepo),
		Companies:      service.NewCompanyService(companyRepo),
		Billing:        service.NewBillingService(billingRepo, config.Location(cfg.Report.TimeZone)),
		MaxUploadFiles: cfg.Report.MaxUploadFiles,
	}
	if cfg.Auth.JWTSecret == "" {
		log.Warn().Msg("AUTH_JWT_SECRET is not set; every authenticated route will answer 401")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    int(cfg.Report.MaxUploadBytes)*cfg.Report.MaxUploadFiles + 1<<20,
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, deps)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			log.Error().Err(err).Msg("http shutdown")
		}
		if err := shutdownTracing(sctx); err != nil {
			log.Error().Err(err).Msg("tracing shutdown")
		}
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("storage", cfg.Storage.Driver).Msg("listening")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// newStore picks the object store backend. A misconfigured MinIO does not
// stop the process; storage calls fail with an actionable error instead.
func newStore(cfg *config.AppConfig, log zerolog.Logger) storage.Storage {
	if cfg.Storage.Driver == "memory" {
		log.Warn().Msg("using in-memory object storage; files are lost on restart")
		return storage.NewMemory(cfg.MinIO.Bucket)
	}
	store, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Error().Err(err).Msg("object storage unavailable")
		return storage.Unavailable(err)
	}
	return store
}
