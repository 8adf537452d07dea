package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/lezerquera/apk-ZIMI/config"
	"github.com/lezerquera/apk-ZIMI/internal/handler"
	appointmenthandler "github.com/lezerquera/apk-ZIMI/internal/handler/appointment"
	authhandler "github.com/lezerquera/apk-ZIMI/internal/handler/auth"
	clinichandler "github.com/lezerquera/apk-ZIMI/internal/handler/clinic"
	contacthandler "github.com/lezerquera/apk-ZIMI/internal/handler/contact"
	flyerhandler "github.com/lezerquera/apk-ZIMI/internal/handler/flyer"
	messagehandler "github.com/lezerquera/apk-ZIMI/internal/handler/message"
	patienthandler "github.com/lezerquera/apk-ZIMI/internal/handler/patient"
	"github.com/lezerquera/apk-ZIMI/internal/middleware"
	"github.com/lezerquera/apk-ZIMI/internal/repository"
	"github.com/lezerquera/apk-ZIMI/internal/repository/memory"
	"github.com/lezerquera/apk-ZIMI/internal/repository/postgres"
	"github.com/lezerquera/apk-ZIMI/internal/router"
	appointmentService "github.com/lezerquera/apk-ZIMI/internal/service/appointment"
	authService "github.com/lezerquera/apk-ZIMI/internal/service/auth"
	clinicService "github.com/lezerquera/apk-ZIMI/internal/service/clinic"
	contactService "github.com/lezerquera/apk-ZIMI/internal/service/contact"
	flyerService "github.com/lezerquera/apk-ZIMI/internal/service/flyer"
	messageService "github.com/lezerquera/apk-ZIMI/internal/service/message"
	patientService "github.com/lezerquera/apk-ZIMI/internal/service/patient"
	"github.com/lezerquera/apk-ZIMI/internal/worker"
	"github.com/lezerquera/apk-ZIMI/pkg/auth"
	"github.com/lezerquera/apk-ZIMI/pkg/email"
	"github.com/lezerquera/apk-ZIMI/pkg/messaging"
	"github.com/lezerquera/apk-ZIMI/pkg/messaging/redis"
	"github.com/lezerquera/apk-ZIMI/pkg/metrics"
	"github.com/lezerquera/apk-ZIMI/pkg/security"
)

const metricsNamespace = "zimi"

// app holds everything built from a Config.
type app struct {
	router   *router.Router
	notifier *worker.AdminNotifier
	closers  []func() error
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Warn().Err(err).Msg("close failed")
		}
	}
}

func newApp(ctx context.Context, cfg *config.Config) (_ *app, err error) {
	a := &app{}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	if err := middleware.RegisterValidators(); err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(metricsNamespace, reg)
	checks := map[string]handler.Pinger{}

	var store *repository.Store
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := postgres.NewDB(cfg.Database)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		store = postgres.NewStore(db, m)
		checks["database"] = dbPinger(db)
	default:
		log.Warn().Msg("using in-memory store; data is lost on restart")
		store = memory.NewStore()
	}

	var broker messaging.Broker = messaging.NopBroker{}
	if cfg.Redis.URL != "" {
		rb, err := redis.NewRedisBroker(ctx, redis.Config{
			URL:          cfg.Redis.URL,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		}, log.Logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, rb.Close)
		broker = rb
		checks["redis"] = rb
	}
	events := messaging.NewEventPublisher(broker, cfg.Redis.ChannelPrefix, m)

	var mailer email.Sender = email.NopSender{}
	if cfg.SMTP.Host != "" {
		mailer = email.NewSMTPSender(email.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.Secrets.SMTPPassword,
			From:     cfg.SMTP.From,
		})
	}

	creds, err := security.NewCredentials(
		cfg.Secrets.AdminEmail,
		cfg.Secrets.AdminPassword,
		cfg.Secrets.AdminPasswordHash,
		security.NewBcryptHasher(0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare admin credentials: %w", err)
	}
	jwtSvc := auth.NewJWTService(cfg.Secrets.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

	logger := log.Logger
	messages := messageService.NewService(store.Messages, events, m, logger)
	authSvc := authService.NewService(creds, jwtSvc, logger)

	handlers := router.Handlers{
		Health: handler.NewHealthHandler(reg, checks),
		Appointment: appointmenthandler.NewHandler(appointmentService.NewService(
			store.Appointments, messages, events, m, logger, cfg.Clinic.AdminDisplayName,
		)),
		Patient: patienthandler.NewHandler(patientService.NewService(store.Patients, logger)),
		Auth:    authhandler.NewHandler(authSvc),
		Message: messagehandler.NewHandler(messages),
		Flyer:   flyerhandler.NewHandler(flyerService.NewService(store.Flyers, logger)),
		Clinic: clinichandler.NewHandler(clinicService.NewService(
			store.Settings, cfg.Cache.TTL, cfg.Cache.CleanupInterval, logger,
		)),
		Contact: contacthandler.NewHandler(contactService.NewService(
			store.Contacts, mailer, cfg.SMTP.To, events, m, logger,
		)),
	}

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	}

	a.router = router.NewRouter(handlers, middleware.NewAuthMiddleware(authSvc, cfg.Auth.RequireAdminToken), router.RouterConfig{
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimit:        rate.Limit(cfg.RateLimit.RequestsPerSecond),
		RateBurst:        cfg.RateLimit.Burst,
		RequestTimeout:   cfg.Server.RequestTimeout,
		CORSConfig:       corsCfg,
		SecurityConfig:   middleware.DefaultSecurityConfig(),
		MetricsPrefix:    metricsNamespace + "_http",
		Registerer:       reg,
	})
	a.router.Setup()

	a.notifier = worker.NewAdminNotifier(broker, events, mailer, cfg.SMTP.To, m, logger)
	return a, nil
}

func dbPinger(db *sqlx.DB) handler.Pinger {
	return handler.PingFunc(db.PingContext)
}
