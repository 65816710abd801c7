package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xavierca1/leadboard/internal/config"
	"github.com/xavierca1/leadboard/internal/entity"
	"github.com/xavierca1/leadboard/internal/infra/database"
	"github.com/xavierca1/leadboard/internal/infra/http/handlers"
	"github.com/xavierca1/leadboard/internal/infra/http/middleware"
	"github.com/xavierca1/leadboard/internal/infra/memory"
	"github.com/xavierca1/leadboard/internal/infra/queue"
	"github.com/xavierca1/leadboard/internal/infra/worker"
	"github.com/xavierca1/leadboard/internal/logger"
	"github.com/xavierca1/leadboard/internal/server"
	"github.com/xavierca1/leadboard/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer logOut.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Storage
	var (
		db        *sqlx.DB
		leadRepo  entity.LeadRepository
		tmplRepo  entity.EmailTemplateRepository
		dbChecker handlers.Pinger
	)
	switch cfg.Storage.Driver {
	case "memory":
		logOut.Warnw("using in-memory storage, data is lost on restart")
		leadRepo = memory.NewLeadRepository()
		tmplRepo = memory.NewEmailTemplateRepository()
	default:
		db, err = database.NewDBConnection(cfg.Database.URL, cfg.Database.MaxOpen, cfg.Database.MaxIdle)
		if err != nil {
			logOut.Fatalw("database unavailable", "err", err)
		}
		defer db.Close()

		if cfg.Database.Migrate {
			if err := database.Migrate(ctx, db); err != nil {
				logOut.Fatalw("schema migration failed", "err", err)
			}
		}
		leadRepo = database.NewLeadRepository(db)
		tmplRepo = database.NewEmailTemplateRepository(db)
		dbChecker = db
	}

	// 2. Events
	var (
		publisher usecase.EventPublisher = queue.NopProducer{Log: logOut}
		broker    handlers.BrokerConn
	)
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.URL)
		if err != nil {
			logOut.Fatalw("rabbitmq unavailable", "err", err)
		}
		defer rabbitMQ.Close()

		publisher = queue.NewProducer(rabbitMQ.Ch)
		broker = rabbitMQ.Conn

		// consumer runs on its own channel
		consumeCh, err := rabbitMQ.Conn.Channel()
		if err != nil {
			logOut.Fatalw("rabbitmq consumer channel", "err", err)
		}
		auditWorker := queue.NewWorker(consumeCh, logOut.Named("audit"))
		go func() {
			if err := auditWorker.Start(ctx, queue.QueueName); err != nil {
				logOut.Errorw("audit worker exited", "err", err)
			}
		}()
	}

	// 3. Background workers
	statsWorker := worker.NewLeadStatsWorker(leadRepo, cfg.Stats.Interval, logOut.Named("stats"))
	go statsWorker.Start(ctx)

	// 4. Use cases
	leadService := usecase.NewLeadService(leadRepo, publisher, logOut)
	templateService := usecase.NewTemplateService(tmplRepo)
	sendEmailUC := usecase.NewSendEmailUseCase(tmplRepo, publisher, logOut)
	authenticator := usecase.NewStaticAuthenticator(cfg.Auth.Username, cfg.Auth.Password)

	// 5. Handlers
	loginLimiter := middleware.NewRateLimiter(10, time.Minute) // 10 attempts/min per IP
	defer loginLimiter.Stop()

	leadHandler := handlers.NewLeadHandler(leadService, logOut)
	templateHandler := handlers.NewTemplateHandler(templateService, logOut)
	emailHandler := handlers.NewEmailHandler(sendEmailUC, logOut)
	authHandler := handlers.NewAuthHandler(authenticator, cfg.HTTP.SecureCookies, logOut)
	authHandler.LoginLimiter = loginLimiter.Limit
	healthHandler := handlers.NewHealthHandler(dbChecker, broker, cfg.Storage.Driver)

	// 6. Router
	r := newRouter(cfg, logOut)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/auth", authHandler.Routes())
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Mount("/leads", leadHandler.Routes())
		r.Mount("/templates", templateHandler.Routes())
		r.Post("/send-email", emailHandler.Send)
	})

	srv := server.New(cfg.HTTP.ListenAddr, r)
	go func() {
		logOut.Infow("http server listening", "addr", cfg.HTTP.ListenAddr, "storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logOut.Fatalw("http server", "err", err)
		}
	}()

	<-ctx.Done()
	logOut.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logOut.Errorw("graceful shutdown failed", "err", err)
	}
}

func newRouter(cfg *config.Config, logOut *zap.SugaredLogger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logOut))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(middleware.Security)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.HTTP.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	return r
}
