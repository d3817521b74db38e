package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"employee-backend/analytics"
	"employee-backend/api"
	"employee-backend/auth/token"
	"employee-backend/cache"
	"employee-backend/config"
	"employee-backend/middleware/ratelimit"
	rldomain "employee-backend/middleware/ratelimit/domain"
	"employee-backend/middleware/ratelimit/infra"
	"employee-backend/relay"
	"employee-backend/session"
	"employee-backend/store"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kv := cache.NewRedis(cache.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, log)
	defer func() { _ = kv.Close() }()

	pingCtx, pingCancel := context.WithTimeout(ctx, 2*time.Second)
	err = kv.Ping(pingCtx)
	pingCancel()
	if err != nil {
		log.Fatalf("redis ping error: %v", err)
	}

	var employees store.EmployeeRepo
	var users store.UserRepo
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		defer pg.Close()
		if err := pg.Migrate(ctx); err != nil {
			log.Fatalf("postgres migrate error: %v", err)
		}
		employees, users = pg, pg
	} else {
		log.Warn("DATABASE_URL not set, using in-memory repositories")
		employees = store.NewMemoryEmployees()
		users = store.NewMemoryUsers()
	}

	rl := relay.New(kv, cfg.NotificationTTL, log)
	if err := rl.Start(ctx); err != nil {
		log.Fatalf("relay subscribe error: %v", err)
	}

	var admitter rldomain.Admitter
	if cfg.RateStore == "memory" {
		bucket := infra.NewBucketStore(cfg.RateRPS, cfg.RateBurst)
		bucket.StartJanitor(ctx)
		admitter = bucket
	} else {
		admitter = infra.NewWindowStore(kv, cfg.RateWindow, cfg.RateMaxRequests)
	}

	h := &api.Handler{
		Users:     users,
		Employees: employees,
		Sessions:  session.NewRegistry(kv, cfg.TokenTTL, log),
		Counters:  analytics.NewCounters(kv, log),
		Relay:     rl,
		Tokens:    token.NewManager(cfg.JWTSecret, cfg.TokenTTL),
		Bus:       kv,
		Log:       log,
	}

	handler := ratelimit.Middleware(ratelimit.Options{
		Admitter:           admitter,
		KeyHeader:          cfg.RateKeyHeader,
		TrustXForwardedFor: cfg.TrustXFF,
		RejectStatus:       http.StatusTooManyRequests,
		Log:                log,
	})(h.Router())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Infof("server listening on %s", cfg.ListenAddr)
	log.Infof("rate: store=%s window=%s max=%d keyHeader=%q trustXFF=%v", cfg.RateStore, cfg.RateWindow, cfg.RateMaxRequests, cfg.RateKeyHeader, cfg.TrustXFF)
	log.Infof("redis: addr=%s db=%d", cfg.RedisAddr, cfg.RedisDB)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
