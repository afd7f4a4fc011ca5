// Command sessiond is a small HTTP host for the session manager backed by
// PostgreSQL. It serves a visit counter with flashed notices plus login,
// logout and password-change endpoints that exercise user binding.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sessionkit/internal/db/migrations"
	"github.com/dmitrymomot/sessionkit/pkg/clientip"
	"github.com/dmitrymomot/sessionkit/pkg/config"
	"github.com/dmitrymomot/sessionkit/pkg/cookie"
	"github.com/dmitrymomot/sessionkit/pkg/fingerprint"
	"github.com/dmitrymomot/sessionkit/pkg/httpserver"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/pg"
	"github.com/dmitrymomot/sessionkit/pkg/requestid"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("sessiond stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := config.LoadEnv(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	var (
		logCfg    logger.Config
		pgCfg     pg.Config
		sessCfg   session.Config
		cookieCfg cookie.Config
		httpCfg   httpserver.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&logCfg) },
		func() error { return config.Load(&pgCfg) },
		func() error { return config.Load(&sessCfg) },
		func() error { return config.Load(&cookieCfg) },
		func() error { return config.Load(&httpCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	log, err := logger.NewFromConfig(logCfg, logger.WithContextExtractors(requestid.LogExtractor()))
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Migrations are compiled into the binary; the path is relative to the embedded FS.
	pgCfg.MigrationsPath = "."
	if err := pg.Migrate(ctx, pool, pgCfg, log, pg.WithMigrationsFS(migrations.FS)); err != nil {
		return err
	}

	cookies, err := cookie.NewFromConfig(cookieCfg)
	if err != nil {
		return err
	}

	store := session.NewPGStore(pool,
		session.WithTable(sessCfg.Table),
		session.WithCleanHook(auditCleanHook(log)),
	)
	mgr := session.NewFromConfig(sessCfg,
		session.WithStore(store),
		session.WithCookieManager(cookies),
		session.WithLogger(log),
	)

	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware, fingerprint.Middleware)

	r.Get("/livez", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, pg.Healthcheck(pool)))

	h := &handlers{mgr: mgr, log: log}
	r.Group(func(r chi.Router) {
		r.Use(mgr.Middleware)
		r.Get("/", h.home)
		r.Post("/notice", h.notice)
		r.Post("/login", h.login)
		r.Post("/password", h.password)
		r.Post("/logout", h.logout)
	})

	return httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log)).Run(ctx, r)
}

// auditCleanHook logs every delete statement without changing it.
func auditCleanHook(log *slog.Logger) session.CleanStatementFunc {
	return func(stmt string, reason session.CleanReason, _ []any) string {
		log.Debug("session delete",
			logger.Component("session.store"),
			slog.String("reason", string(reason)),
			logger.Statement(stmt),
		)
		return ""
	}
}
