// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run opens the listener, serves until the context is done, SIGINT or SIGTERM
// arrives, or Shutdown is called, and then drains connections within the
// configured shutdown timeout. Listen and serve failures are joined with
// ErrStart, shutdown failures with ErrShutdown.
//
// HealthCheckHandler serves the liveness probe when called without checks
// and the readiness probe otherwise:
//
//	r.Get("/livez", httpserver.HealthCheckHandler(log))
//	r.Get("/readyz", httpserver.HealthCheckHandler(log, pg.Healthcheck(pool)))
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	return srv.Run(ctx, r)
package httpserver
