package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"glassjoke/internal/handlers"
	"glassjoke/internal/logger"
	"glassjoke/internal/repository"
	"glassjoke/internal/repository/db"
	"glassjoke/internal/server"
	"glassjoke/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve the HTTP API: POST /api/v1/days runs a day, GET /api/v1/days and
/api/v1/logs read the journal, GET /api/v1/ws/days streams a day live.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePort, "port", "", "Listen port (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	conn, err := openDB(log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	repos := repository.NewRepository(conn)
	services := service.NewService(cfg, repos, service.NewMetrics(reg), log)
	apiHandler := handlers.NewHandler(services, reg, log)

	if services.Enabled() {
		log.Infow("operator auth enabled")
	} else {
		log.Warnw("operator auth disabled; set auth.secret_hash to protect /api/v1")
	}

	port := cfg.Port
	if servePort != "" {
		port = servePort
	}

	srv := server.New(cfg.Server)
	errCh := make(chan error, 1)
	go func() {
		log.Infow("listening", "port", port)
		if err := srv.Run(port, apiHandler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	return waitForShutdown(srv, errCh, log)
}

// openDB initializes the SQLite journal using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := cfg.DB.Path
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "glassjoke.db")
		dbPath = "glassjoke.db"
	}
	return db.InitDB(dbPath)
}

// waitForShutdown blocks until a termination signal or a server error, then
// shuts the server down gracefully.
func waitForShutdown(srv *server.Server, errCh <-chan error, log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// allow in-flight requests to complete
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
		return err
	}
	return nil
}
