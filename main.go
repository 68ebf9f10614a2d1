package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/mattn/go-isatty"
	_ "modernc.org/sqlite"

	"github.com/E10-Naganiom/ofraud-dashboard-web/apiclient"
	"github.com/E10-Naganiom/ofraud-dashboard-web/cliparse"
	"github.com/E10-Naganiom/ofraud-dashboard-web/db"
	"github.com/E10-Naganiom/ofraud-dashboard-web/middleware"
	"github.com/E10-Naganiom/ofraud-dashboard-web/router"
	"github.com/E10-Naganiom/ofraud-dashboard-web/session"
)

func main() {
	var err error

	// .env is a convenience for local runs; absence is not an error
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded configuration from .env")
	}

	setupLogging()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the session database (sqlite file by default, postgres optional)
	dbConn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Session database ready", "type", cfg.DatabaseType)

	// Session store with durable persistence. The logout signal fires when
	// a session ends for any reason, including backend token rejection.
	store := session.NewStore(session.NewSQLPersister(dbConn), func() {
		slog.Info("session ended, operator must log in again")
	})

	// Restore any persisted session before serving: guarded routes answer
	// 503 while resolution is pending, never a flash of denied content
	store.Restore()
	if store.IsAuthenticated() {
		slog.Info("Restored persisted session", "user", store.Snapshot().Identity.Email)
	}

	api := apiclient.New(cfg.BackendURL, store.Token)

	// Create router
	mux := router.NewRouter(store, api, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "backend", cfg.BackendURL)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// setupLogging picks a human-readable handler on a terminal and JSON
// otherwise, so piped logs stay machine-parseable.
func setupLogging() {
	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, nil)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	slog.SetDefault(slog.New(handler))
}
