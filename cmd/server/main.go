package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"haircoolest/internal/adapters/docstore"
	emailPkg "haircoolest/internal/adapters/email"
	web "haircoolest/internal/adapters/http"
	"haircoolest/internal/adapters/http/perf"
	"haircoolest/internal/adapters/media"
	accountsStore "haircoolest/internal/adapters/storage/accounts"
	"haircoolest/internal/application/orchestrators"
	"haircoolest/internal/content"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// .env is optional; real deployments use environment variables.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Initialize database with WAL mode and busy timeout
	dbPath := envOrDefault("HAIRCOOLEST_DB", "haircoolest.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := docstore.InitDB(db); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}
	log.Println("Database initialized successfully!")

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := docstore.NewTimedDB(db, collector)
	store := docstore.NewSQLiteStore(timedDB)

	accounts := accountsStore.NewStore(store)

	// Seed the bootstrap admin account when credentials are configured
	created, err := orchestrators.ExecuteSeedAdmin(context.Background(), orchestrators.SeedAdminInput{
		Email:    os.Getenv("HAIRCOOLEST_ADMIN_EMAIL"),
		Password: os.Getenv("HAIRCOOLEST_ADMIN_PASSWORD"),
	}, orchestrators.SeedAdminDeps{AccountStore: accounts, Now: time.Now})
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	if created {
		log.Println("Seeded bootstrap admin account")
	}

	// Configure email sender: Resend if a key is set, SMTP if a host is
	// set, noop otherwise.
	emailFrom := envOrDefault("HAIRCOOLEST_EMAIL_FROM", "Haircoolest <noreply@haircoolest.com>")
	bookingTo := envOrDefault("HAIRCOOLEST_BOOKING_RECIPIENT", "contact@haircoolest.com")
	var sender emailPkg.Sender
	switch {
	case os.Getenv("HAIRCOOLEST_RESEND_KEY") != "":
		sender = emailPkg.NewResendSender(os.Getenv("HAIRCOOLEST_RESEND_KEY"), emailFrom)
		log.Println("Email sender configured (Resend)")
	case os.Getenv("SMTP_HOST") != "":
		sender = emailPkg.NewSMTPSender(
			os.Getenv("SMTP_HOST"),
			envOrDefault("SMTP_PORT", "587"),
			os.Getenv("SMTP_USER"),
			os.Getenv("SMTP_PASS"),
			emailFrom,
		)
		log.Println("Email sender configured (SMTP)")
	default:
		sender = emailPkg.NewNoopSender()
		if os.Getenv("HAIRCOOLEST_ENV") == "production" {
			log.Println("WARNING: no email provider configured, booking delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop, set HAIRCOOLEST_RESEND_KEY or SMTP_HOST for real delivery)")
		}
	}

	deps := &web.Deps{
		Sanctuary:        content.NewSanctuary(store),
		RitualMenu:       content.NewRitualMenu(store),
		CloudLab:         content.NewCloudLab(store),
		Cave:             content.NewCave(store),
		Site:             content.NewSite(store),
		Accounts:         accounts,
		Uploader:         media.NewUploaderFromEnv(),
		Sender:           sender,
		BookingRecipient: bookingTo,
		EmailFrom:        emailFrom,
	}

	mux := web.NewMux(envOrDefault("HAIRCOOLEST_STATIC_DIR", "static"), deps, collector)

	addr := envOrDefault("HAIRCOOLEST_ADDR", ":8080")
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Haircoolest %s starting on %s (env=%s)", version, addr, envOrDefault("HAIRCOOLEST_ENV", "development"))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("shutting_down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
