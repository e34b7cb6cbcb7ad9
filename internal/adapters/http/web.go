package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"haircoolest/internal/adapters/email"
	"haircoolest/internal/adapters/http/middleware"
	"haircoolest/internal/adapters/http/perf"
	"haircoolest/internal/adapters/media"
	accountsStore "haircoolest/internal/adapters/storage/accounts"
	"haircoolest/internal/content"
)

// Deps holds every dependency the handlers need: the per-area content
// modules, the account store, the media uploader and the email sender.
type Deps struct {
	Sanctuary  *content.Sanctuary
	RitualMenu *content.RitualMenu
	CloudLab   *content.CloudLab
	Cave       *content.Cave
	Site       *content.Site
	Accounts   *accountsStore.Store
	Uploader   *media.Uploader
	Sender     email.Sender

	// BookingRecipient is the shop inbox that receives booking orders.
	BookingRecipient string
	// EmailFrom is the sender address on outgoing mail.
	EmailFrom string
}

// loadCSRFKey reads the CSRF secret from HAIRCOOLEST_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("HAIRCOOLEST_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("HAIRCOOLEST_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("HAIRCOOLEST_ENV") == "production" {
		log.Fatal("HAIRCOOLEST_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set HAIRCOOLEST_CSRF_KEY for production.")
	return key
}

// Global deps instance (set by NewMux)
var deps *Deps

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, d *Deps, collector *perf.Collector) http.Handler {
	deps = d
	perfCollector = collector
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("HAIRCOOLEST_ENV") == "production"

	mux := http.NewServeMux()
	if staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> Auth -> CSRF -> SecurityHeaders -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
