package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"electrofusion/auth"
	"electrofusion/cart"
	"electrofusion/catalog"
	"electrofusion/checkout"
	"electrofusion/db"
	"electrofusion/invoice"
	"electrofusion/kv"
	"electrofusion/notify"
	"electrofusion/ratelim"
	"electrofusion/routes"
	"electrofusion/state"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s - %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// newStateKV picks the durable-storage backend: redis when REDIS_ADDR is
// set, flat files when STATE_DIR is set, memory otherwise.
func newStateKV() kv.Store {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		log.Printf("state storage: redis at %s", addr)
		return kv.NewRedis(addr)
	}
	if dir := os.Getenv("STATE_DIR"); dir != "" {
		store, err := kv.NewDir(dir)
		if err != nil {
			log.Fatalf("state storage: %v", err)
		}
		log.Printf("state storage: files under %s", dir)
		return store
	}
	log.Println("state storage: in-memory (set REDIS_ADDR or STATE_DIR to persist)")
	return kv.NewMemory()
}

// newCatalog picks the product source; the shipped fixtures need nothing.
func newCatalog(ctx context.Context) catalog.Provider {
	if os.Getenv("CATALOG_SOURCE") != "mongo" {
		return catalog.NewStatic()
	}
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	if err := db.Connect(ctx, uri); err != nil {
		log.Fatalf("catalog: %v", err)
	}
	return catalog.NewMongo(db.ProductCollection)
}

func paymentDelay() time.Duration {
	if ms := os.Getenv("PAYMENT_DELAY_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v >= 0 {
			return time.Duration(v) * time.Millisecond
		}
	}
	return 2 * time.Second
}

func setupRouter(manager *state.Manager, provider catalog.Provider, hub *notify.Hub, svc *checkout.Service, rl *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	assetsDir := os.Getenv("ASSETS_DIR")
	if assetsDir == "" {
		assetsDir = "./assets"
	}

	routes.AddAuthRoutes(router, auth.NewHandlers(manager), rl)
	routes.AddCatalogRoutes(router, catalog.NewHandlers(provider, assetsDir))
	routes.AddCartRoutes(router, cart.NewHandlers(manager, provider, hub), rl)
	routes.AddCheckoutRoutes(router, checkout.NewHandlers(svc, manager), invoice.NewHandlers(manager), rl)
	routes.AddNotifyRoutes(router, hub)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	ctx := context.Background()

	manager := state.NewManager(newStateKV())
	provider := newCatalog(ctx)
	hub := notify.NewHub()
	rateLimiter := ratelim.NewRateLimiter()
	checkoutSvc := checkout.NewService(manager, hub, paymentDelay(), os.Getenv("INVOICE_DIR"))

	router := setupRouter(manager, provider, hub, checkoutSvc, rateLimiter)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		hub.Stop()
		db.Disconnect(ctx)
	})

	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
