package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Ebe-N/shopfront/internal/cache"
	"github.com/Ebe-N/shopfront/internal/cart"
	"github.com/Ebe-N/shopfront/internal/checkout"
	"github.com/Ebe-N/shopfront/internal/client"
	"github.com/Ebe-N/shopfront/internal/events"
	h "github.com/Ebe-N/shopfront/internal/http"
	"github.com/Ebe-N/shopfront/internal/refdata"
)

type Config struct {
	HTTPPort        string
	BackendBaseURL  string
	RedisAddr       string // optional, empty disables the refdata cache
	KafkaBrokers    string // optional, empty disables order events
	KafkaTopic      string
	SessionTTL      time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		BackendBaseURL:  getEnv("BACKEND_BASE_URL", "http://localhost:8081"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		KafkaBrokers:    getEnv("KAFKA_BROKERS", ""),
		KafkaTopic:      getEnv("KAFKA_TOPIC", "order-placed"),
		SessionTTL:      2 * time.Hour,
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {

	cfg := loadConfig()

	httpClient := client.NewHTTPClient(cfg.RequestTimeout)
	catalogClient := client.NewCatalogClient(cfg.BackendBaseURL, httpClient)
	formsClient := client.NewFormsClient(cfg.BackendBaseURL, httpClient)
	orderClient := client.NewOrderClient(cfg.BackendBaseURL, httpClient)

	var formsCache cache.FormsCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()
		formsCache = cache.NewRedisCache(redisClient)
		log.Printf("reference-data cache enabled at %s", cfg.RedisAddr)
	}

	var publisher events.Publisher
	if cfg.KafkaBrokers != "" {
		kafkaPublisher := events.NewKafkaPublisher(cfg.KafkaTopic, strings.Split(cfg.KafkaBrokers, ",")...)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Printf("order events enabled on topic %s", cfg.KafkaTopic)
	}

	sessions := cart.NewSessions(cfg.SessionTTL)
	defer sessions.Close()

	checkoutService := checkout.NewService(sessions, orderClient, publisher)
	refdataService := refdata.NewService(formsClient, formsCache)

	productHandler := h.NewProductHandler(catalogClient, cfg.RequestTimeout)
	cartHandler := h.NewCartHandler(sessions)
	checkoutHandler := h.NewCheckoutHandler(checkoutService, refdataService, cfg.RequestTimeout)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(h.SessionMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Get("/search", productHandler.Search)
			r.Get("/{id}", productHandler.GetByID)
		})
		r.Get("/product-categories", productHandler.Categories)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Delete("/", cartHandler.Clear)
			r.Post("/items", cartHandler.AddItem)
			r.Post("/items/{product_id}/decrement", cartHandler.DecrementItem)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/countries", checkoutHandler.Countries)
			r.Get("/states", checkoutHandler.States)
			r.Get("/credit-card-months", checkoutHandler.CreditCardMonths)
			r.Get("/credit-card-years", checkoutHandler.CreditCardYears)
			r.Post("/purchase", checkoutHandler.Purchase)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(r, "shopfront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("shopfront starting on :%s (backend %s)", cfg.HTTPPort, cfg.BackendBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
