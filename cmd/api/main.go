package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/amardimiaty/storefront-backend/internal/config"
	"github.com/amardimiaty/storefront-backend/internal/modules/auth"
	"github.com/amardimiaty/storefront-backend/internal/modules/cart"
	"github.com/amardimiaty/storefront-backend/internal/modules/catalog"
	"github.com/amardimiaty/storefront-backend/internal/modules/checkout"
	"github.com/amardimiaty/storefront-backend/internal/modules/layout"
	"github.com/amardimiaty/storefront-backend/internal/modules/notification"
	"github.com/amardimiaty/storefront-backend/internal/modules/prefs"
	"github.com/amardimiaty/storefront-backend/internal/modules/wishlist"
	"github.com/amardimiaty/storefront-backend/internal/platform/kv"
	"github.com/amardimiaty/storefront-backend/internal/platform/pubsub"
	"github.com/amardimiaty/storefront-backend/internal/platform/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	persist, cleanup, err := openPersistence(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	// ── Event buses ─────────────────────────────────────────
	cartBus := pubsub.NewBus[cart.ChangeEvent]()
	wishlistBus := pubsub.NewBus[wishlist.ChangeEvent]()
	consentBus := pubsub.NewBus[prefs.ConsentEvent]()
	adminBus := pubsub.NewBus[layout.AdminEvent]()

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(session.Middleware(cfg.Session.CookieName, cfg.Session.TTL))

	// ── Session state registries ────────────────────────────
	stop := make(chan struct{})
	defer close(stop)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewMemoryRepository(
		catalog.SeedProducts(),
		catalog.SeedCategories(),
		catalog.SeedReviews(),
		catalog.Latency{Base: cfg.Catalog.LatencyBase, Jitter: cfg.Catalog.LatencyJitter},
	)
	searchSeqs := session.NewRegistry(cfg.Session.TTL, func(string) *catalog.Sequencer {
		return &catalog.Sequencer{}
	})
	go searchSeqs.Janitor(cfg.Session.TTL/4, stop)
	catalogService := catalog.NewService(catalogRepo, searchSeqs)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	cartStores := session.NewRegistry(cfg.Session.TTL, func(id string) *cart.Store {
		return cart.NewStore(persist, cartBus, id)
	})
	go cartStores.Janitor(cfg.Session.TTL/4, stop)
	cart.NewHandler(cartStores).RegisterRoutes(router)

	wishlistStores := session.NewRegistry(cfg.Session.TTL, func(id string) *wishlist.Store {
		return wishlist.NewStore(persist, wishlistBus, id)
	})
	go wishlistStores.Janitor(cfg.Session.TTL/4, stop)
	wishlist.NewHandler(wishlistStores).RegisterRoutes(router)

	prefStores := session.NewRegistry(cfg.Session.TTL, func(id string) *prefs.Store {
		return prefs.NewStore(persist, consentBus, id, 3*time.Second)
	})
	go prefStores.Janitor(cfg.Session.TTL/4, stop)
	prefs.NewHandler(prefStores).RegisterRoutes(router)

	// ── Admin content: notifications, layout ────────────────
	notificationManager := notification.NewManager(persist)
	notification.NewHandler(notificationManager).RegisterRoutes(router)

	layoutManager := layout.NewManager(persist, adminBus)
	layout.NewHandler(layoutManager).RegisterRoutes(router)

	// ── Checkout & auth stubs ───────────────────────────────
	checkoutService := checkout.NewService(
		checkout.NewMemoryRepository(),
		checkout.NewStubGateway(cfg.Catalog.LatencyBase),
	)
	checkout.NewHandler(checkoutService).RegisterRoutes(router)

	authService := auth.NewService(auth.NewMemoryRepository(), cfg.JWTSecret)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Start server ────────────────────────────────────────
	addr := ":" + cfg.HTTPServer.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.TimeoutRead,
		WriteTimeout: cfg.HTTPServer.TimeoutWrite,
		IdleTimeout:  cfg.HTTPServer.TimeoutIdle,
	}
	fmt.Printf("Storefront API server starting on %s (persistence: %s)\n", addr, cfg.Persist.Backend)
	log.Fatal(server.ListenAndServe())
}

// openPersistence builds the configured key-value backend. The cleanup
// function releases whatever connection the backend holds.
func openPersistence(cfg *config.Config) (kv.Store, func(), error) {
	switch cfg.Persist.Backend {
	case "redis":
		store, err := kv.NewRedisStore(cfg.Persist.RedisURL, cfg.Persist.KeyPrefix, cfg.Persist.TTL)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	case "postgres":
		db, err := sql.Open("postgres", cfg.Persist.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}
		fmt.Println("Successfully connected to the database!")
		return kv.NewPostgresStore(db), func() { db.Close() }, nil
	default:
		return kv.NewMemoryStore(), func() {}, nil
	}
}
