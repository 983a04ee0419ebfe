package main // Entry point package

import (
	"log" // Logging library

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/train-booking-api/internal/config"
	"github.com/iliyamo/train-booking-api/internal/database"
	"github.com/iliyamo/train-booking-api/internal/handler"
	"github.com/iliyamo/train-booking-api/internal/middleware"
	"github.com/iliyamo/train-booking-api/internal/queue"
	"github.com/iliyamo/train-booking-api/internal/repository"
	"github.com/iliyamo/train-booking-api/internal/router"
	queue_publisher "github.com/iliyamo/train-booking-api/internal/service"
)

func main() {
	cfg := config.Load() // Load .env + environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	// One-time schema bootstrap, before any request is served.
	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	users := repository.NewUserRepo(db)
	trains := repository.NewTrainRepo(db)
	orders := repository.NewOrderRepo(db)
	passengers := repository.NewPassengerRepo(db)
	promotions := repository.NewPromotionRepo(db)
	tickets := repository.NewSupportTicketRepo(db)

	h := router.Handlers{
		Auth:       handler.NewAuthHandler(cfg, users),
		Trains:     handler.NewTrainHandler(trains),
		Orders:     handler.NewOrderHandler(orders, trains, queue_publisher.PublishOrderPaid),
		Profile:    handler.NewProfileHandler(users),
		Passengers: handler.NewPassengerHandler(passengers),
		Support:    handler.NewSupportHandler(tickets),
		Promotions: handler.NewPromotionHandler(promotions),
		Admin:      handler.NewAdminHandler(trains, users),
	}

	// Response cache over the public read endpoints.  A nil Redis client
	// turns the middleware into a pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, response cache disabled")
	}
	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)

	e := echo.New()
	router.RegisterRoutes(e, h, cfg.JWTSecret, users, cache)

	// Background consumer appending paid orders to logs/payments.log.
	go queue.StartPaymentConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
