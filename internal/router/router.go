package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework handling the routing

	"github.com/iliyamo/train-booking-api/internal/handler"    // handlers implementing the endpoint logic
	"github.com/iliyamo/train-booking-api/internal/middleware" // bearer auth and response cache middleware
)

// Handlers bundles every handler the router wires up.  main constructs the
// concrete handlers against the repositories and passes them in here.
type Handlers struct {
	Auth       *handler.AuthHandler
	Trains     *handler.TrainHandler
	Orders     *handler.OrderHandler
	Profile    *handler.ProfileHandler
	Passengers *handler.PassengerHandler
	Support    *handler.SupportHandler
	Promotions *handler.PromotionHandler
	Admin      *handler.AdminHandler
}

// RegisterRoutes registers the full HTTP surface of the booking API.
// jwtSecret signs and verifies the bearer tokens of protected routes;
// users resolves token subjects to user records; cache (optionally a
// pass-through) wraps the public read endpoints.
func RegisterRoutes(e *echo.Echo, h Handlers, jwtSecret string, users middleware.UserLoader, cache echo.MiddlewareFunc) {
	// Unauthenticated surface.
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)
	e.POST("/auth/register", h.Auth.Register)
	e.POST("/auth/login", h.Auth.Login)
	e.GET("/api/trains/search", h.Trains.Search, cache)
	e.GET("/api/trains/:id", h.Trains.Get, cache)
	e.GET("/api/promotions", h.Promotions.List, cache)

	// Routes under /api that require a resolved user record.  The
	// middleware answers 401 for bad tokens and 404 when the token's user
	// vanished.
	auth := e.Group("/api")
	auth.Use(middleware.RequireUser(jwtSecret, users))
	auth.POST("/orders", h.Orders.Create)
	auth.GET("/orders", h.Orders.List)
	auth.POST("/orders/:id/pay", h.Orders.Pay)
	auth.GET("/profile", h.Profile.Get)
	auth.PUT("/profile", h.Profile.Update)
	auth.GET("/passengers", h.Passengers.List)
	auth.POST("/passengers", h.Passengers.Add)
	auth.GET("/support/tickets", h.Support.List)
	auth.POST("/support/tickets", h.Support.Create)

	// Admin surface: same auth chain plus the admin flag check.
	admin := e.Group("/api/admin")
	admin.Use(middleware.RequireUser(jwtSecret, users))
	admin.Use(middleware.RequireAdmin())
	admin.GET("/flights", h.Admin.ListFlights)
	admin.POST("/flights", h.Admin.AddFlight)
	admin.PUT("/flights/:id", h.Admin.UpdateFlight)
	admin.DELETE("/flights/:id", h.Admin.DeleteFlight)
	admin.GET("/users", h.Admin.ListUsers)
}
