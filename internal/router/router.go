package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework for routing

	"github.com/iliyamo/hotel-room-booking/internal/handler"    // handlers implementing the endpoints
	"github.com/iliyamo/hotel-room-booking/internal/middleware" // JWT authentication and response cache
)

// RegisterRoutes registers routes that require no authentication and no
// dependencies.  Currently it exposes only a health check used by load
// balancers to verify that the service is running.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterHotels registers the public hotel-browsing endpoints.  These
// routes require no authentication and are served through the Redis
// response cache; pass a pass-through middleware when caching is disabled.
func RegisterHotels(e *echo.Echo, h *handler.HotelHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/hotels", cache)
	g.GET("", h.GetHotels)
	g.GET("/:hotelId", h.GetHotelWithRooms)
}

// RegisterBooking registers the booking endpoints.  All of them require a
// valid access token; the JWTAuth middleware populates the caller's
// identity before the handlers run.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/booking", middleware.JWTAuth(jwtSecret))
	g.GET("", h.GetBooking)
	g.POST("", h.CreateBooking)
	g.PUT("/:bookingId", h.ChangeBooking)
}
