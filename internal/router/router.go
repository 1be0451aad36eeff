package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListActiveRounds(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBookingByCode(c *ginext.Context)

	ListRounds(c *ginext.Context)
	CreateRound(c *ginext.Context)
	SetRoundActive(c *ginext.Context)
	ListBookings(c *ginext.Context)
	ReviewBooking(c *ginext.Context)
}

func InitRouter(mode string, h Handler, adminAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.GET("/rounds", h.ListActiveRounds)
		api.POST("/rounds/:id/bookings", h.CreateBooking)
		api.GET("/bookings/:code", h.GetBookingByCode)
	}

	admin := api.Group("/admin", adminAuth)
	{
		// Rounds
		admin.GET("/rounds", h.ListRounds)
		admin.POST("/rounds", h.CreateRound)
		admin.PATCH("/rounds/:id", h.SetRoundActive)

		// Bookings
		admin.GET("/bookings", h.ListBookings)
		admin.POST("/bookings/:id/review", h.ReviewBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
