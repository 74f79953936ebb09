package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"carmarket/config"
	"carmarket/ecode"
	"carmarket/logging/logger"
	"carmarket/metrics"
	"carmarket/middleware"
	"carmarket/net/resp"
	"carmarket/service"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// NewRouter builds the gin engine with the full route table.
func NewRouter(cfg *config.Config, svc *service.Service, health HealthChecker, collector *metrics.Collector, log *logger.Logger) *gin.Engine {
	if cfg.RunMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Trace(), middleware.Logging(log), middleware.Metrics(collector))

	r.GET("/health", func(c *gin.Context) {
		if err := health.Ping(c.Request.Context()); err != nil {
			resp.Fail(c.Writer, &resp.Exception{
				Status:  http.StatusServiceUnavailable,
				Code:    ecode.ServiceUnavailable,
				Message: "database unreachable",
			})
			return
		}
		resp.Success(c.Writer, map[string]string{"status": "ok"})
	})
	r.GET("/metrics", func(c *gin.Context) {
		resp.Success(c.Writer, collector.Snapshot())
	})

	api := r.Group("/api/v1")

	auth := NewAuth(svc.Auth, log)
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/token", auth.Token)
		authGroup.GET("/me", middleware.Auth(svc.Auth), auth.Me)
	}

	users := NewUser(svc.Users, log)
	userGroup := api.Group("/users")
	{
		userGroup.POST("", users.Create)
		userGroup.GET("", users.List)
		userGroup.GET("/:id", users.Get)
		userGroup.GET("/:id/profile", users.Profile)
		userGroup.PATCH("/:id", users.Update)
		userGroup.DELETE("/:id", users.Delete)
	}

	cars := NewCar(svc.Cars, log)
	carGroup := api.Group("/cars")
	{
		carGroup.POST("", cars.Create)
		carGroup.GET("", cars.List)
		carGroup.GET("/:id", cars.Get)
		carGroup.GET("/:id/details", cars.Details)
		carGroup.PATCH("/:id", cars.Update)
		carGroup.DELETE("/:id", cars.Delete)
	}

	orders := NewOrder(svc.Orders, log)
	orderGroup := api.Group("/orders")
	{
		orderGroup.POST("", orders.Create)
		orderGroup.GET("", orders.List)
		orderGroup.GET("/:id", orders.Get)
		orderGroup.GET("/:id/details", orders.Details)
		orderGroup.PATCH("/:id", orders.Update)
		orderGroup.DELETE("/:id", orders.Delete)
	}

	payments := NewPayment(svc.Payments, log)
	paymentGroup := api.Group("/payments")
	{
		paymentGroup.POST("", payments.Create)
		paymentGroup.GET("", payments.List)
		paymentGroup.GET("/:id", payments.Get)
		paymentGroup.PATCH("/:id", payments.Update)
		paymentGroup.DELETE("/:id", payments.Delete)
	}

	deliveries := NewDelivery(svc.Deliveries, log)
	deliveryGroup := api.Group("/deliveries")
	{
		deliveryGroup.POST("", deliveries.Create)
		deliveryGroup.GET("", deliveries.List)
		deliveryGroup.GET("/:id", deliveries.Get)
		deliveryGroup.GET("/:id/details", deliveries.Details)
		deliveryGroup.PATCH("/:id", deliveries.Update)
		deliveryGroup.DELETE("/:id", deliveries.Delete)
	}

	reviews := NewReview(svc.Reviews, log)
	reviewGroup := api.Group("/reviews")
	{
		reviewGroup.POST("", reviews.Create)
		reviewGroup.GET("", reviews.List)
		reviewGroup.GET("/:id", reviews.Get)
		reviewGroup.PATCH("/:id", reviews.Update)
		reviewGroup.DELETE("/:id", reviews.Delete)
	}

	photos := NewCarPhoto(svc.Photos, log)
	photoGroup := api.Group("/car-photos")
	{
		photoGroup.POST("", photos.Create)
		photoGroup.GET("", photos.List)
		photoGroup.GET("/:id", photos.Get)
		photoGroup.PATCH("/:id", photos.Update)
		photoGroup.DELETE("/:id", photos.Delete)
	}

	reports := NewCarReport(svc.Reports, log)
	reportGroup := api.Group("/car-reports")
	{
		reportGroup.POST("", reports.Create)
		reportGroup.GET("", reports.List)
		reportGroup.GET("/:id", reports.Get)
		reportGroup.PATCH("/:id", reports.Update)
		reportGroup.DELETE("/:id", reports.Delete)
	}

	return r
}
