package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Dhyey-19/VaaniBill/internal/auth"
	"github.com/Dhyey-19/VaaniBill/internal/billing"
	"github.com/Dhyey-19/VaaniBill/internal/catalog"
	"github.com/Dhyey-19/VaaniBill/internal/middleware"
	"github.com/Dhyey-19/VaaniBill/internal/reports"
)

type Handlers struct {
	Auth    *auth.Handler
	Catalog *catalog.Handler
	Billing *billing.Handler
	Reports *reports.Handler
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", h.Auth.Signup)
		authGroup.POST("/login", h.Auth.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/me", h.Auth.Me)

		products := protected.Group("/products")
		{
			products.GET("", h.Catalog.List)
			products.POST("", h.Catalog.Create)
			products.PUT("/:id", h.Catalog.Update)
			products.DELETE("/:id", h.Catalog.Delete)
		}

		sessions := protected.Group("/billing/sessions")
		{
			sessions.POST("", h.Billing.StartSession)
			sessions.GET("/:id", h.Billing.GetSession)
			sessions.DELETE("/:id", h.Billing.DiscardSession)
			sessions.POST("/:id/utterances", h.Billing.AddUtterance)
			sessions.PATCH("/:id/items/:itemID", h.Billing.UpdateItem)
			sessions.DELETE("/:id/items/:itemID", h.Billing.RemoveItem)
			sessions.POST("/:id/complete", h.Billing.Complete)
		}

		bills := protected.Group("/bills")
		{
			bills.GET("", h.Billing.ListBills)
			bills.PUT("/:id", h.Billing.UpdateBill)
			bills.DELETE("/:id", h.Billing.DeleteBill)
		}

		protected.GET("/reports", h.Reports.Get)
	}

	return r
}
