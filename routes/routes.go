package routes

import (
	"vendora-backend/config"
	"vendora-backend/controllers"
	"vendora-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:8081",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Order routes
		orders := api.Group("/orders")
		{
			orders.POST("", controllers.CreateOrder)
			orders.GET("", controllers.GetOrders)
			orders.GET("/:id", controllers.GetOrder)
			orders.GET("/:id/invoice", controllers.GetOrderInvoice)
			orders.PUT("/:id", controllers.UpdateOrder)
			orders.DELETE("/:id", controllers.DeleteOrder)
		}

		// Market routes
		markets := api.Group("/markets")
		{
			markets.POST("", controllers.CreateMarket)
			markets.GET("", controllers.GetMarkets)
			markets.GET("/:id", controllers.GetMarket)
			markets.PUT("/:id", controllers.UpdateMarket)
			markets.DELETE("/:id", controllers.DeleteMarket)
			markets.GET("/:id/sales", controllers.GetMarketSales)
			markets.POST("/:id/sales", controllers.CreateMarketSale)
		}
		api.DELETE("/sales/:id", controllers.DeleteMarketSale)

		// Expense routes
		expenses := api.Group("/expenses")
		{
			expenses.POST("", controllers.CreateExpense)
			expenses.GET("", controllers.GetExpenses)
			expenses.GET("/summary", controllers.GetExpenseSummary)
			expenses.DELETE("/:id", controllers.DeleteExpense)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Profile and settings routes
		api.GET("/profile", controllers.GetProfile)
		api.PUT("/profile", controllers.UpdateProfile)
		api.GET("/settings", controllers.GetSettings)
		api.PUT("/settings", controllers.UpdateSettings)

		// Backup routes
		backup := api.Group("/backup")
		{
			backup.GET("/export", controllers.ExportBackup)
			backup.POST("/import", controllers.ImportBackup)
			backup.POST("/reset", controllers.ResetData)
		}
	}

	return r
}
