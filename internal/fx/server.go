package fx

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/config"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/logger"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/middleware"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/routes"
)

var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	rateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(middleware.Identity())
	api.Use(middleware.RateLimit(rateLimiter))
	{
		api.PUT("/profile", handler.UpsertProfile)
		api.GET("/profile", handler.GetProfile)

		api.GET("/dashboard", handler.Dashboard)

		transactions := api.Group("/transactions")
		{
			transactions.POST("", handler.CreateTransaction)
			transactions.GET("", handler.ListTransactions)
			transactions.GET("/:id", handler.GetTransaction)
			transactions.PATCH("/:id", handler.UpdateTransaction)
			transactions.DELETE("/:id", handler.DeleteTransaction)
		}

		companies := api.Group("/companies")
		{
			companies.POST("", handler.CreateCompany)
			companies.GET("", handler.ListCompanies)
			companies.PATCH("/:id", handler.UpdateCompany)
			companies.DELETE("/:id", handler.DeleteCompany)
		}

		categories := api.Group("/categories")
		{
			categories.POST("", handler.CreateCategory)
			categories.GET("", handler.ListCategories)
			categories.PATCH("/:id", handler.UpdateCategory)
			categories.DELETE("/:id", handler.DeleteCategory)
		}

		sales := api.Group("/sales")
		{
			sales.POST("", handler.CreateSale)
			sales.GET("", handler.ListSales)
			sales.GET("/forecast", handler.SaleForecast)
			sales.GET("/:id", handler.GetSale)
			sales.DELETE("/:id", handler.DeleteSale)
			sales.POST("/:id/payments", handler.RecordPayment)
		}

		leads := api.Group("/leads")
		{
			leads.POST("", handler.CreateLead)
			leads.GET("", handler.ListLeads)
			leads.GET("/conversion", handler.LeadConversion)
			leads.PATCH("/:id/status", handler.UpdateLeadStatus)
			leads.DELETE("/:id", handler.DeleteLead)
		}

		employees := api.Group("/employees")
		{
			employees.POST("", handler.CreateEmployee)
			employees.GET("", handler.ListEmployees)
			employees.PATCH("/:id", handler.UpdateEmployee)
			employees.DELETE("/:id", handler.DeleteEmployee)
		}

		api.GET("/payroll", handler.ComputePayroll)

		reports := api.Group("/reports")
		{
			reports.GET("/period", handler.PeriodReport)
			reports.GET("/monthly", handler.MonthlyTrend)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Server starting")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Server failed to start")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Server stopping...")
			return nil
		},
	})
}
