package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) > 0 {
		corsCfg.AllowOrigins = corsOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/login", loginHandler(deps.AuthSvc))
	router.GET("/setup", setupStatusHandler(deps.SettingsSvc))
	router.POST("/setup", setupHandler(deps.SettingsSvc))

	api := router.Group("/api", authMiddleware(deps.AuthSvc))
	{
		api.GET("/me", meHandler())

		api.GET("/products", listProductsHandler(deps.CatalogSvc))
		api.GET("/products/:id", getProductHandler(deps.CatalogSvc))
		api.POST("/products", createProductHandler(deps.CatalogSvc))
		api.PUT("/products/:id", updateProductHandler(deps.CatalogSvc))
		api.DELETE("/products/:id", deleteProductHandler(deps.CatalogSvc))

		api.GET("/toppings", listToppingsHandler(deps.CatalogSvc))
		api.GET("/toppings/:id", getToppingHandler(deps.CatalogSvc))
		api.POST("/toppings", createToppingHandler(deps.CatalogSvc))
		api.PUT("/toppings/:id", updateToppingHandler(deps.CatalogSvc))
		api.DELETE("/toppings/:id", deleteToppingHandler(deps.CatalogSvc))

		api.GET("/categories", listCategoriesHandler(deps.CatalogSvc))
		api.POST("/categories", createCategoryHandler(deps.CatalogSvc))
		api.PUT("/categories/:id", updateCategoryHandler(deps.CatalogSvc))
		api.DELETE("/categories/:id", deleteCategoryHandler(deps.CatalogSvc))

		api.POST("/sales", checkoutHandler(deps.SaleSvc))
		api.GET("/sales", listSalesHandler(deps.SaleSvc))
		api.GET("/sales/:id", getSaleHandler(deps.SaleSvc))
		api.DELETE("/sales/:id", requireAdmin(), deleteSaleHandler(deps.SaleSvc))

		api.GET("/purchases", listPurchasesHandler(deps.PurchaseSvc))
		api.GET("/purchases/summary", purchaseSummaryHandler(deps.PurchaseSvc))
		api.POST("/purchases", createPurchaseHandler(deps.PurchaseSvc))
		api.PUT("/purchases/:id", updatePurchaseHandler(deps.PurchaseSvc))
		api.DELETE("/purchases/:id", deletePurchaseHandler(deps.PurchaseSvc))

		api.GET("/reports/summary", summaryReportHandler(deps.ReportSvc))
		api.GET("/reports/profit", requireAdmin(), profitReportHandler(deps.ReportSvc))

		api.GET("/settings", settingsHandler(deps.SettingsSvc))
		api.PUT("/settings", requireAdmin(), updateSettingsHandler(deps.SettingsSvc))
		api.POST("/settings/factory-reset", requireAdmin(), factoryResetHandler(deps.SettingsSvc))

		api.GET("/users", requireAdmin(), listUsersHandler(deps.UserSvc))
		api.POST("/users", requireAdmin(), createUserHandler(deps.UserSvc))
		api.PUT("/users/:id", requireAdmin(), updateUserHandler(deps.UserSvc))
		api.DELETE("/users/:id", requireAdmin(), deleteUserHandler(deps.UserSvc))

		if deps.CatalogFeed != nil {
			api.GET("/feed/catalog", catalogFeedHandler(deps.CatalogFeed))
		}
	}

	return router
}
