package router

import (
	"time"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/config"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/handler"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/infra"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/middleware"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/repository"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/service"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, geminiCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	imageStore := infra.NewImageStore(cfg.StoragePath, cfg.PublicBaseURL)
	geminiClient := infra.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)

	// ── Repositories ─────────────────────────────────────────────────────────
	accountRepo := repository.NewAccountRepository(db)
	productRepo := repository.NewProductRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	platformRepo := repository.NewPlatformRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(accountRepo, rdb, cfg)
	productSvc := service.NewProductService(productRepo, supplierRepo, movementRepo, imageStore)
	supplierSvc := service.NewSupplierService(supplierRepo)
	platformSvc := service.NewPlatformService(platformRepo)
	saleSvc := service.NewSaleService(saleRepo, productRepo, platformRepo, movementRepo, dispatcher)
	assetSvc := service.NewAssetService(imageStore, productRepo)
	dashboardSvc := service.NewDashboardService(saleSvc, productRepo, cfg.ReportStoragePath)
	insightSvc := service.NewInsightService(saleSvc, geminiClient, geminiCB)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc, assetSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	platformsH := handler.NewPlatformsHandler(platformSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc, insightSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Product images are served straight from disk under the public prefix.
	r.Static("/static/product-images", imageStore.Root())

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/signup", middleware.LoginRateLimiter(), authH.SignUp)
		auth.POST("/signin", middleware.LoginRateLimiter(), authH.SignIn)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, rdb)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/auth/signout", authH.SignOut)

		products := v1.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.GET("/:id", productsH.Get)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)

			products.POST("/:id/variations", productsH.CreateVariation)
			products.DELETE("/:id/variations/:variation_id", productsH.DeleteVariation)

			products.POST("/:id/stock", productsH.StockEntry)
			products.GET("/:id/movements", productsH.ListMovements)

			products.POST("/:id/image", productsH.UploadImage)
			products.DELETE("/:id/image", productsH.DeleteImage)
		}

		suppliers := v1.Group("/suppliers")
		{
			suppliers.POST("", suppliersH.Create)
			suppliers.GET("", suppliersH.List)
			suppliers.GET("/cost-hint", suppliersH.CostHint)
			suppliers.GET("/:id", suppliersH.Get)
			suppliers.PUT("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}

		platforms := v1.Group("/platforms")
		{
			platforms.GET("", platformsH.List)
			platforms.POST("", platformsH.Create)
		}

		sales := v1.Group("/sales")
		{
			sales.POST("", salesH.Record)
			sales.GET("", salesH.List)
			sales.DELETE("/:id", salesH.Delete)
			sales.PATCH("/:id/status", salesH.UpdateStatus)
		}

		v1.GET("/dashboard/stats", dashboardH.Stats)
		v1.GET("/dashboard/insight", dashboardH.Insight)
		v1.GET("/dashboard/report", dashboardH.Report)
		v1.POST("/simulate", dashboardH.Simulate)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
