package router

import (
	"time"

	"github.com/NightFoX54/ERP-Proje/internal/config"
	"github.com/NightFoX54/ERP-Proje/internal/handler"
	"github.com/NightFoX54/ERP-Proje/internal/infra"
	"github.com/NightFoX54/ERP-Proje/internal/middleware"
	"github.com/NightFoX54/ERP-Proje/internal/model"
	"github.com/NightFoX54/ERP-Proje/internal/repository"
	"github.com/NightFoX54/ERP-Proje/internal/service"
	"github.com/NightFoX54/ERP-Proje/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine plus the
// worker handlers the main goroutine feeds into the pool.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, *worker.Handlers) {
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

	// Infrastructure
	mailer := infra.NewMailer(cfg)
	pdfGen := infra.NewPDFGenerator(cfg.PDFStoragePath)

	// Repositories
	accountRepo := repository.NewAccountRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	stockItemRepo := repository.NewStockItemRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productTypeRepo := repository.NewProductTypeRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// Services
	authSvc := service.NewAuthService(accountRepo, cfg)
	branchSvc := service.NewBranchService(branchRepo)
	stockSvc := service.NewStockService(stockItemRepo, categoryRepo, productTypeRepo, branchRepo)
	ledger := service.NewStockLedger(stockItemRepo, movementRepo)
	orderSvc := service.NewOrderService(orderRepo, stockItemRepo, categoryRepo, productTypeRepo, ledger, dispatcher)
	statsSvc := service.NewStatisticsService(stockItemRepo, orderRepo, categoryRepo, branchRepo)
	notificationSvc := service.NewNotificationService(notificationRepo)

	// Handlers
	authH := handler.NewAuthHandler(authSvc)
	branchesH := handler.NewBranchesHandler(branchSvc)
	stockH := handler.NewStockHandler(stockSvc)
	ordersH := handler.NewOrdersHandler(orderSvc, pdfGen)
	statsH := handler.NewStatisticsHandler(statsSvc)
	notificationsH := handler.NewNotificationsHandler(notificationSvc)

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/auth/register", middleware.RequireRole(model.RoleAdmin), authH.Register)

		orders := v1.Group("/orders")
		{
			orders.POST("", ordersH.Create)
			orders.GET("", ordersH.List)
			orders.GET("/:id", ordersH.Get)
			orders.POST("/:id/fulfill", ordersH.Fulfill)
			orders.PUT("/:id/status", ordersH.SetStatus)
			orders.GET("/:id/delivery-note", ordersH.DeliveryNote)
		}

		stock := v1.Group("/stock")
		{
			stock.POST("/items", stockH.CreateItem)
			stock.GET("/items", stockH.ListItems)
			stock.GET("/items/:id", stockH.GetItem)
			stock.PATCH("/items/:id", stockH.UpdateItem)
			stock.DELETE("/items/:id", stockH.DeleteItem)
		}

		catalog := v1.Group("/catalog")
		{
			catalog.POST("/categories", stockH.CreateCategory)
			catalog.GET("/categories", stockH.ListCategories)
			catalog.DELETE("/categories/:id", stockH.DeleteCategory)
			catalog.POST("/types", middleware.RequireRole(model.RoleAdmin), stockH.CreateProductType)
			catalog.GET("/types", stockH.ListProductTypes)
		}

		branches := v1.Group("/branches")
		{
			branches.GET("", branchesH.List)
			branches.GET("/:id", branchesH.Get)
			admin := branches.Group("", middleware.RequireRole(model.RoleAdmin))
			{
				admin.POST("", branchesH.Create)
				admin.PATCH("/:id", branchesH.Update)
				admin.DELETE("/:id", branchesH.Delete)
			}
		}

		stats := v1.Group("/statistics")
		{
			stats.GET("/purchases", statsH.Purchases)
			stats.GET("/sales", statsH.Sales)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationsH.List)
			notifications.POST("/:id/read", notificationsH.MarkRead)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	workerHandlers := &worker.Handlers{
		Notifications: worker.NewNotificationWorker(accountRepo, notificationRepo, dispatcher),
		Email:         worker.NewEmailWorker(mailer),
	}
	return r, workerHandlers
}
