package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-warehouse-api/internal/handler"
	"go-warehouse-api/internal/middleware"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/sequence"
	"go-warehouse-api/internal/service"
	"go-warehouse-api/internal/ws"
	"go-warehouse-api/pkg/database"
	"go-warehouse-api/pkg/redisclient"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Role{}, &model.User{},
		&model.Category{}, &model.Unit{}, &model.Product{}, &model.Warehouse{},
		&model.InboundRequest{}, &model.InboundItem{},
		&model.OutboundRequest{}, &model.OutboundItem{},
	)

	// 3. Seed default roles, warehouses, and admin user
	seedRolesWarehousesAndAdmin(db)

	// 4. Setup Redis (request number sequences)
	rdb := redisclient.Connect()
	seqGen := sequence.NewRedisGenerator(rdb)

	// 5. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 6. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	unitRepo := repository.NewUnitRepo(db)
	productRepo := repository.NewProductRepo(db)
	warehouseRepo := repository.NewWarehouseRepo(db)
	inboundRepo := repository.NewInboundRepo(db)
	outboundRepo := repository.NewOutboundRepo(db)
	statsRepo := repository.NewStatsRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, roleRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	unitService := service.NewUnitService(unitRepo, productRepo)
	productService := service.NewProductService(productRepo, categoryRepo, unitRepo)
	warehouseService := service.NewWarehouseService(warehouseRepo)
	inboundService := service.NewInboundService(inboundRepo, warehouseRepo, seqGen, wsHub)
	outboundService := service.NewOutboundService(outboundRepo, warehouseRepo, seqGen, wsHub)
	dashboardService := service.NewDashboardService(statsRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleRepo)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	unitHandler := handler.NewUnitHandler(unitService)
	productHandler := handler.NewProductHandler(productService)
	warehouseHandler := handler.NewWarehouseHandler(warehouseService)
	inboundHandler := handler.NewInboundHandler(inboundService)
	outboundHandler := handler.NewOutboundHandler(outboundService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Warehouse Admin API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 8. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	credentialLimiter := middleware.CredentialLimiter()
	auth.Post("/login", credentialLimiter, authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/change-password", credentialLimiter, authHandler.ChangePassword)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Dashboard Routes (authenticated users can view)
	protected.Get("/dashboard/overview", dashboardHandler.GetOverview)
	protected.Get("/dashboard/request-volume", dashboardHandler.GetRequestVolume)

	// User Management Routes (admin only)
	users := protected.Group("/user", middleware.RequireRole(model.RoleAdmin))
	users.Get("/", userHandler.GetUsers)
	users.Get("/:id", userHandler.GetUser)
	users.Post("/", userHandler.CreateUser)
	users.Put("/:id", userHandler.UpdateUser)
	users.Put("/:id/status", userHandler.SetUserStatus)

	// Role Routes
	protected.Get("/role", middleware.RequireRole(model.RoleAdmin), roleHandler.GetRoles)

	// Category Routes
	protected.Get("/category", categoryHandler.GetCategories)
	protected.Get("/category/flat", categoryHandler.GetFlattenedCategories)
	protected.Get("/category/:id/parent-options", categoryHandler.GetParentOptions)
	protected.Post("/category", middleware.RequireRole(model.RoleAdmin, model.RoleManage), categoryHandler.CreateCategory)
	protected.Put("/category/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManage), categoryHandler.UpdateCategory)
	protected.Delete("/category/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManage), categoryHandler.DeleteCategory)

	// Unit Routes
	protected.Get("/unit", unitHandler.GetUnits)
	protected.Post("/unit", middleware.RequireRole(model.RoleAdmin, model.RoleManage), unitHandler.CreateUnit)
	protected.Put("/unit/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManage), unitHandler.UpdateUnit)
	protected.Delete("/unit/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManage), unitHandler.DeleteUnit)

	// Product Routes
	protected.Get("/product", productHandler.GetProducts)
	protected.Get("/product/:id", productHandler.GetProduct)
	protected.Post("/product", middleware.RequireRole(model.RoleAdmin, model.RoleManage), productHandler.CreateProduct)
	protected.Put("/product/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManage), productHandler.UpdateProduct)
	protected.Delete("/product/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManage), productHandler.DeactivateProduct)

	// Warehouse Routes
	protected.Get("/warehouse", warehouseHandler.GetWarehouses)
	protected.Post("/warehouse", middleware.RequireRole(model.RoleAdmin, model.RoleManage), warehouseHandler.CreateWarehouse)
	protected.Put("/warehouse/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManage), warehouseHandler.UpdateWarehouse)

	// Inbound Request Routes
	inbound := protected.Group("/inbound")
	inbound.Get("/", inboundHandler.GetInboundRequests)
	inbound.Get("/mine", inboundHandler.GetMyInboundRequests)
	inbound.Get("/:id", inboundHandler.GetInboundRequest)
	inbound.Post("/", middleware.RequireRole(model.RoleAdmin, model.RolePurchase, model.RoleStaff), inboundHandler.CreateInboundRequest)
	inbound.Put("/:id", middleware.RequireRole(model.RoleAdmin, model.RolePurchase, model.RoleStaff), inboundHandler.UpdateInboundRequest)
	inbound.Delete("/:id", middleware.RequireRole(model.RoleAdmin, model.RolePurchase, model.RoleStaff), inboundHandler.DeleteInboundRequest)
	inbound.Post("/:id/approval", middleware.RequireRole(model.RoleAdmin, model.RoleManage), inboundHandler.DecideInboundRequest)

	// Outbound Request Routes
	outbound := protected.Group("/outbound")
	outbound.Get("/", outboundHandler.GetOutboundRequests)
	outbound.Get("/mine", outboundHandler.GetMyOutboundRequests)
	outbound.Get("/:id", outboundHandler.GetOutboundRequest)
	outbound.Post("/", middleware.RequireRole(model.RoleAdmin, model.RoleSale, model.RoleStaff), outboundHandler.CreateOutboundRequest)
	outbound.Put("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleSale, model.RoleStaff), outboundHandler.UpdateOutboundRequest)
	outbound.Delete("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleSale, model.RoleStaff), outboundHandler.DeleteOutboundRequest)
	outbound.Post("/:id/approval", middleware.RequireRole(model.RoleAdmin, model.RoleManage), outboundHandler.DecideOutboundRequest)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 9. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedRolesWarehousesAndAdmin creates default roles, warehouses, and the admin
// user if they don't exist
func seedRolesWarehousesAndAdmin(db *gorm.DB) {
	roleRepo := repository.NewRoleRepo(db)
	warehouseRepo := repository.NewWarehouseRepo(db)
	userRepo := repository.NewUserRepo(db)

	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}
	if err := warehouseRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed warehouses: %v", err)
	}

	if _, err := userRepo.FindByUsername("admin"); err == nil {
		return
	}

	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err != nil {
		log.Printf("Warning: ADMIN role missing, skipping admin user seed: %v", err)
		return
	}

	admin := &model.User{
		Username: "admin",
		Email:    "admin@example.com",
		Status:   model.UserActive,
		Roles:    []model.Role{*adminRole},
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword("admin123"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("✅ Admin user created: admin / admin123 (ADMIN)")
	}
}
