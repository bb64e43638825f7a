package routes

import (
	"business-suite-backend/internal/api/handlers"
	"business-suite-backend/internal/api/middleware"
	"business-suite-backend/internal/auth"
	"business-suite-backend/internal/config"
	"business-suite-backend/internal/database/models"
	"business-suite-backend/internal/repository"
	"business-suite-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	metrics := middleware.NewHTTPMetrics()
	router.Use(metrics.Middleware())

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	productRepo := repository.NewProductRepository(db)
	voucherRepo := repository.NewVoucherRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	calendarRepo := repository.NewCalendarEventRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	rbacService := service.NewRBACService()
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	userService := service.NewUserService(userRepo, roleRepo, validator)
	roleService := service.NewRoleService(roleRepo, validator)
	customerService := service.NewCustomerService(customerRepo, validator)
	vendorService := service.NewVendorService(vendorRepo, validator)
	productService := service.NewProductService(productRepo, validator)
	voucherService := service.NewVoucherService(voucherRepo, validator)
	taskService := service.NewTaskService(taskRepo, validator)
	calendarService := service.NewCalendarService(calendarRepo, validator)
	ticketService := service.NewTicketService(ticketRepo, validator)
	analyticsService := service.NewAnalyticsService(analyticsRepo)

	// Initialize auth services and enforcement
	authService := auth.NewAuthService(cfg, userRepo)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)
	enforcer := auth.NewEnforcer(userRepo, rbacService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	userHandler := handlers.NewUserHandler(userService)
	roleHandler := handlers.NewRoleHandler(roleService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	vendorHandler := handlers.NewVendorHandler(vendorService)
	productHandler := handlers.NewProductHandler(productService)
	voucherHandler := handlers.NewVoucherHandler(voucherService)
	taskHandler := handlers.NewTaskHandler(taskService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics endpoint
	router.GET("/metrics", metrics.Handler())

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// API v1 routes - all endpoints require authentication; each route also
	// declares the permission it needs
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Organization routes; create and delete are super-admin only
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", enforcer.RequireAccess(models.ModuleOrganization, models.ActionRead), organizationHandler.ListOrganizations)
			organizations.POST("", enforcer.RequireAccess(models.ModuleOrganization, models.ActionCreate), enforcer.RequireSuperAdmin(), organizationHandler.CreateOrganization)
			organizations.GET("/:id", enforcer.RequireAccess(models.ModuleOrganization, models.ActionRead), organizationHandler.GetOrganization)
			organizations.PUT("/:id", enforcer.RequireAccess(models.ModuleOrganization, models.ActionUpdate), organizationHandler.UpdateOrganization)
			organizations.DELETE("/:id", enforcer.RequireAccess(models.ModuleOrganization, models.ActionDelete), enforcer.RequireSuperAdmin(), organizationHandler.DeleteOrganization)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", enforcer.RequireAccess(models.ModuleUser, models.ActionRead), userHandler.ListUsers)
			users.POST("", enforcer.RequireAccess(models.ModuleUser, models.ActionCreate), userHandler.CreateUser)
			users.GET("/:id", enforcer.RequireAccess(models.ModuleUser, models.ActionRead), userHandler.GetUser)
			users.PUT("/:id", enforcer.RequireAccess(models.ModuleUser, models.ActionUpdate), userHandler.UpdateUser)
			users.DELETE("/:id", enforcer.RequireAccess(models.ModuleUser, models.ActionDelete), userHandler.DeleteUser)
			users.POST("/:id/roles/:roleId", enforcer.RequireAccess(models.ModuleRole, models.ActionAssign), userHandler.AssignRole)
			users.DELETE("/:id/roles/:roleId", enforcer.RequireAccess(models.ModuleRole, models.ActionAssign), userHandler.UnassignRole)
		}

		// Role routes
		roles := v1.Group("/roles")
		{
			roles.GET("", enforcer.RequireAccess(models.ModuleRole, models.ActionRead), roleHandler.ListRoles)
			roles.POST("", enforcer.RequireAccess(models.ModuleRole, models.ActionCreate), roleHandler.CreateRole)
			roles.GET("/permissions", enforcer.RequireAccess(models.ModuleRole, models.ActionRead), roleHandler.GetPermissionCatalog)
			roles.GET("/:id", enforcer.RequireAccess(models.ModuleRole, models.ActionRead), roleHandler.GetRole)
			roles.PUT("/:id", enforcer.RequireAccess(models.ModuleRole, models.ActionUpdate), roleHandler.UpdateRole)
			roles.DELETE("/:id", enforcer.RequireAccess(models.ModuleRole, models.ActionDelete), roleHandler.DeleteRole)
		}

		// Customer routes
		customers := v1.Group("/customers")
		{
			customers.GET("", enforcer.RequireAccess(models.ModuleCustomer, models.ActionRead), customerHandler.ListCustomers)
			customers.POST("", enforcer.RequireAccess(models.ModuleCustomer, models.ActionCreate), customerHandler.CreateCustomer)
			customers.GET("/:id", enforcer.RequireAccess(models.ModuleCustomer, models.ActionRead), customerHandler.GetCustomer)
			customers.PUT("/:id", enforcer.RequireAccess(models.ModuleCustomer, models.ActionUpdate), customerHandler.UpdateCustomer)
			customers.DELETE("/:id", enforcer.RequireAccess(models.ModuleCustomer, models.ActionDelete), customerHandler.DeleteCustomer)
		}

		// Vendor routes
		vendors := v1.Group("/vendors")
		{
			vendors.GET("", enforcer.RequireAccess(models.ModuleVendor, models.ActionRead), vendorHandler.ListVendors)
			vendors.POST("", enforcer.RequireAccess(models.ModuleVendor, models.ActionCreate), vendorHandler.CreateVendor)
			vendors.GET("/:id", enforcer.RequireAccess(models.ModuleVendor, models.ActionRead), vendorHandler.GetVendor)
			vendors.PUT("/:id", enforcer.RequireAccess(models.ModuleVendor, models.ActionUpdate), vendorHandler.UpdateVendor)
			vendors.DELETE("/:id", enforcer.RequireAccess(models.ModuleVendor, models.ActionDelete), vendorHandler.DeleteVendor)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", enforcer.RequireAccess(models.ModuleProduct, models.ActionRead), productHandler.ListProducts)
			products.POST("", enforcer.RequireAccess(models.ModuleProduct, models.ActionCreate), productHandler.CreateProduct)
			products.GET("/:id", enforcer.RequireAccess(models.ModuleProduct, models.ActionRead), productHandler.GetProduct)
			products.PUT("/:id", enforcer.RequireAccess(models.ModuleProduct, models.ActionUpdate), productHandler.UpdateProduct)
			products.POST("/:id/stock", enforcer.RequireAccess(models.ModuleProduct, models.ActionUpdate), productHandler.AdjustStock)
			products.DELETE("/:id", enforcer.RequireAccess(models.ModuleProduct, models.ActionDelete), productHandler.DeleteProduct)
		}

		// Voucher routes
		vouchers := v1.Group("/vouchers")
		{
			vouchers.GET("", enforcer.RequireAccess(models.ModuleVoucher, models.ActionRead), voucherHandler.ListVouchers)
			vouchers.POST("", enforcer.RequireAccess(models.ModuleVoucher, models.ActionCreate), voucherHandler.CreateVoucher)
			vouchers.GET("/:id", enforcer.RequireAccess(models.ModuleVoucher, models.ActionRead), voucherHandler.GetVoucher)
			vouchers.PUT("/:id", enforcer.RequireAccess(models.ModuleVoucher, models.ActionUpdate), voucherHandler.UpdateVoucher)
			vouchers.POST("/:id/submit", enforcer.RequireAccess(models.ModuleVoucher, models.ActionUpdate), voucherHandler.SubmitVoucher)
			vouchers.POST("/:id/approve", enforcer.RequireAccess(models.ModuleVoucher, models.ActionApprove), voucherHandler.ApproveVoucher)
			vouchers.POST("/:id/cancel", enforcer.RequireAccess(models.ModuleVoucher, models.ActionUpdate), voucherHandler.CancelVoucher)
			vouchers.DELETE("/:id", enforcer.RequireAccess(models.ModuleVoucher, models.ActionDelete), voucherHandler.DeleteVoucher)
		}

		// Task routes
		tasks := v1.Group("/tasks")
		{
			tasks.GET("", enforcer.RequireAccess(models.ModuleTask, models.ActionRead), taskHandler.ListTasks)
			tasks.POST("", enforcer.RequireAccess(models.ModuleTask, models.ActionCreate), taskHandler.CreateTask)
			tasks.GET("/:id", enforcer.RequireAccess(models.ModuleTask, models.ActionRead), taskHandler.GetTask)
			tasks.PUT("/:id", enforcer.RequireAccess(models.ModuleTask, models.ActionUpdate), taskHandler.UpdateTask)
			tasks.DELETE("/:id", enforcer.RequireAccess(models.ModuleTask, models.ActionDelete), taskHandler.DeleteTask)
		}

		// Calendar routes
		calendar := v1.Group("/calendar/events")
		{
			calendar.GET("", enforcer.RequireAccess(models.ModuleCalendar, models.ActionRead), calendarHandler.ListEvents)
			calendar.POST("", enforcer.RequireAccess(models.ModuleCalendar, models.ActionCreate), calendarHandler.CreateEvent)
			calendar.GET("/:id", enforcer.RequireAccess(models.ModuleCalendar, models.ActionRead), calendarHandler.GetEvent)
			calendar.PUT("/:id", enforcer.RequireAccess(models.ModuleCalendar, models.ActionUpdate), calendarHandler.UpdateEvent)
			calendar.DELETE("/:id", enforcer.RequireAccess(models.ModuleCalendar, models.ActionDelete), calendarHandler.DeleteEvent)
		}

		// Ticket routes
		tickets := v1.Group("/tickets")
		{
			tickets.GET("", enforcer.RequireAccess(models.ModuleTicket, models.ActionRead), ticketHandler.ListTickets)
			tickets.POST("", enforcer.RequireAccess(models.ModuleTicket, models.ActionCreate), ticketHandler.CreateTicket)
			tickets.GET("/:id", enforcer.RequireAccess(models.ModuleTicket, models.ActionRead), ticketHandler.GetTicket)
			tickets.PUT("/:id", enforcer.RequireAccess(models.ModuleTicket, models.ActionUpdate), ticketHandler.UpdateTicket)
			tickets.POST("/:id/assign", enforcer.RequireAccess(models.ModuleTicket, models.ActionAssign), ticketHandler.AssignTicket)
			tickets.DELETE("/:id", enforcer.RequireAccess(models.ModuleTicket, models.ActionDelete), ticketHandler.DeleteTicket)
		}

		// Analytics routes
		analytics := v1.Group("/analytics")
		{
			analytics.GET("/dashboard", enforcer.RequireAccess(models.ModuleAnalytics, models.ActionRead), analyticsHandler.GetDashboard)
			analytics.GET("/vouchers/monthly", enforcer.RequireAccess(models.ModuleAnalytics, models.ActionRead), analyticsHandler.GetMonthlyTotals)
		}
	}

	return router
}
