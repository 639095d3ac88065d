package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"car-service-backend/config"
	"car-service-backend/controllers"
	"car-service-backend/middlewares"
	"car-service-backend/models"
)

func SetupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	authCtrl := controllers.NewAuthController(db)
	userCtrl := controllers.NewUserController(db)
	clientCtrl := controllers.NewClientController(db)
	carCtrl := controllers.NewCarController(db)
	workOrderCtrl := controllers.NewWorkOrderController(db)
	techReportCtrl := controllers.NewTechReportController(db)
	stockCtrl := controllers.NewStockController(db)
	serviceCtrl := controllers.NewServiceController(db)
	billingCtrl := controllers.NewBillingController(db, cfg.Billing)
	reportCtrl := controllers.NewReportController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := api.Group("/auth")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/login", authCtrl.Login)
		public.POST("/refresh", authCtrl.Refresh)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := api.Group("/")
	auth.Use(middlewares.AuthMiddleware())

	auth.POST("/auth/logout", authCtrl.Logout)
	auth.GET("/auth/me", authCtrl.Me)

	// USERS (admin only)
	admins := auth.Group("/users")
	admins.Use(middlewares.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin))
	{
		admins.GET("", userCtrl.GetAllUsers)
		admins.POST("", userCtrl.CreateUser)
		admins.GET("/:user_id", userCtrl.GetUserByID)
		admins.PATCH("/:user_id", userCtrl.UpdateUser)
		admins.DELETE("/:user_id", userCtrl.DeleteUser)
	}

	// CLIENTS
	auth.GET("/clients", clientCtrl.GetAllClients)
	auth.POST("/clients", clientCtrl.CreateClient)
	auth.GET("/clients/:client_id", clientCtrl.GetClientByID)
	auth.PATCH("/clients/:client_id", clientCtrl.UpdateClient)
	auth.DELETE("/clients/:client_id", clientCtrl.DeleteClient)

	// CARS
	auth.GET("/cars", carCtrl.GetAllCars)
	auth.POST("/cars", carCtrl.CreateCar)
	auth.GET("/cars/:car_id", carCtrl.GetCarByID)
	auth.PATCH("/cars/:car_id", carCtrl.UpdateCar)
	auth.DELETE("/cars/:car_id", carCtrl.DeleteCar)

	// WORK ORDERS
	auth.GET("/work-orders", workOrderCtrl.GetAllWorkOrders)
	auth.POST("/work-orders", workOrderCtrl.CreateWorkOrder)
	auth.GET("/work-orders/:order_id", workOrderCtrl.GetWorkOrderByID)
	auth.PATCH("/work-orders/:order_id", workOrderCtrl.UpdateWorkOrder)
	auth.DELETE("/work-orders/:order_id", workOrderCtrl.DeleteWorkOrder)
	auth.POST("/work-orders/:order_id/assign", middlewares.RequireRoles(
		models.RoleSuperAdmin, models.RoleAdmin, models.RoleReceptionist,
	), workOrderCtrl.Assign)
	auth.POST("/work-orders/:order_id/start", middlewares.RequireRoles(
		models.RoleSuperAdmin, models.RoleAdmin, models.RoleTechnician,
	), workOrderCtrl.StartWork)

	// TECH REPORTS
	auth.GET("/tech-reports", techReportCtrl.GetAllTechReports)
	auth.POST("/tech-reports", middlewares.RequireRoles(
		models.RoleSuperAdmin, models.RoleAdmin, models.RoleTechnician,
	), techReportCtrl.CreateTechReport)
	auth.GET("/tech-reports/:report_id", techReportCtrl.GetTechReportByID)
	auth.PATCH("/tech-reports/:report_id", techReportCtrl.UpdateTechReport)
	auth.DELETE("/tech-reports/:report_id", techReportCtrl.DeleteTechReport)

	// STOCK
	auth.GET("/stock", stockCtrl.GetAllStockItems)
	auth.GET("/stock/oils", stockCtrl.GetOilItems)
	auth.POST("/stock", stockCtrl.CreateStockItem)
	auth.GET("/stock/:item_id", stockCtrl.GetStockItemByID)
	auth.PATCH("/stock/:item_id", stockCtrl.UpdateStockItem)
	auth.PATCH("/stock/:item_id/quantity", stockCtrl.UpdateQuantity)
	auth.DELETE("/stock/:item_id", stockCtrl.DeleteStockItem)

	// SERVICES
	auth.GET("/services", serviceCtrl.GetAllServices)
	auth.GET("/services/active", serviceCtrl.GetActiveServices)
	auth.POST("/services", serviceCtrl.CreateService)
	auth.GET("/services/:service_id", serviceCtrl.GetServiceByID)
	auth.PATCH("/services/:service_id", serviceCtrl.UpdateService)
	auth.DELETE("/services/:service_id", serviceCtrl.DeleteService)

	// BILLING
	auth.GET("/billing", billingCtrl.GetAllBillings)
	auth.POST("/billing/generate", billingCtrl.Generate)
	auth.GET("/billing/:billing_id", billingCtrl.GetBillingByID)
	auth.PATCH("/billing/:billing_id", billingCtrl.UpdateBilling)
	auth.DELETE("/billing/:billing_id", billingCtrl.DeleteBilling)

	// REPORTS
	auth.GET("/reports/kpis", reportCtrl.GetKPIs)
	auth.GET("/reports/daily-work-orders", reportCtrl.GetDailyWorkOrders)
	auth.GET("/reports/monthly-profit", reportCtrl.GetMonthlyProfit)
	auth.GET("/reports/popular-oils", reportCtrl.GetPopularOils)

	return r
}
