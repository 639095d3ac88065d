package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"car-service-backend/config"
	"car-service-backend/models"
	"car-service-backend/router"
	"car-service-backend/utils"
)

func main() {
	utils.InitLogger()

	cfg := config.LoadConfig()
	utils.InitAuth(cfg.Auth)

	db, err := config.InitDB(cfg.DB)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)
	seedSuperAdmin(db)

	// Revocation survives restarts only with Redis; without it the in-memory
	// blacklist is used.
	if cfg.Redis.Addr != "" {
		rdb, err := config.NewRedisClient(cfg.Redis)
		if err != nil {
			utils.ErrorLogger.Printf("Redis unavailable, falling back to in-memory token blacklist: %v", err)
		} else {
			utils.InitBlacklist(rdb)
			utils.InfoLogger.Println("Token blacklist backed by Redis")
		}
	}

	r := router.SetupRouter(db, cfg)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Car{},
		&models.WorkOrder{},
		&models.TechReport{},
		&models.StockItem{},
		&models.Service{},
		&models.Billing{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}

// seedSuperAdmin creates the initial login when the users table is empty.
func seedSuperAdmin(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	password := os.Getenv("INITIAL_ADMIN_PASSWORD")
	if password == "" {
		password = "admin12345"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to hash initial admin password: %v", err)
		return
	}

	admin := models.User{
		Username:  "admin",
		Password:  string(hashed),
		FirstName: "Super",
		LastName:  "Admin",
		Role:      models.RoleSuperAdmin,
		IsActive:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to seed super admin: %v", err)
		return
	}
	utils.InfoLogger.Println("Seeded initial SUPER_ADMIN user 'admin'")
}
