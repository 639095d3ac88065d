package controllers

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"car-service-backend/config"
	"car-service-backend/models"
	"car-service-backend/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	utils.InitAuth(config.AuthConfig{
		Secret:     "test-secret",
		Issuer:     "car-service-backend-test",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	})
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Car{},
		&models.WorkOrder{},
		&models.TechReport{},
		&models.StockItem{},
		&models.Service{},
		&models.Billing{},
	)
	require.NoError(t, err)
	return db
}

func seedClientAndCar(t *testing.T, db *gorm.DB) (*models.Client, *models.Car) {
	client := models.Client{FirstName: "Omar", LastName: "Hassan", Phone: "0100000000"}
	require.NoError(t, db.Create(&client).Error)

	car := models.Car{ClientID: client.ID, Plate: "XYZ-789", Brand: "Honda", Model: "Civic", Counter: 42000}
	require.NoError(t, db.Create(&car).Error)
	return &client, &car
}
