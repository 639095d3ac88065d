package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"car-service-backend/models"
	"car-service-backend/utils"
)

type CarController struct {
	DB *gorm.DB
}

func NewCarController(db *gorm.DB) *CarController {
	return &CarController{DB: db}
}

// GetAllCars, optionally filtered by client_id.
func (cc *CarController) GetAllCars(c *gin.Context) {
	query := cc.DB.Preload("Client").Order("created_at DESC")
	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	var cars []models.Car
	if err := query.Find(&cars).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All cars", cars)
}

func (cc *CarController) GetCarByID(c *gin.Context) {
	var car models.Car
	err := cc.DB.Preload("Client").First(&car, parseIDParam(c, "car_id")).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("car not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Car detail", car)
}

func (cc *CarController) CreateCar(c *gin.Context) {
	var req struct {
		ClientID uint   `json:"client_id" binding:"required"`
		Plate    string `json:"plate" binding:"required"`
		Brand    string `json:"brand" binding:"required"`
		Model    string `json:"model" binding:"required"`
		Counter  int    `json:"counter" binding:"gte=0"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var client models.Client
	if err := cc.DB.First(&client, req.ClientID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("client not found"))
		return
	}

	var count int64
	cc.DB.Model(&models.Car{}).
		Where("client_id = ? AND plate = ?", req.ClientID, req.Plate).
		Count(&count)
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("this client already has a car with this plate"))
		return
	}

	car := models.Car{
		ClientID: req.ClientID,
		Plate:    req.Plate,
		Brand:    req.Brand,
		Model:    req.Model,
		Counter:  req.Counter,
		Notes:    req.Notes,
	}
	if err := cc.DB.Create(&car).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	car.Client = client
	utils.RespondJSON(c, http.StatusCreated, "Car created", car)
}

func (cc *CarController) UpdateCar(c *gin.Context) {
	var car models.Car
	if err := cc.DB.First(&car, parseIDParam(c, "car_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("car not found"))
		return
	}

	var req struct {
		Plate   string  `json:"plate"`
		Brand   string  `json:"brand"`
		Model   string  `json:"model"`
		Counter *int    `json:"counter" binding:"omitempty,gte=0"`
		Notes   *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Plate != "" && req.Plate != car.Plate {
		var count int64
		cc.DB.Model(&models.Car{}).
			Where("client_id = ? AND plate = ? AND id <> ?", car.ClientID, req.Plate, car.ID).
			Count(&count)
		if count > 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("this client already has a car with this plate"))
			return
		}
		car.Plate = req.Plate
	}
	if req.Brand != "" {
		car.Brand = req.Brand
	}
	if req.Model != "" {
		car.Model = req.Model
	}
	if req.Counter != nil {
		car.Counter = *req.Counter
	}
	if req.Notes != nil {
		car.Notes = *req.Notes
	}

	if err := cc.DB.Save(&car).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Car updated", car)
}

func (cc *CarController) DeleteCar(c *gin.Context) {
	id := parseIDParam(c, "car_id")
	if err := cc.DB.Delete(&models.Car{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Car deleted", gin.H{"car_id": id})
}
