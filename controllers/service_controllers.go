package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"car-service-backend/models"
	"car-service-backend/utils"
)

type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

func (sc *ServiceController) GetAllServices(c *gin.Context) {
	var services []models.Service
	if err := sc.DB.Order("name ASC").Find(&services).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All services", services)
}

// GetActiveServices lists only the services currently offered.
func (sc *ServiceController) GetActiveServices(c *gin.Context) {
	var services []models.Service
	err := sc.DB.Where("is_active = ?", true).Order("name ASC").Find(&services).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active services", services)
}

func (sc *ServiceController) GetServiceByID(c *gin.Context) {
	var service models.Service
	if err := sc.DB.First(&service, parseIDParam(c, "service_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("service not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Service detail", service)
}

func (sc *ServiceController) CreateService(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price" binding:"gte=0"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsActive:    true,
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := sc.DB.Create(&service).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Service created", service)
}

func (sc *ServiceController) UpdateService(c *gin.Context) {
	var service models.Service
	if err := sc.DB.First(&service, parseIDParam(c, "service_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("service not found"))
		return
	}

	var req struct {
		Name        string   `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price" binding:"omitempty,gte=0"`
		IsActive    *bool    `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != "" {
		service.Name = req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := sc.DB.Save(&service).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Service updated", service)
}

func (sc *ServiceController) DeleteService(c *gin.Context) {
	id := parseIDParam(c, "service_id")
	if err := sc.DB.Delete(&models.Service{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Service deleted", gin.H{"service_id": id})
}
