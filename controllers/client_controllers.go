package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"car-service-backend/models"
	"car-service-backend/utils"
)

type ClientController struct {
	DB *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

func (cc *ClientController) GetAllClients(c *gin.Context) {
	var clients []models.Client
	if err := cc.DB.Order("created_at DESC").Find(&clients).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All clients", clients)
}

func (cc *ClientController) GetClientByID(c *gin.Context) {
	var client models.Client
	if err := cc.DB.First(&client, parseIDParam(c, "client_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("client not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Client detail", client)
}

func (cc *ClientController) CreateClient(c *gin.Context) {
	var req struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Phone     string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	client := models.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	if err := cc.DB.Create(&client).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Client created", client)
}

func (cc *ClientController) UpdateClient(c *gin.Context) {
	var client models.Client
	if err := cc.DB.First(&client, parseIDParam(c, "client_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("client not found"))
		return
	}

	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Phone     string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.FirstName != "" {
		client.FirstName = req.FirstName
	}
	if req.LastName != "" {
		client.LastName = req.LastName
	}
	if req.Phone != "" {
		client.Phone = req.Phone
	}

	if err := cc.DB.Save(&client).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Client updated", client)
}

func (cc *ClientController) DeleteClient(c *gin.Context) {
	id := parseIDParam(c, "client_id")
	if err := cc.DB.Delete(&models.Client{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Client deleted", gin.H{"client_id": id})
}
