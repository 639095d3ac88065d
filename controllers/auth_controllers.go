package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"car-service-backend/models"
	"car-service-backend/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login -> access + refresh token pair
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	err := ac.DB.Where("username = ? AND is_active = ?", input.Username, true).
		First(&user).Error
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	access, refresh, err := utils.GenerateTokenPair(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for user %s (role=%s)", user.Username, user.Role)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"access_token":  access,
		"refresh_token": refresh,
		"token_type":    "bearer",
		"user":          user,
	})
}

// Refresh exchanges a valid refresh token for a new token pair.
func (ac *AuthController) Refresh(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if utils.IsTokenBlacklisted(input.RefreshToken) {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid refresh token"))
		return
	}

	claims, err := utils.ParseToken(input.RefreshToken)
	if err != nil || claims.TokenType != utils.TokenTypeRefresh {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid refresh token"))
		return
	}

	access, refresh, err := utils.GenerateTokenPair(claims.UserID, claims.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Token refreshed", gin.H{
		"access_token":  access,
		"refresh_token": refresh,
		"token_type":    "bearer",
	})
}

// Logout blacklists the presented access token and, when supplied, the
// refresh token. Always succeeds.
func (ac *AuthController) Logout(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	_ = c.ShouldBindJSON(&input)

	if token := c.GetString("token"); token != "" {
		blacklistUntilExpiry(token)
	}
	if input.RefreshToken != "" {
		blacklistUntilExpiry(input.RefreshToken)
	}

	utils.RespondJSON(c, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the authenticated user.
func (ac *AuthController) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var user models.User
	if err := ac.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Current user", user)
}

func blacklistUntilExpiry(token string) {
	claims, err := utils.ParseToken(token)
	if err != nil {
		return
	}
	utils.BlacklistToken(token, time.Until(claims.ExpiresAt.Time))
}
