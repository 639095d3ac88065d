package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"car-service-backend/middlewares"
	"car-service-backend/models"
	"car-service-backend/utils"
)

func setupAuthRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	authCtrl := NewAuthController(db)
	r.POST("/auth/login", authCtrl.Login)
	r.POST("/auth/refresh", authCtrl.Refresh)

	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware())
	authed.POST("/auth/logout", authCtrl.Logout)
	authed.GET("/auth/me", authCtrl.Me)
	return r
}

func seedUser(t *testing.T, db *gorm.DB, username, password, role string) *models.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{
		Username:  username,
		Password:  string(hashed),
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
		IsActive:  true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}, token string) (*httptest.ResponseRecorder, utils.JSONResponse) {
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest("POST", path, bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func loginAs(t *testing.T, r *gin.Engine, username, password string) (string, string) {
	w, resp := postJSON(t, r, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	data := resp.Data.(map[string]interface{})
	return data["access_token"].(string), data["refresh_token"].(string)
}

func TestLoginAndMe(t *testing.T) {
	db := setupTestDB(t)
	r := setupAuthRouter(db)
	seedUser(t, db, "reception", "password123", models.RoleReceptionist)

	access, refresh := loginAs(t, r, "reception", "password123")
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	req, _ := http.NewRequest("GET", "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp utils.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	me := resp.Data.(map[string]interface{})
	assert.Equal(t, "reception", me["username"])
	assert.Equal(t, models.RoleReceptionist, me["role"])
	assert.NotContains(t, me, "password")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	r := setupAuthRouter(db)
	seedUser(t, db, "reception", "password123", models.RoleReceptionist)

	w, _ := postJSON(t, r, "/auth/login", map[string]string{
		"username": "reception",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = postJSON(t, r, "/auth/login", map[string]string{
		"username": "nobody",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	db := setupTestDB(t)
	r := setupAuthRouter(db)
	user := seedUser(t, db, "former", "password123", models.RoleTechnician)
	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	w, _ := postJSON(t, r, "/auth/login", map[string]string{
		"username": "former",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	db := setupTestDB(t)
	r := setupAuthRouter(db)
	seedUser(t, db, "reception", "password123", models.RoleReceptionist)

	access, _ := loginAs(t, r, "reception", "password123")

	w, _ := postJSON(t, r, "/auth/logout", map[string]string{}, access)
	assert.Equal(t, http.StatusOK, w.Code)

	// The revoked token no longer authenticates.
	req, _ := http.NewRequest("GET", "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
}

func TestRefreshIssuesNewPair(t *testing.T) {
	db := setupTestDB(t)
	r := setupAuthRouter(db)
	seedUser(t, db, "reception", "password123", models.RoleReceptionist)

	_, refresh := loginAs(t, r, "reception", "password123")

	w, resp := postJSON(t, r, "/auth/refresh", map[string]string{
		"refresh_token": refresh,
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	data := resp.Data.(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	assert.NotEmpty(t, data["refresh_token"])
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	db := setupTestDB(t)
	r := setupAuthRouter(db)
	seedUser(t, db, "reception", "password123", models.RoleReceptionist)

	access, _ := loginAs(t, r, "reception", "password123")

	w, _ := postJSON(t, r, "/auth/refresh", map[string]string{
		"refresh_token": access,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
