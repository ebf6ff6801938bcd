package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/emerald-motors/vehicle-trade-api/config"
	"github.com/emerald-motors/vehicle-trade-api/models"
	"github.com/emerald-motors/vehicle-trade-api/services"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "middleware-test-secret",
		TokenTTLHours: 24,
	}
}

func protectedRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireAuth(cfg), func(c *gin.Context) {
		userID, err := GetUserID(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "userId": userID})
	})
	return router
}

func TestRequireAuthWithValidToken(t *testing.T) {
	cfg := authTestConfig()
	router := protectedRouter(cfg)

	user := &models.User{ID: 7, Email: "demo@ad.com", Role: "staff"}
	token, err := services.IssueToken(cfg, user)
	assert.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, float64(7), response["userId"])
}

func TestRequireAuthMissingHeader(t *testing.T) {
	cfg := authTestConfig()
	router := protectedRouter(cfg)

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	errorData := response["error"].(map[string]interface{})
	assert.Equal(t, "MISSING_TOKEN", errorData["code"])
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	cfg := authTestConfig()
	router := protectedRouter(cfg)

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	cfg := authTestConfig()
	router := protectedRouter(cfg)

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	errorData := response["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_TOKEN", errorData["code"])
}

func TestGetUserIDWithoutContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetUserID(c)
	assert.Error(t, err)

	authErr, ok := err.(*AuthError)
	assert.True(t, ok, "error should be an AuthError")
	assert.Equal(t, "MISSING_USER_ID", authErr.Code)
}

func TestGetClaimsWithoutContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetClaims(c)
	assert.Error(t, err)
}

func TestRequireRole(t *testing.T) {
	cfg := authTestConfig()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", RequireAuth(cfg), RequireRole("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	tests := []struct {
		name           string
		role           string
		expectedStatus int
	}{
		{"admin allowed", "admin", http.StatusOK},
		{"staff forbidden", "staff", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &models.User{ID: 1, Email: "demo@ad.com", Role: tt.role}
			token, err := services.IssueToken(cfg, user)
			assert.NoError(t, err)

			req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
