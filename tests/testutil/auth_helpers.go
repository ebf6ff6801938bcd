package testutil

import (
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/emerald-motors/vehicle-trade-api/config"
	"github.com/emerald-motors/vehicle-trade-api/models"
	"github.com/emerald-motors/vehicle-trade-api/services"
)

// TestConfig returns a configuration suitable for signing and checking
// session tokens in tests, and installs it as the active config
func TestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		GoEnv:         "test",
		JWTSecret:     "integration-test-secret",
		TokenTTLHours: 1,
	}

	original := config.GetConfig()
	t.Cleanup(func() {
		config.SetConfig(original)
	})
	config.SetConfig(cfg)
	return cfg
}

// CreateUser stores a user with a bcrypt-hashed password
func CreateUser(t *testing.T, email, password, role string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
	}
	if err := config.GetDB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return &user
}

// IssueTokenFor signs a real session token for a user
func IssueTokenFor(t *testing.T, cfg *config.Config, user *models.User) string {
	t.Helper()

	token, err := services.IssueToken(cfg, user)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return token
}

// SetMockAuthContext primes a Gin context the way RequireAuth would after a
// successful token check
func SetMockAuthContext(c *gin.Context, userID uint, email, role string) {
	c.Set("user_id", userID)
	c.Set("session_claims", &services.SessionClaims{Email: email, Role: role})
}
