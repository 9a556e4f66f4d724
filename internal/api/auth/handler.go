package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	coreauth "notes-app/internal/auth"
	"notes-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const storeTimeout = 5 * time.Second

type Handler struct {
	db        *gorm.DB
	jwtSecret string
}

func NewHandler(db *gorm.DB, jwtSecret string) *Handler {
	return &Handler{db: db, jwtSecret: jwtSecret}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginUser struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	TenantID   string `json:"tenantId"`
	TenantSlug string `json:"tenantSlug"`
	TenantName string `json:"tenantName"`
	TenantPlan string `json:"tenantPlan"`
}

// Login authenticates by email and password and returns a bearer token plus
// the user's tenant envelope. Unknown email and wrong password produce the
// same response so accounts cannot be enumerated.
func (h *Handler) Login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	var user users.User
	err := h.db.WithContext(ctx).Preload("Tenant").Where("email = ?", input.Email).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if err != nil || user.Tenant == nil ||
		bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := coreauth.IssueToken(user.ID, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": loginUser{
			ID:         user.ID,
			Email:      user.Email,
			Role:       user.Role,
			TenantID:   user.TenantID,
			TenantSlug: user.Tenant.Slug,
			TenantName: user.Tenant.Name,
			TenantPlan: user.Tenant.SubscriptionPlan,
		},
	})
}
