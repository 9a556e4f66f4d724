package tenants

import (
	"context"
	"errors"
	"net/http"
	"time"

	"notes-app/internal/app/http/middleware"
	"notes-app/internal/domain/tenants"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const storeTimeout = 5 * time.Second

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// Upgrade sets the tenant's plan to PRO. Admin-only (enforced by the route
// group); an admin may only upgrade their own tenant. Upgrading an
// already-PRO tenant is a no-op success.
func (h *Handler) Upgrade(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant slug"})
		return
	}
	if principal.TenantSlug != slug {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	var tenant tenants.Tenant
	err := h.db.WithContext(ctx).Where("slug = ?", slug).First(&tenant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade subscription"})
		return
	}

	if err := h.db.WithContext(ctx).Model(&tenant).Update("subscription_plan", tenants.PlanPro).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscription upgraded successfully",
		"tenant": gin.H{
			"id":               tenant.ID,
			"name":             tenant.Name,
			"slug":             tenant.Slug,
			"subscriptionPlan": tenant.SubscriptionPlan,
		},
	})
}
