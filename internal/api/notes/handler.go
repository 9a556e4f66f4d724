package notes

import (
	"context"
	"errors"
	"net/http"
	"time"

	"notes-app/internal/app/http/middleware"
	"notes-app/internal/auth"
	"notes-app/internal/domain/notes"
	"notes-app/internal/domain/tenants"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const storeTimeout = 5 * time.Second

// QuotaExceededCode is the stable machine-readable code clients branch on to
// show an upgrade prompt.
const QuotaExceededCode = "SUBSCRIPTION_LIMIT"

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func mustPrincipal(c *gin.Context) (*auth.Principal, bool) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return principal, true
}

// ------------------------------
// GET /api/notes
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	list := make([]notes.Note, 0)
	err := tenantNotesQuery(h.db.WithContext(ctx), principal.TenantID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": list})
}

// ------------------------------
// POST /api/notes
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	var tenant tenants.Tenant
	if err := h.db.WithContext(ctx).First(&tenant, "id = ?", principal.TenantID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create note"})
		return
	}

	// Best-effort quota check: two concurrent creates at the cap can both
	// pass and overshoot by one; the next create is rejected.
	var count int64
	if err := tenantNotesQuery(h.db.WithContext(ctx), principal.TenantID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create note"})
		return
	}
	if tenant.SubscriptionPlan == tenants.PlanFree && count >= tenants.FreeNoteLimit {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Free plan limit reached",
			"code":  QuotaExceededCode,
		})
		return
	}

	note := notes.Note{
		Title:    req.Title,
		Content:  req.Content,
		TenantID: principal.TenantID,
		UserID:   principal.ID,
	}
	if err := h.db.WithContext(ctx).Create(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create note"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"note": note})
}

// ------------------------------
// GET /api/notes/:id
// ------------------------------
func (h *Handler) Get(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	note, ok := h.fetchTenantNote(ctx, c, c.Param("id"), principal.TenantID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"note": note})
}

// ------------------------------
// PUT /api/notes/:id
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	note, ok := h.fetchTenantNote(ctx, c, c.Param("id"), principal.TenantID)
	if !ok {
		return
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil && *req.Title != "" {
		updates["title"] = *req.Title
	}
	if req.Content != nil && *req.Content != "" {
		updates["content"] = *req.Content
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No updates provided"})
		return
	}

	if err := h.db.WithContext(ctx).Model(note).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"note": note})
}

// ------------------------------
// DELETE /api/notes/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	note, ok := h.fetchTenantNote(ctx, c, c.Param("id"), principal.TenantID)
	if !ok {
		return
	}

	if err := h.db.WithContext(ctx).Delete(note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}

// fetchTenantNote loads a note by id and enforces tenant scoping. Cross-tenant
// access returns 403, not 404: the note's existence is not hidden from other
// tenants. On failure the response has already been written.
func (h *Handler) fetchTenantNote(ctx context.Context, c *gin.Context, id, tenantID string) (*notes.Note, bool) {
	var note notes.Note
	err := h.db.WithContext(ctx).First(&note, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch note"})
		return nil, false
	}

	if note.TenantID != tenantID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return nil, false
	}

	return &note, true
}
