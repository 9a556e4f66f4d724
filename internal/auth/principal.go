package auth

import (
	"context"
	"errors"

	"notes-app/internal/domain/users"

	"gorm.io/gorm"
)

// Principal is the authenticated identity for one request. It is rebuilt
// from the store on every request and never cached.
type Principal struct {
	ID         string
	Email      string
	Role       string
	TenantID   string
	TenantSlug string
}

// ErrPrincipalNotFound means the user behind a valid credential no longer
// exists. Callers treat it as unauthorized, not as a server error.
var ErrPrincipalNotFound = errors.New("principal not found")

// ResolvePrincipal maps a verified user id to a full Principal with a single
// User->Tenant joined read. Store failures propagate unwrapped so callers can
// distinguish them from a missing user.
func ResolvePrincipal(ctx context.Context, db *gorm.DB, userID string) (*Principal, error) {
	var row struct {
		ID         string
		Email      string
		Role       string
		TenantID   string
		TenantSlug string
	}

	err := db.WithContext(ctx).
		Model(&users.User{}).
		Select("users.id, users.email, users.role, users.tenant_id, tenants.slug AS tenant_slug").
		Joins("JOIN tenants ON tenants.id = users.tenant_id").
		Where("users.id = ?", userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPrincipalNotFound
	}
	if err != nil {
		return nil, err
	}

	return &Principal{
		ID:         row.ID,
		Email:      row.Email,
		Role:       row.Role,
		TenantID:   row.TenantID,
		TenantSlug: row.TenantSlug,
	}, nil
}
