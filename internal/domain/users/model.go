package users

import (
	"time"

	"notes-app/internal/domain/tenants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
)

// User is provisioned by seed; TenantID is immutable after creation
// (no update path touches it).
type User struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:'MEMBER'" json:"role"`

	TenantID string          `gorm:"type:uuid;not null;index" json:"tenantId"`
	Tenant   *tenants.Tenant `gorm:"foreignKey:TenantID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
