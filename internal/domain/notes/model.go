package notes

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Note tenant and owner ids are always stamped from the authenticated
// principal, never taken from client input.
type Note struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"not null" json:"content"`

	TenantID string `gorm:"type:uuid;not null;index" json:"tenantId"`
	UserID   string `gorm:"type:uuid;not null;index" json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
