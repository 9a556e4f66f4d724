package tenants

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscription plans. Upgrade is one-directional: FREE -> PRO.
const (
	PlanFree = "FREE"
	PlanPro  = "PRO"
)

// FreeNoteLimit is the maximum number of notes a FREE tenant may hold.
const FreeNoteLimit = 3

type Tenant struct {
	ID               string `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string `gorm:"not null" json:"name"`
	Slug             string `gorm:"not null;uniqueIndex:idx_tenants_slug" json:"slug"`
	SubscriptionPlan string `gorm:"not null;default:'FREE'" json:"subscriptionPlan"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
