package notes

import (
	"notes-app/internal/domain/notes"

	"gorm.io/gorm"
)

func tenantNotesQuery(db *gorm.DB, tenantID string) *gorm.DB {
	return db.Model(&notes.Note{}).Where("tenant_id = ?", tenantID)
}
