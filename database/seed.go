package database

import (
	"fmt"
	"log"

	"notes-app/internal/domain/notes"
	"notes-app/internal/domain/tenants"
	"notes-app/internal/domain/users"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedPassword is the password shared by all demo accounts.
const SeedPassword = "password"

// Seed wipes existing data and provisions the demo dataset: two tenants
// (acme, globex) on the FREE plan, an admin and a member for each, and a
// welcome note per tenant.
func Seed(db *gorm.DB) error {
	if err := db.Exec("DELETE FROM notes").Error; err != nil {
		return fmt.Errorf("clear notes: %w", err)
	}
	if err := db.Exec("DELETE FROM users").Error; err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	if err := db.Exec("DELETE FROM tenants").Error; err != nil {
		return fmt.Errorf("clear tenants: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	acme := tenants.Tenant{Name: "Acme Corporation", Slug: "acme", SubscriptionPlan: tenants.PlanFree}
	globex := tenants.Tenant{Name: "Globex Corporation", Slug: "globex", SubscriptionPlan: tenants.PlanFree}
	if err := db.Create(&acme).Error; err != nil {
		return fmt.Errorf("create tenant %s: %w", acme.Slug, err)
	}
	if err := db.Create(&globex).Error; err != nil {
		return fmt.Errorf("create tenant %s: %w", globex.Slug, err)
	}

	seedUsers := []users.User{
		{Email: "admin@acme.test", Password: string(hashed), Role: users.RoleAdmin, TenantID: acme.ID},
		{Email: "user@acme.test", Password: string(hashed), Role: users.RoleMember, TenantID: acme.ID},
		{Email: "admin@globex.test", Password: string(hashed), Role: users.RoleAdmin, TenantID: globex.ID},
		{Email: "user@globex.test", Password: string(hashed), Role: users.RoleMember, TenantID: globex.ID},
	}
	for i := range seedUsers {
		if err := db.Create(&seedUsers[i]).Error; err != nil {
			return fmt.Errorf("create user %s: %w", seedUsers[i].Email, err)
		}
	}

	welcome := []notes.Note{
		{
			Title:    "Welcome to Acme Notes",
			Content:  "This is a sample note for Acme Corporation.",
			TenantID: acme.ID,
			UserID:   seedUsers[0].ID,
		},
		{
			Title:    "Welcome to Globex Notes",
			Content:  "This is a sample note for Globex Corporation.",
			TenantID: globex.ID,
			UserID:   seedUsers[2].ID,
		},
	}
	for i := range welcome {
		if err := db.Create(&welcome[i]).Error; err != nil {
			return fmt.Errorf("create note %q: %w", welcome[i].Title, err)
		}
	}

	log.Println("Database seeded successfully")
	return nil
}
