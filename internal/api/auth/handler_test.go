package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notes-app/database"
	coreauth "notes-app/internal/auth"
	"notes-app/internal/domain/tenants"
	"notes-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/login", NewHandler(db, testSecret).Login)
	return r
}

func seedAccount(t *testing.T, db *gorm.DB, email, password string) users.User {
	t.Helper()
	tenant := tenants.Tenant{Name: "Acme Corporation", Slug: "acme", SubscriptionPlan: tenants.PlanFree}
	if err := db.Create(&tenant).Error; err != nil {
		t.Fatalf("create tenant: %v", err)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := users.User{Email: email, Password: string(hashed), Role: users.RoleAdmin, TenantID: tenant.ID}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func login(r *gin.Engine, payload map[string]string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestLoginSuccess(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	user := seedAccount(t, db, "admin@acme.test", "password")

	resp := login(r, map[string]string{"email": "admin@acme.test", "password": "password"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		Token string    `json:"token"`
		User  loginUser `json:"user"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Token == "" {
		t.Fatal("expected a token")
	}

	userID, err := coreauth.VerifyToken(out.Token, testSecret)
	if err != nil {
		t.Fatalf("returned token does not verify: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("token bound to %q, expected %q", userID, user.ID)
	}

	if out.User.Email != "admin@acme.test" || out.User.Role != users.RoleAdmin {
		t.Fatalf("unexpected user envelope: %+v", out.User)
	}
	if out.User.TenantSlug != "acme" || out.User.TenantName != "Acme Corporation" || out.User.TenantPlan != tenants.PlanFree {
		t.Fatalf("unexpected tenant envelope: %+v", out.User)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	seedAccount(t, db, "admin@acme.test", "password")

	resp := login(r, map[string]string{"email": "admin@acme.test", "password": "wrong"})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Invalid email or password") {
		t.Fatalf("expected uniform failure message, got %s", resp.Body.String())
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	seedAccount(t, db, "admin@acme.test", "password")

	resp := login(r, map[string]string{"email": "nobody@acme.test", "password": "password"})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	// Same message as a wrong password: no account enumeration.
	if !strings.Contains(resp.Body.String(), "Invalid email or password") {
		t.Fatalf("expected uniform failure message, got %s", resp.Body.String())
	}
}

func TestLoginMissingFields(t *testing.T) {
	r := newTestRouter(newTestDB(t))

	for _, payload := range []map[string]string{
		{},
		{"email": "admin@acme.test"},
		{"password": "password"},
	} {
		if resp := login(r, payload); resp.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", payload, resp.Code)
		}
	}
}
