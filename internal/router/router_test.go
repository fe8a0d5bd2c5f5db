package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/db"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouterTest(t *testing.T) (config.AppConfig, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:router-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.User{}, &db.Project{}, &db.Experience{}, &db.Skill{}, &db.Certificate{}, &db.Message{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb

	cfg := config.AppConfig{
		SessionSecret: "test-secret",
		UploadDir:     t.TempDir(),
		UploadURLPath: "/static/uploads",
		SiteBaseURL:   "https://www.devfolio.dev",
	}

	return cfg, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func seedRouterAdmin(t *testing.T, password string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.DB.Create(&db.User{Username: "admin", Password: string(hashed)}).Error; err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
}

func TestAdminAPIRequiresSession(t *testing.T) {
	cfg, cleanup := setupRouterTest(t)
	defer cleanup()

	r := SetupRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/projects", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/admin/login" {
		t.Fatalf("expected redirect to /admin/login, got %s", loc)
	}
}

func TestLoginGrantsAdminAPIAccess(t *testing.T) {
	cfg, cleanup := setupRouterTest(t)
	defer cleanup()

	seedRouterAdmin(t, "secret123")
	r := SetupRouter(cfg)

	form := url.Values{"username": {"admin"}, "password": {"secret123"}}
	loginReq := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	loginReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	loginRec := httptest.NewRecorder()
	r.ServeHTTP(loginRec, loginReq)

	if loginRec.Code != http.StatusFound {
		t.Fatalf("expected status 302 after login, got %d", loginRec.Code)
	}

	cookies := loginRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected session cookie after login")
	}

	apiReq := httptest.NewRequest(http.MethodGet, "/admin/api/projects", nil)
	for _, c := range cookies {
		apiReq.AddCookie(c)
	}

	apiRec := httptest.NewRecorder()
	r.ServeHTTP(apiRec, apiReq)

	if apiRec.Code != http.StatusOK {
		t.Fatalf("expected status 200 with session, got %d", apiRec.Code)
	}
	if !strings.Contains(apiRec.Body.String(), "projects") {
		t.Fatalf("expected projects payload, got %s", apiRec.Body.String())
	}
}

func TestHealthzReportsDatabaseUp(t *testing.T) {
	cfg, cleanup := setupRouterTest(t)
	defer cleanup()

	r := SetupRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health body: %s", rr.Body.String())
	}
}

func TestRobotsTxtBlocksAdmin(t *testing.T) {
	cfg, cleanup := setupRouterTest(t)
	defer cleanup()

	r := SetupRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Disallow: /admin/") {
		t.Fatalf("expected admin disallow rule, got %q", body)
	}
	if !strings.Contains(body, "Sitemap: https://www.devfolio.dev/sitemap.xml") {
		t.Fatalf("expected sitemap hint, got %q", body)
	}
}

func TestSitemapListsProjectSlugs(t *testing.T) {
	cfg, cleanup := setupRouterTest(t)
	defer cleanup()

	seed := db.Project{Slug: "devfolio", Title: "Devfolio", Description: "作品集"}
	if err := db.DB.Create(&seed).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}

	r := SetupRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<urlset") {
		t.Fatalf("expected urlset element, got %q", body)
	}
	if !strings.Contains(body, "https://www.devfolio.dev/projects/devfolio") {
		t.Fatalf("expected project detail URL, got %q", body)
	}
}

func TestSetupRouterServesUploadsAlias(t *testing.T) {
	cfg, cleanup := setupRouterTest(t)
	defer cleanup()

	fileName := "example.txt"
	fileContent := []byte("hello uploads")
	if err := os.WriteFile(filepath.Join(cfg.UploadDir, fileName), fileContent, 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	r := SetupRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/uploads/"+fileName, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if rr.Body.String() != string(fileContent) {
		t.Fatalf("unexpected body, got %q", rr.Body.String())
	}
}
