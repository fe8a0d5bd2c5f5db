package service

import (
	"testing"

	"github.com/devfolio/internal/cache"
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/schema"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T, models ...any) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate models: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func projectValues(slug, title string, sortOrder string) schema.Values {
	return schema.Values{
		"title":       title,
		"slug":        slug,
		"description": "Test project description.",
		"tech_stack":  "Go, Gin",
		"sort_order":  sortOrder,
	}
}

func TestProjectServiceCreateAndList(t *testing.T) {
	cleanup := setupServiceTestDB(t, &db.Project{})
	defer cleanup()

	svc := NewProjectService(db.DB, cache.NewStore())

	if _, verrs, err := svc.Create(projectValues("site-b", "Site B", "2")); err != nil || len(verrs) != 0 {
		t.Fatalf("create failed: verrs=%v err=%v", verrs, err)
	}
	if _, verrs, err := svc.Create(projectValues("site-a", "Site A", "1")); err != nil || len(verrs) != 0 {
		t.Fatalf("create failed: verrs=%v err=%v", verrs, err)
	}

	items := svc.List()
	if len(items) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(items))
	}
	if items[0].Slug != "site-a" || items[1].Slug != "site-b" {
		t.Fatalf("expected sort_order ordering, got %q then %q", items[0].Slug, items[1].Slug)
	}
}

func TestProjectServiceValidationDoesNotTouchStore(t *testing.T) {
	cleanup := setupServiceTestDB(t, &db.Project{})
	defer cleanup()

	svc := NewProjectService(db.DB, cache.NewStore())

	record, verrs, err := svc.Create(projectValues("bad-slug", "AB", "0"))
	if err != nil {
		t.Fatalf("unexpected store error: %v", err)
	}
	if record != nil {
		t.Fatalf("expected no record on validation failure")
	}
	if len(verrs) == 0 || verrs[0].Field != "title" {
		t.Fatalf("expected title field error, got %v", verrs)
	}

	var count int64
	db.DB.Model(&db.Project{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no rows after validation failure, got %d", count)
	}
}

func TestProjectServiceListReflectsMutations(t *testing.T) {
	cleanup := setupServiceTestDB(t, &db.Project{})
	defer cleanup()

	svc := NewProjectService(db.DB, cache.NewStore())

	if _, verrs, err := svc.Create(projectValues("first", "First", "0")); err != nil || len(verrs) != 0 {
		t.Fatalf("create failed: verrs=%v err=%v", verrs, err)
	}
	if got := len(svc.List()); got != 1 {
		t.Fatalf("expected 1 project, got %d", got)
	}

	// 列表已被缓存（TTL 1 小时），新建必须同步失效后立刻可见
	if _, verrs, err := svc.Create(projectValues("second", "Second", "1")); err != nil || len(verrs) != 0 {
		t.Fatalf("create failed: verrs=%v err=%v", verrs, err)
	}
	if got := len(svc.List()); got != 2 {
		t.Fatalf("expected invalidated list to show 2 projects, got %d", got)
	}
}

func TestProjectServiceGetBySlug(t *testing.T) {
	cleanup := setupServiceTestDB(t, &db.Project{})
	defer cleanup()

	svc := NewProjectService(db.DB, cache.NewStore())

	created, verrs, err := svc.Create(projectValues("my-site", "My Site", "0"))
	if err != nil || len(verrs) != 0 {
		t.Fatalf("create failed: verrs=%v err=%v", verrs, err)
	}

	found := svc.GetBySlug("my-site")
	if found == nil || found.ID != created.ID {
		t.Fatalf("expected to find project by slug")
	}

	if missing := svc.GetBySlug("no-such-slug"); missing != nil {
		t.Fatalf("expected nil for unknown slug, got %#v", missing)
	}

	// 详情已被缓存，更新必须同步失效后立刻可见
	values := projectValues("my-site", "My Site", "0")
	values["title"] = "Renamed Site"
	if _, verrs, err := svc.Update(created.ID, values); err != nil || len(verrs) != 0 {
		t.Fatalf("update failed: verrs=%v err=%v", verrs, err)
	}

	renamed := svc.GetBySlug("my-site")
	if renamed == nil || renamed.Title != "Renamed Site" {
		t.Fatalf("expected post-update lookup to see new title, got %#v", renamed)
	}
}

func TestProjectServiceDeleteThenNotFound(t *testing.T) {
	cleanup := setupServiceTestDB(t, &db.Project{})
	defer cleanup()

	svc := NewProjectService(db.DB, cache.NewStore())

	created, verrs, err := svc.Create(projectValues("gone-soon", "Gone Soon", "0"))
	if err != nil || len(verrs) != 0 {
		t.Fatalf("create failed: verrs=%v err=%v", verrs, err)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := svc.GetByID(created.ID); err != ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
	if found := svc.GetBySlug("gone-soon"); found != nil {
		t.Fatalf("expected slug lookup to miss after delete")
	}
	if err := svc.Delete(created.ID); err != ErrProjectNotFound {
		t.Fatalf("expected second delete to report not found, got %v", err)
	}
}

func TestProjectServiceDegradesToEmptyOnStoreFailure(t *testing.T) {
	cleanup := setupServiceTestDB(t, &db.Project{})

	svc := NewProjectService(db.DB, cache.NewStore())

	// 关闭底层连接模拟存储故障
	cleanup()

	items := svc.List()
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty list on store failure, got %v", items)
	}
	if found := svc.GetBySlug("anything"); found != nil {
		t.Fatalf("expected nil lookup on store failure")
	}
}
