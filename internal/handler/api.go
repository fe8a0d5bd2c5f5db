package handler

import (
	"github.com/devfolio/internal/cache"
	"github.com/devfolio/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db           *gorm.DB
	cache        *cache.Store
	projects     *service.ProjectService
	experiences  *service.ExperienceService
	skills       *service.SkillService
	certificates *service.CertificateService
	messages     *service.MessageService
	uploadDir    string
	uploadURL    string
	siteBaseURL  string
}

// NewAPI constructs a handler set with shared services.
// All cached accessors share a single cache store so tag invalidation
// from one mutation is visible to every reader.
func NewAPI(gdb *gorm.DB, uploadDir, uploadURL, siteBaseURL string) *API {
	store := cache.NewStore()

	return &API{
		db:           gdb,
		cache:        store,
		projects:     service.NewProjectService(gdb, store),
		experiences:  service.NewExperienceService(gdb, store),
		skills:       service.NewSkillService(gdb, store),
		certificates: service.NewCertificateService(gdb),
		messages:     service.NewMessageService(gdb),
		uploadDir:    uploadDir,
		uploadURL:    uploadURL,
		siteBaseURL:  siteBaseURL,
	}
}

// DB exposes the underlying gorm instance for tests.
func (a *API) DB() *gorm.DB {
	return a.db
}
