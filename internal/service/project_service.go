package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/devfolio/internal/cache"
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/schema"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// 缓存标签：同一实体的全部缓存键挂在同一个标签下，写路径按标签整体失效。
const (
	TagProjects    = "projects"
	TagExperiences = "experiences"
	TagSkills      = "skills"
)

const (
	projectListTTL = time.Hour
	projectSlugTTL = time.Hour
)

// ErrProjectNotFound 在指定的项目不存在时返回
var ErrProjectNotFound = errors.New("project not found")

// ProjectService 负责项目的读取与后台维护
// 公开读走缓存并在存储故障时降级为空结果，写路径校验后落库再同步失效缓存
type ProjectService struct {
	db    *gorm.DB
	cache *cache.Store
}

// NewProjectService 构造 ProjectService
func NewProjectService(gdb *gorm.DB, store *cache.Store) *ProjectService {
	return &ProjectService{db: gdb, cache: store}
}

// List 返回全部项目，按手工排序值升序、创建时间降序。
// 存储读取失败时记录日志并返回空列表，绝不让前台渲染失败。
func (s *ProjectService) List() []db.Project {
	value, err := s.cache.GetOrLoad("projects:list", projectListTTL, []string{TagProjects}, func() (any, error) {
		var items []db.Project
		if err := s.db.Order("sort_order ASC, created_at DESC").Find(&items).Error; err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		return items, nil
	})
	if err != nil {
		log.Error().Err(err).Msg("project list degraded to empty")
		return []db.Project{}
	}

	items, ok := value.([]db.Project)
	if !ok {
		return []db.Project{}
	}
	return items
}

// GetBySlug 按公开查找键获取单个项目。
// 不存在返回 nil（不是错误）；存储故障记录日志后同样返回 nil。
func (s *ProjectService) GetBySlug(slug string) *db.Project {
	key := "projects:slug:" + slug
	value, err := s.cache.GetOrLoad(key, projectSlugTTL, []string{TagProjects}, func() (any, error) {
		var project db.Project
		if err := s.db.Where("slug = ?", slug).First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// 未命中也缓存，失效由 projects 标签统一负责
				return (*db.Project)(nil), nil
			}
			return nil, fmt.Errorf("get project by slug: %w", err)
		}
		return &project, nil
	})
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("project lookup degraded to absent")
		return nil
	}

	project, ok := value.(*db.Project)
	if !ok {
		return nil
	}
	return project
}

// GetByID 按主键获取项目，供后台编辑页定位目标行。
func (s *ProjectService) GetByID(id uint) (*db.Project, error) {
	var project db.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &project, nil
}

// Create 校验表单后新建项目，成功落库后同步失效 projects 标签。
// 校验失败不触碰存储；落库失败不做任何缓存失效。
func (s *ProjectService) Create(values schema.Values) (*db.Project, schema.Errors, error) {
	record, verrs := schema.ValidateProject(values)
	if len(verrs) > 0 {
		return nil, verrs, nil
	}

	project := db.Project{
		Slug:             record.Slug,
		Title:            record.Title,
		Description:      record.Description,
		Summary:          record.Summary,
		Challenge:        record.Challenge,
		Contribution:     record.Contribution,
		KeyFeatures:      db.StringList(record.KeyFeatures),
		Category:         record.Category,
		ImageURL:         record.ImageURL,
		TechStack:        db.StringList(record.TechStack),
		DemoURL:          record.DemoURL,
		RepoURL:          record.RepoURL,
		SortOrder:        record.SortOrder,
		AdditionalImages: db.StringList(record.AdditionalImages),
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, nil, fmt.Errorf("create project: %w", err)
	}

	s.cache.Invalidate(TagProjects)
	return &project, nil, nil
}

// Update 校验表单后更新指定项目并失效缓存。
func (s *ProjectService) Update(id uint, values schema.Values) (*db.Project, schema.Errors, error) {
	record, verrs := schema.ValidateProject(values)
	if len(verrs) > 0 {
		return nil, verrs, nil
	}

	var project db.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProjectNotFound
		}
		return nil, nil, fmt.Errorf("find project: %w", err)
	}

	project.Slug = record.Slug
	project.Title = record.Title
	project.Description = record.Description
	project.Summary = record.Summary
	project.Challenge = record.Challenge
	project.Contribution = record.Contribution
	project.KeyFeatures = db.StringList(record.KeyFeatures)
	project.Category = record.Category
	project.ImageURL = record.ImageURL
	project.TechStack = db.StringList(record.TechStack)
	project.DemoURL = record.DemoURL
	project.RepoURL = record.RepoURL
	project.SortOrder = record.SortOrder
	project.AdditionalImages = db.StringList(record.AdditionalImages)

	if err := s.db.Save(&project).Error; err != nil {
		return nil, nil, fmt.Errorf("update project: %w", err)
	}

	s.cache.Invalidate(TagProjects)
	return &project, nil, nil
}

// Delete 按主键删除项目并失效缓存。
func (s *ProjectService) Delete(id uint) error {
	tx := s.db.Delete(&db.Project{}, id)
	if tx.Error != nil {
		return fmt.Errorf("delete project: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrProjectNotFound
	}

	s.cache.Invalidate(TagProjects)
	return nil
}
