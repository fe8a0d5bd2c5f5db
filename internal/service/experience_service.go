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

// 经历列表的 TTL 取 1 秒：后台编辑频繁时前台近乎总是新鲜，
// 并发读仍然只触发一次存储查询。
const experienceListTTL = time.Second

// ErrExperienceNotFound 在指定的工作经历不存在时返回
var ErrExperienceNotFound = errors.New("experience not found")

// ExperienceService 负责工作经历的读取与后台维护
type ExperienceService struct {
	db    *gorm.DB
	cache *cache.Store
}

// NewExperienceService 构造 ExperienceService
func NewExperienceService(gdb *gorm.DB, store *cache.Store) *ExperienceService {
	return &ExperienceService{db: gdb, cache: store}
}

// List 返回全部工作经历，排序下沉到存储层：
// sort_order 升序为主，created_at 降序兜底（同序值时新建的在前）。
func (s *ExperienceService) List() []db.Experience {
	value, err := s.cache.GetOrLoad("experiences:list", experienceListTTL, []string{TagExperiences}, func() (any, error) {
		var items []db.Experience
		if err := s.db.Order("sort_order ASC, created_at DESC").Find(&items).Error; err != nil {
			return nil, fmt.Errorf("list experiences: %w", err)
		}
		return items, nil
	})
	if err != nil {
		log.Error().Err(err).Msg("experience list degraded to empty")
		return []db.Experience{}
	}

	items, ok := value.([]db.Experience)
	if !ok {
		return []db.Experience{}
	}
	return items
}

// GetByID 按主键获取工作经历，供后台编辑页定位目标行。
func (s *ExperienceService) GetByID(id uint) (*db.Experience, error) {
	var item db.Experience
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("get experience: %w", err)
	}
	return &item, nil
}

// Create 校验表单后新建工作经历并失效缓存。
func (s *ExperienceService) Create(values schema.Values) (*db.Experience, schema.Errors, error) {
	record, verrs := schema.ValidateExperience(values)
	if len(verrs) > 0 {
		return nil, verrs, nil
	}

	item := db.Experience{
		Position:    record.Position,
		Company:     record.Company,
		Period:      record.Period,
		Description: record.Description,
		SortOrder:   record.SortOrder,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, nil, fmt.Errorf("create experience: %w", err)
	}

	s.cache.Invalidate(TagExperiences)
	return &item, nil, nil
}

// Update 校验表单后更新指定工作经历并失效缓存。
func (s *ExperienceService) Update(id uint, values schema.Values) (*db.Experience, schema.Errors, error) {
	record, verrs := schema.ValidateExperience(values)
	if len(verrs) > 0 {
		return nil, verrs, nil
	}

	var item db.Experience
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrExperienceNotFound
		}
		return nil, nil, fmt.Errorf("find experience: %w", err)
	}

	item.Position = record.Position
	item.Company = record.Company
	item.Period = record.Period
	item.Description = record.Description
	item.SortOrder = record.SortOrder

	if err := s.db.Save(&item).Error; err != nil {
		return nil, nil, fmt.Errorf("update experience: %w", err)
	}

	s.cache.Invalidate(TagExperiences)
	return &item, nil, nil
}

// Delete 按主键删除工作经历并失效缓存。
func (s *ExperienceService) Delete(id uint) error {
	tx := s.db.Delete(&db.Experience{}, id)
	if tx.Error != nil {
		return fmt.Errorf("delete experience: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrExperienceNotFound
	}

	s.cache.Invalidate(TagExperiences)
	return nil
}
