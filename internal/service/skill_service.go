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

const skillListTTL = time.Hour

// ErrSkillNotFound 在指定的技能不存在时返回
var ErrSkillNotFound = errors.New("skill not found")

// SkillService 负责技能的读取与后台维护
type SkillService struct {
	db    *gorm.DB
	cache *cache.Store
}

// NewSkillService 构造 SkillService
func NewSkillService(gdb *gorm.DB, store *cache.Store) *SkillService {
	return &SkillService{db: gdb, cache: store}
}

// List 返回全部技能，按分类与主键排序。
func (s *SkillService) List() []db.Skill {
	value, err := s.cache.GetOrLoad("skills:list", skillListTTL, []string{TagSkills}, func() (any, error) {
		var items []db.Skill
		if err := s.db.Order("category ASC, id ASC").Find(&items).Error; err != nil {
			return nil, fmt.Errorf("list skills: %w", err)
		}
		return items, nil
	})
	if err != nil {
		log.Error().Err(err).Msg("skill list degraded to empty")
		return []db.Skill{}
	}

	items, ok := value.([]db.Skill)
	if !ok {
		return []db.Skill{}
	}
	return items
}

// GetByID 按主键获取技能。
func (s *SkillService) GetByID(id uint) (*db.Skill, error) {
	var item db.Skill
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("get skill: %w", err)
	}
	return &item, nil
}

// Create 校验表单后新建技能并失效缓存。
func (s *SkillService) Create(values schema.Values) (*db.Skill, schema.Errors, error) {
	record, verrs := schema.ValidateSkill(values)
	if len(verrs) > 0 {
		return nil, verrs, nil
	}

	item := db.Skill{
		Name:     record.Name,
		Category: record.Category,
		IconKey:  record.IconKey,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, nil, fmt.Errorf("create skill: %w", err)
	}

	s.cache.Invalidate(TagSkills)
	return &item, nil, nil
}

// Update 校验表单后更新指定技能并失效缓存。
func (s *SkillService) Update(id uint, values schema.Values) (*db.Skill, schema.Errors, error) {
	record, verrs := schema.ValidateSkill(values)
	if len(verrs) > 0 {
		return nil, verrs, nil
	}

	var item db.Skill
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSkillNotFound
		}
		return nil, nil, fmt.Errorf("find skill: %w", err)
	}

	item.Name = record.Name
	item.Category = record.Category
	item.IconKey = record.IconKey

	if err := s.db.Save(&item).Error; err != nil {
		return nil, nil, fmt.Errorf("update skill: %w", err)
	}

	s.cache.Invalidate(TagSkills)
	return &item, nil, nil
}

// Delete 按主键删除技能并失效缓存。
func (s *SkillService) Delete(id uint) error {
	tx := s.db.Delete(&db.Skill{}, id)
	if tx.Error != nil {
		return fmt.Errorf("delete skill: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrSkillNotFound
	}

	s.cache.Invalidate(TagSkills)
	return nil
}
