package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/schema"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	// ErrMessageNotFound 在指定的留言不存在时返回
	ErrMessageNotFound = errors.New("message not found")
	// ErrMessageStatusInvalid 在状态不属于允许的枚举值时返回
	ErrMessageStatusInvalid = errors.New("message status is invalid")
)

// MessageService 负责联系表单留言的接收与后台处理
type MessageService struct {
	db *gorm.DB
}

// NewMessageService 构造 MessageService
func NewMessageService(gdb *gorm.DB) *MessageService {
	return &MessageService{db: gdb}
}

// Submit 处理一次联系表单提交。
// honeypot 非空视为机器人：直接当成功处理但不落库，也不给任何可见错误。
// 正常提交先过校验，通过后以 pending 状态入库。
func (s *MessageService) Submit(values schema.Values, honeypot string) (*db.Message, schema.Errors, error) {
	if strings.TrimSpace(honeypot) != "" {
		log.Info().Msg("contact submission dropped by honeypot")
		return nil, nil, nil
	}

	record, verrs := schema.ValidateMessage(values)
	if len(verrs) > 0 {
		return nil, verrs, nil
	}

	message := db.Message{
		Name:     record.Name,
		Email:    record.Email,
		Category: record.Category,
		Budget:   record.Budget,
		Body:     record.Body,
		Status:   db.MessageStatusPending,
	}

	if err := s.db.Create(&message).Error; err != nil {
		return nil, nil, fmt.Errorf("create message: %w", err)
	}
	return &message, nil, nil
}

// List 返回全部留言，最新的在前。仅后台使用，不走缓存。
func (s *MessageService) List() []db.Message {
	var items []db.Message
	if err := s.db.Order("created_at DESC").Find(&items).Error; err != nil {
		log.Error().Err(err).Msg("message list degraded to empty")
		return []db.Message{}
	}
	return items
}

// GetByID 按主键获取留言。
func (s *MessageService) GetByID(id uint) (*db.Message, error) {
	var item db.Message
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("get message: %w", err)
	}
	return &item, nil
}

// UpdateStatus 更新留言的处理状态。
func (s *MessageService) UpdateStatus(id uint, status string) (*db.Message, error) {
	if !db.ValidMessageStatus(status) {
		return nil, ErrMessageStatusInvalid
	}

	var item db.Message
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("find message: %w", err)
	}

	item.Status = status
	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update message status: %w", err)
	}
	return &item, nil
}

// Delete 按主键删除留言。
func (s *MessageService) Delete(id uint) error {
	tx := s.db.Delete(&db.Message{}, id)
	if tx.Error != nil {
		return fmt.Errorf("delete message: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
