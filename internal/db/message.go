package db

import "gorm.io/gorm"

const (
	// MessageStatusPending 表示留言尚未处理
	MessageStatusPending = "pending"
	// MessageStatusRead 表示留言已读
	MessageStatusRead = "read"
	// MessageStatusReplied 表示留言已回复
	MessageStatusReplied = "replied"
)

// Message 定义了联系表单留言模型
type Message struct {
	gorm.Model
	Name     string `gorm:"size:120;not null"`
	Email    string `gorm:"size:200;not null"`
	Category string `gorm:"size:80;not null"`
	Budget   string `gorm:"size:80;not null"`
	Body     string `gorm:"column:body;not null"`
	Status   string `gorm:"size:20;default:pending"`
}

// ValidMessageStatus 判断给定状态是否属于允许的枚举值。
func ValidMessageStatus(status string) bool {
	switch status {
	case MessageStatusPending, MessageStatusRead, MessageStatusReplied:
		return true
	}
	return false
}
