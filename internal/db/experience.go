package db

import "gorm.io/gorm"

// Experience 定义了工作经历模型
// SortOrder 升序为主排序，created_at 降序兜底
type Experience struct {
	gorm.Model
	Position    string `gorm:"size:120;not null"`
	Company     string `gorm:"size:120;not null"`
	Period      string `gorm:"size:80;not null"`
	Description string
	SortOrder   int `gorm:"default:0"`
}
