package db

import "gorm.io/gorm"

// Skill 定义了技能模型
// IconKey 对应 internal/view 内置图标，未知键前台不渲染图标
type Skill struct {
	gorm.Model
	Name     string `gorm:"size:80;not null"`
	Category string `gorm:"size:80;not null"`
	IconKey  string `gorm:"size:50"`
}
