package db

import "gorm.io/gorm"

// Project 定义了项目模型
// Slug 是公开详情页的查找键，唯一性由数据库索引保证
// SortOrder 为手工维护的展示排序，允许重复
type Project struct {
	gorm.Model
	Slug             string `gorm:"size:120;uniqueIndex;not null"`
	Title            string `gorm:"size:200;not null"`
	Description      string `gorm:"not null"`
	Summary          string
	Challenge        string
	Contribution     string
	KeyFeatures      StringList `gorm:"type:text"`
	Category         string     `gorm:"size:80"`
	ImageURL         string     `gorm:"size:255"`
	TechStack        StringList `gorm:"type:text"`
	DemoURL          string     `gorm:"size:255"`
	RepoURL          string     `gorm:"size:255"`
	SortOrder        int        `gorm:"default:0"`
	AdditionalImages StringList `gorm:"type:text"`
}
