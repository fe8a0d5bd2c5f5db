package db

import "gorm.io/gorm"

// Certificate 定义了证书模型
// IssuedAt 以 2006-01-02 格式的日期字符串存储
type Certificate struct {
	gorm.Model
	Name           string `gorm:"size:200;not null"`
	Issuer         string `gorm:"size:120;not null"`
	IssuedAt       string `gorm:"size:10;not null"`
	Image          string `gorm:"size:255"`
	CertificateURL string `gorm:"size:255"`
}
