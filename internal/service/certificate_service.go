package service

import (
	"errors"
	"fmt"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/schema"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrCertificateNotFound 在指定的证书不存在时返回
var ErrCertificateNotFound = errors.New("certificate not found")

// CertificateService 负责证书的读取与后台维护
// 证书数量少、变更少，列表不走缓存，每次直查存储。
type CertificateService struct {
	db *gorm.DB
}

// NewCertificateService 构造 CertificateService
func NewCertificateService(gdb *gorm.DB) *CertificateService {
	return &CertificateService{db: gdb}
}

// List 返回全部证书，按颁发日期降序。
func (s *CertificateService) List() []db.Certificate {
	var items []db.Certificate
	if err := s.db.Order("issued_at DESC").Find(&items).Error; err != nil {
		log.Error().Err(err).Msg("certificate list degraded to empty")
		return []db.Certificate{}
	}
	return items
}

// GetByID 按主键获取证书。
func (s *CertificateService) GetByID(id uint) (*db.Certificate, error) {
	var item db.Certificate
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, fmt.Errorf("get certificate: %w", err)
	}
	return &item, nil
}

// Create 校验表单后新建证书。
func (s *CertificateService) Create(values schema.Values) (*db.Certificate, schema.Errors, error) {
	record, verrs := schema.ValidateCertificate(values)
	if len(verrs) > 0 {
		return nil, verrs, nil
	}

	item := db.Certificate{
		Name:           record.Name,
		Issuer:         record.Issuer,
		IssuedAt:       record.IssuedAt,
		Image:          record.Image,
		CertificateURL: record.CertificateURL,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, nil, fmt.Errorf("create certificate: %w", err)
	}
	return &item, nil, nil
}

// Update 校验表单后更新指定证书。
func (s *CertificateService) Update(id uint, values schema.Values) (*db.Certificate, schema.Errors, error) {
	record, verrs := schema.ValidateCertificate(values)
	if len(verrs) > 0 {
		return nil, verrs, nil
	}

	var item db.Certificate
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCertificateNotFound
		}
		return nil, nil, fmt.Errorf("find certificate: %w", err)
	}

	item.Name = record.Name
	item.Issuer = record.Issuer
	item.IssuedAt = record.IssuedAt
	item.Image = record.Image
	item.CertificateURL = record.CertificateURL

	if err := s.db.Save(&item).Error; err != nil {
		return nil, nil, fmt.Errorf("update certificate: %w", err)
	}
	return &item, nil, nil
}

// Delete 按主键删除证书。
func (s *CertificateService) Delete(id uint) error {
	tx := s.db.Delete(&db.Certificate{}, id)
	if tx.Error != nil {
		return fmt.Errorf("delete certificate: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrCertificateNotFound
	}
	return nil
}
