package schema

import "strings"

// Certificate 是证书表单校验通过后的归一化记录。
type Certificate struct {
	Name           string `form:"name" validate:"required"`
	Issuer         string `form:"issuer" validate:"required"`
	IssuedAt       string `form:"issued_at" validate:"required,datetime=2006-01-02"`
	Image          string `form:"image" validate:"omitempty,url"`
	CertificateURL string `form:"certificate_url" validate:"omitempty,url"`
}

// ValidateCertificate 校验证书表单。
func ValidateCertificate(values Values) (*Certificate, Errors) {
	record := &Certificate{
		Name:           strings.TrimSpace(values["name"]),
		Issuer:         strings.TrimSpace(values["issuer"]),
		IssuedAt:       strings.TrimSpace(values["issued_at"]),
		Image:          strings.TrimSpace(values["image"]),
		CertificateURL: strings.TrimSpace(values["certificate_url"]),
	}

	if errs := structErrors(record); len(errs) > 0 {
		return nil, errs
	}
	return record, nil
}
