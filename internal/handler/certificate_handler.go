package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// ShowCertificateAdmin 渲染后台证书管理页
func (a *API) ShowCertificateAdmin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_certificates.html", gin.H{
		"title":        "证书管理",
		"certificates": a.certificates.List(),
	})
}

// GetCertificates 返回证书列表
func (a *API) GetCertificates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"certificates": a.certificates.List()})
}

// CreateCertificate 创建新证书
func (a *API) CreateCertificate(c *gin.Context) {
	values, ok := bindValues(c)
	if !ok {
		return
	}

	item, verrs, err := a.certificates.Create(values)
	if err != nil {
		respondStoreWriteError(c, err, "保存失败")
		return
	}
	if len(verrs) > 0 {
		respondFieldErrors(c, verrs)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "证书创建成功", "certificate": item})
}

// UpdateCertificate 更新证书
func (a *API) UpdateCertificate(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的证书ID")
		return
	}

	values, ok := bindValues(c)
	if !ok {
		return
	}

	item, verrs, err := a.certificates.Update(id, values)
	if err != nil {
		if errors.Is(err, service.ErrCertificateNotFound) {
			respondError(c, http.StatusNotFound, "证书不存在")
			return
		}
		respondStoreWriteError(c, err, "保存失败")
		return
	}
	if len(verrs) > 0 {
		respondFieldErrors(c, verrs)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "证书更新成功", "certificate": item})
}

// DeleteCertificate 删除证书
func (a *API) DeleteCertificate(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的证书ID")
		return
	}

	if err := a.certificates.Delete(id); err != nil {
		if errors.Is(err, service.ErrCertificateNotFound) {
			respondError(c, http.StatusNotFound, "证书不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "删除证书失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "证书已删除"})
}
