package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// ShowMessageAdmin 渲染后台留言管理页
func (a *API) ShowMessageAdmin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_messages.html", gin.H{
		"title":    "留言管理",
		"messages": a.messages.List(),
	})
}

// GetMessages 返回留言列表
func (a *API) GetMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": a.messages.List()})
}

type messageStatusRequest struct {
	Status string `json:"status"`
}

// UpdateMessageStatus 更新留言处理状态
func (a *API) UpdateMessageStatus(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的留言ID")
		return
	}

	var payload messageStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "请求格式不正确")
		return
	}

	item, err := a.messages.UpdateStatus(id, payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMessageNotFound):
			respondError(c, http.StatusNotFound, "留言不存在")
		case errors.Is(err, service.ErrMessageStatusInvalid):
			respondError(c, http.StatusBadRequest, "无效的留言状态")
		default:
			respondError(c, http.StatusInternalServerError, "更新留言状态失败")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "留言状态已更新", "item": item})
}

// DeleteMessage 删除留言
func (a *API) DeleteMessage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的留言ID")
		return
	}

	if err := a.messages.Delete(id); err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			respondError(c, http.StatusNotFound, "留言不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "删除留言失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "留言已删除"})
}
