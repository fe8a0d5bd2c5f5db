package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/schema"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func respondFieldErrors(c *gin.Context, errs schema.Errors) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}

// bindValues 把请求体里的 JSON 对象解码为表单字段映射。
// 后台编辑器以字符串键值提交，归一化交给 schema 层。
func bindValues(c *gin.Context) (schema.Values, bool) {
	var payload map[string]string
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "请求格式不正确")
		return nil, false
	}
	return schema.Values(payload), true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// respondStoreWriteError 把存储写入失败翻译为响应：
// 约束冲突给 409，其余一律返回通用失败信息。
func respondStoreWriteError(c *gin.Context, err error, conflictMessage string) {
	if db.Kind(err) == db.KindConstraint {
		respondError(c, http.StatusConflict, conflictMessage)
		return
	}
	respondError(c, http.StatusInternalServerError, "保存失败，请稍后重试")
}
