package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// ShowExperienceAdmin 渲染后台经历管理页
func (a *API) ShowExperienceAdmin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_experiences.html", gin.H{
		"title":       "经历管理",
		"experiences": a.experiences.List(),
	})
}

// GetExperiences 返回经历列表
func (a *API) GetExperiences(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"experiences": a.experiences.List()})
}

// CreateExperience 创建新经历
func (a *API) CreateExperience(c *gin.Context) {
	values, ok := bindValues(c)
	if !ok {
		return
	}

	item, verrs, err := a.experiences.Create(values)
	if err != nil {
		respondStoreWriteError(c, err, "保存失败")
		return
	}
	if len(verrs) > 0 {
		respondFieldErrors(c, verrs)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "经历创建成功", "experience": item})
}

// UpdateExperience 更新经历
func (a *API) UpdateExperience(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的经历ID")
		return
	}

	values, ok := bindValues(c)
	if !ok {
		return
	}

	item, verrs, err := a.experiences.Update(id, values)
	if err != nil {
		if errors.Is(err, service.ErrExperienceNotFound) {
			respondError(c, http.StatusNotFound, "经历不存在")
			return
		}
		respondStoreWriteError(c, err, "保存失败")
		return
	}
	if len(verrs) > 0 {
		respondFieldErrors(c, verrs)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "经历更新成功", "experience": item})
}

// DeleteExperience 删除经历
func (a *API) DeleteExperience(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的经历ID")
		return
	}

	if err := a.experiences.Delete(id); err != nil {
		if errors.Is(err, service.ErrExperienceNotFound) {
			respondError(c, http.StatusNotFound, "经历不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "删除经历失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "经历已删除"})
}
