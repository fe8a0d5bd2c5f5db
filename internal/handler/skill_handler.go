package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/devfolio/internal/view"
	"github.com/gin-gonic/gin"
)

// ShowSkillAdmin 渲染后台技能管理页
func (a *API) ShowSkillAdmin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_skills.html", gin.H{
		"title":       "技能管理",
		"skills":      a.skills.List(),
		"iconOptions": view.SkillIconOptions(),
	})
}

// GetSkills 返回技能列表
func (a *API) GetSkills(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"skills": a.skills.List()})
}

// CreateSkill 创建新技能
func (a *API) CreateSkill(c *gin.Context) {
	values, ok := bindValues(c)
	if !ok {
		return
	}

	item, verrs, err := a.skills.Create(values)
	if err != nil {
		respondStoreWriteError(c, err, "保存失败")
		return
	}
	if len(verrs) > 0 {
		respondFieldErrors(c, verrs)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "技能创建成功", "skill": item})
}

// UpdateSkill 更新技能
func (a *API) UpdateSkill(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的技能ID")
		return
	}

	values, ok := bindValues(c)
	if !ok {
		return
	}

	item, verrs, err := a.skills.Update(id, values)
	if err != nil {
		if errors.Is(err, service.ErrSkillNotFound) {
			respondError(c, http.StatusNotFound, "技能不存在")
			return
		}
		respondStoreWriteError(c, err, "保存失败")
		return
	}
	if len(verrs) > 0 {
		respondFieldErrors(c, verrs)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "技能更新成功", "skill": item})
}

// DeleteSkill 删除技能
func (a *API) DeleteSkill(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的技能ID")
		return
	}

	if err := a.skills.Delete(id); err != nil {
		if errors.Is(err, service.ErrSkillNotFound) {
			respondError(c, http.StatusNotFound, "技能不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "删除技能失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "技能已删除"})
}
