package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// ShowProjectAdmin 渲染后台项目管理页
func (a *API) ShowProjectAdmin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_projects.html", gin.H{
		"title":    "项目管理",
		"projects": a.projects.List(),
	})
}

// GetProjects 返回项目列表
func (a *API) GetProjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"projects": a.projects.List()})
}

// GetProject 返回单个项目
func (a *API) GetProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	project, err := a.projects.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, "项目不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "获取项目失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// CreateProject 创建新项目
func (a *API) CreateProject(c *gin.Context) {
	values, ok := bindValues(c)
	if !ok {
		return
	}

	project, verrs, err := a.projects.Create(values)
	if err != nil {
		respondStoreWriteError(c, err, "Slug 已被使用")
		return
	}
	if len(verrs) > 0 {
		respondFieldErrors(c, verrs)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "项目创建成功", "project": project})
}

// UpdateProject 更新项目
func (a *API) UpdateProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	values, ok := bindValues(c)
	if !ok {
		return
	}

	project, verrs, err := a.projects.Update(id, values)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, "项目不存在")
			return
		}
		respondStoreWriteError(c, err, "Slug 已被使用")
		return
	}
	if len(verrs) > 0 {
		respondFieldErrors(c, verrs)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "项目更新成功", "project": project})
}

// DeleteProject 删除项目
func (a *API) DeleteProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	if err := a.projects.Delete(id); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, "项目不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "删除项目失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "项目已删除"})
}
