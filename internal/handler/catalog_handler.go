package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitecms/internal/service"
)

// ListServices 获取首页服务列表
func (a *API) ListServices(c *gin.Context) {
	services, err := a.catalog.List()
	if err != nil {
		respondServiceError(c, err, "服务不存在", "获取服务列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetService 获取单个服务
func (a *API) GetService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的服务ID")
		return
	}

	svc, err := a.catalog.Get(id)
	if err != nil {
		respondServiceError(c, err, "服务不存在", "获取服务失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// CreateService 新增服务
func (a *API) CreateService(c *gin.Context) {
	var req service.ServiceInput
	if !bindJSON(c, &req, "服务数据格式不正确") {
		return
	}

	svc, err := a.catalog.Create(req)
	if err != nil {
		respondServiceError(c, err, "服务不存在", "创建服务失败")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "服务创建成功", "service": svc})
}

// UpdateService 更新服务
func (a *API) UpdateService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的服务ID")
		return
	}

	var req service.ServiceInput
	if !bindJSON(c, &req, "服务数据格式不正确") {
		return
	}

	svc, err := a.catalog.Update(id, req)
	if err != nil {
		respondServiceError(c, err, "服务不存在", "更新服务失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "服务更新成功", "service": svc})
}

// DeleteService 删除服务
func (a *API) DeleteService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的服务ID")
		return
	}

	if err := a.catalog.Delete(id); err != nil {
		respondServiceError(c, err, "服务不存在", "删除服务失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "服务删除成功"})
}
