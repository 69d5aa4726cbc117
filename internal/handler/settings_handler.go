package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitecms/internal/service"
)

// GetSiteSettings 返回当前站点设置，未配置时 settings 为 null
func (a *API) GetSiteSettings(c *gin.Context) {
	settings, err := a.settings.Get()
	if err != nil {
		respondServiceError(c, err, "站点设置不存在", "获取站点设置失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSiteSettings 保存站点设置
func (a *API) UpdateSiteSettings(c *gin.Context) {
	var req service.SiteSettingsInput
	if !bindJSON(c, &req, "站点设置格式不正确") {
		return
	}

	settings, err := a.settings.Save(req)
	if err != nil {
		respondServiceError(c, err, "站点设置不存在", "保存站点设置失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "站点设置已保存", "settings": settings})
}
