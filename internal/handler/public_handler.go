package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitecms/internal/logger"
	"github.com/sitecms/internal/render"
	"github.com/sitecms/internal/service"
)

// ShowIndex renders the public home page: settings, services and the
// menu/tab fragments pulled in by the template itself.
func (a *API) ShowIndex(c *gin.Context) {
	settings, err := a.resolver.ResolveSettings()
	if err != nil {
		logger.Error().Err(err).Str("request_id", logger.RequestID(c)).Msg("load site settings failed")
		c.String(http.StatusInternalServerError, "页面加载失败")
		return
	}

	services, err := a.resolver.ResolveServices()
	if err != nil {
		logger.Error().Err(err).Str("request_id", logger.RequestID(c)).Msg("load services failed")
		c.String(http.StatusInternalServerError, "页面加载失败")
		return
	}

	// 未配置站点设置时模板按空状态渲染
	var settingsView interface{}
	if settings != nil {
		settingsView = settings
	}

	// 先完整渲染到内存，片段出错时返回 500 而不是半截页面
	page, err := a.fragments.RenderPage("index.html", gin.H{
		"settings": settingsView,
		"services": services,
		"request":  requestContext(c),
	})
	if err != nil {
		logger.Error().Err(err).Str("request_id", logger.RequestID(c)).Msg("render index failed")
		c.String(http.StatusInternalServerError, "页面加载失败")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// ShowFragment renders a single menu or tab block, e.g. for HTMX swaps:
// GET /fragments/menu/main?template=menu-footer
func (a *API) ShowFragment(c *gin.Context) {
	kind, ok := service.ParseKind(c.Param("kind"))
	if !ok {
		respondError(c, http.StatusNotFound, "内容类型不存在")
		return
	}

	html, err := a.fragments.Render(kind, c.Param("slug"), c.Query("template"), requestContext(c))
	if err != nil {
		switch {
		case errors.Is(err, render.ErrPathTraversal):
			respondError(c, http.StatusBadRequest, "模板名称不合法")
		case errors.Is(err, render.ErrTemplateNotFound):
			logger.Warn().Str("kind", string(kind)).Str("template", c.Query("template")).Msg("fragment template not found")
			respondError(c, http.StatusNotFound, "模板不存在")
		default:
			logger.Error().Err(err).Str("request_id", logger.RequestID(c)).Msg("render fragment failed")
			respondError(c, http.StatusInternalServerError, "渲染失败")
		}
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
