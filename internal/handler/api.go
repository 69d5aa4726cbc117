package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sitecms/internal/logger"
	"github.com/sitecms/internal/render"
	"github.com/sitecms/internal/sanitize"
	"github.com/sitecms/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	menus     *service.MenuService
	tabs      *service.TabService
	catalog   *service.CatalogService
	settings  *service.SiteSettingsService
	resolver  *service.Resolver
	fragments *render.Fragments
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, sanitizer *sanitize.Sanitizer) *API {
	resolver := service.NewResolver(gdb)

	return &API{
		db:        gdb,
		menus:     service.NewMenuService(gdb),
		tabs:      service.NewTabService(gdb, sanitizer),
		catalog:   service.NewCatalogService(gdb),
		settings:  service.NewSiteSettingsService(gdb),
		resolver:  resolver,
		fragments: render.NewFragments(resolver),
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}

// Fragments exposes the fragment renderer so the router can register its
// template functions before templates are parsed.
func (a *API) Fragments() *render.Fragments {
	return a.fragments
}

// requestContext 汇总模板需要的请求信息（当前路径用于菜单高亮）
func requestContext(c *gin.Context) map[string]interface{} {
	ctx := map[string]interface{}{
		"path":  c.Request.URL.Path,
		"query": c.Request.URL.RawQuery,
	}
	if id := logger.RequestID(c); id != "" {
		ctx["request_id"] = id
	}
	return ctx
}
