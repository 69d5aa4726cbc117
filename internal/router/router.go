package router

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sitecms/internal/config"
	"github.com/sitecms/internal/handler"
	"github.com/sitecms/internal/logger"
	"github.com/sitecms/internal/render"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, cfg config.AppConfig) (*gin.Engine, error) {
	r := gin.New()
	r.Use(logger.GinLogger(), logger.GinRecovery())

	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", logger.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", logger.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// 模板函数需在解析前注册，show_menu / show_tabs 由 Fragments 提供
	tmpl, err := render.LoadTemplates(os.DirFS(cfg.TemplateDir), api.Fragments().FuncMap())
	if err != nil {
		return nil, fmt.Errorf("load templates from %s: %w", cfg.TemplateDir, err)
	}
	api.Fragments().SetTemplates(tmpl)

	// 静态文件服务
	if cfg.StaticDir != "" {
		r.Static("/static", cfg.StaticDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 前台页面
	r.GET("/", api.ShowIndex)
	r.GET("/fragments/:kind/:slug", api.ShowFragment)

	// 后台管理 API（认证由外层网关负责）
	admin := r.Group("/admin/api")
	{
		admin.GET("/menus", api.ListMenus)
		admin.POST("/menus", api.CreateMenu)
		admin.GET("/menus/:id", api.GetMenu)
		admin.PUT("/menus/:id", api.UpdateMenu)
		admin.DELETE("/menus/:id", api.DeleteMenu)
		admin.PUT("/menus/:id/slug", api.RenameMenuSlug)
		admin.PUT("/menus/:id/reorder", api.ReorderMenuItems)
		admin.GET("/menus/:id/items", api.ListMenuItems)
		admin.POST("/menus/:id/items", api.CreateMenuItem)
		admin.PUT("/menu-items/:id", api.UpdateMenuItem)
		admin.DELETE("/menu-items/:id", api.DeleteMenuItem)

		admin.GET("/tabs", api.ListTabs)
		admin.POST("/tabs", api.CreateTab)
		admin.GET("/tabs/:id", api.GetTab)
		admin.PUT("/tabs/:id", api.UpdateTab)
		admin.DELETE("/tabs/:id", api.DeleteTab)
		admin.PUT("/tabs/:id/slug", api.RenameTabSlug)
		admin.PUT("/tabs/:id/reorder", api.ReorderTabItems)
		admin.GET("/tabs/:id/items", api.ListTabItems)
		admin.POST("/tabs/:id/items", api.CreateTabItem)
		admin.PUT("/tab-items/:id", api.UpdateTabItem)
		admin.DELETE("/tab-items/:id", api.DeleteTabItem)

		admin.GET("/services", api.ListServices)
		admin.POST("/services", api.CreateService)
		admin.GET("/services/:id", api.GetService)
		admin.PUT("/services/:id", api.UpdateService)
		admin.DELETE("/services/:id", api.DeleteService)

		admin.GET("/settings", api.GetSiteSettings)
		admin.PUT("/settings", api.UpdateSiteSettings)
	}

	return r, nil
}
