package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitecms/internal/service"
)

// ListMenus 获取菜单列表
func (a *API) ListMenus(c *gin.Context) {
	menus, err := a.menus.List()
	if err != nil {
		respondServiceError(c, err, "菜单不存在", "获取菜单列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

// GetMenu 获取菜单及其菜单项
func (a *API) GetMenu(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的菜单ID")
		return
	}

	menu, err := a.menus.Get(id)
	if err != nil {
		respondServiceError(c, err, "菜单不存在", "获取菜单失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": menu})
}

// CreateMenu 创建菜单，未提供 slug 时根据名称生成
func (a *API) CreateMenu(c *gin.Context) {
	var req service.MenuInput
	if !bindJSON(c, &req, "菜单数据格式不正确") {
		return
	}

	menu, err := a.menus.Create(req)
	if err != nil {
		respondServiceError(c, err, "菜单不存在", "创建菜单失败")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "菜单创建成功", "menu": menu})
}

// UpdateMenu 更新菜单名称
func (a *API) UpdateMenu(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的菜单ID")
		return
	}

	var req service.MenuInput
	if !bindJSON(c, &req, "菜单数据格式不正确") {
		return
	}

	menu, err := a.menus.Update(id, req.Name)
	if err != nil {
		respondServiceError(c, err, "菜单不存在", "更新菜单失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "菜单更新成功", "menu": menu})
}

// RenameMenuSlug 修改菜单 slug，模板中引用旧 slug 的位置将不再显示
func (a *API) RenameMenuSlug(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的菜单ID")
		return
	}

	var req slugRequest
	if !bindJSON(c, &req, "slug 格式不正确") {
		return
	}

	menu, err := a.menus.RenameSlug(id, req.Slug)
	if err != nil {
		respondServiceError(c, err, "菜单不存在", "修改 slug 失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "slug 已更新", "menu": menu})
}

// DeleteMenu 删除菜单及其全部菜单项
func (a *API) DeleteMenu(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的菜单ID")
		return
	}

	if err := a.menus.Delete(id); err != nil {
		respondServiceError(c, err, "菜单不存在", "删除菜单失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "菜单删除成功"})
}

// ListMenuItems 获取菜单项（按显示顺序）
func (a *API) ListMenuItems(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的菜单ID")
		return
	}

	items, err := a.menus.ListItems(id)
	if err != nil {
		respondServiceError(c, err, "菜单不存在", "获取菜单项失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateMenuItem 新增菜单项
func (a *API) CreateMenuItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的菜单ID")
		return
	}

	var req service.MenuItemInput
	if !bindJSON(c, &req, "菜单项数据格式不正确") {
		return
	}

	item, err := a.menus.CreateItem(id, req)
	if err != nil {
		respondServiceError(c, err, "菜单不存在", "创建菜单项失败")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "菜单项创建成功", "item": item})
}

// UpdateMenuItem 更新菜单项
func (a *API) UpdateMenuItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的菜单项ID")
		return
	}

	var req service.MenuItemInput
	if !bindJSON(c, &req, "菜单项数据格式不正确") {
		return
	}

	item, err := a.menus.UpdateItem(id, req)
	if err != nil {
		respondServiceError(c, err, "菜单项不存在", "更新菜单项失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "菜单项更新成功", "item": item})
}

// DeleteMenuItem 删除菜单项
func (a *API) DeleteMenuItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的菜单项ID")
		return
	}

	if err := a.menus.DeleteItem(id); err != nil {
		respondServiceError(c, err, "菜单项不存在", "删除菜单项失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "菜单项删除成功"})
}

// ReorderMenuItems 按拖拽后的顺序更新菜单项排序
func (a *API) ReorderMenuItems(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的菜单ID")
		return
	}

	var req reorderRequest
	if !bindJSON(c, &req, "排序数据格式不正确") {
		return
	}

	if err := a.menus.ReorderItems(id, req.IDs); err != nil {
		respondServiceError(c, err, "菜单不存在", "更新排序失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "排序已更新"})
}
