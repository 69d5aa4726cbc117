package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitecms/internal/service"
)

// ListTabs 获取选项卡分组列表
func (a *API) ListTabs(c *gin.Context) {
	tabs, err := a.tabs.List()
	if err != nil {
		respondServiceError(c, err, "选项卡不存在", "获取选项卡列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tabs": tabs})
}

// GetTab 获取选项卡分组及其内容页
func (a *API) GetTab(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的选项卡ID")
		return
	}

	tab, err := a.tabs.Get(id)
	if err != nil {
		respondServiceError(c, err, "选项卡不存在", "获取选项卡失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tab": tab})
}

// CreateTab 创建选项卡分组
func (a *API) CreateTab(c *gin.Context) {
	var req service.TabInput
	if !bindJSON(c, &req, "选项卡数据格式不正确") {
		return
	}

	tab, err := a.tabs.Create(req)
	if err != nil {
		respondServiceError(c, err, "选项卡不存在", "创建选项卡失败")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "选项卡创建成功", "tab": tab})
}

// UpdateTab 更新选项卡标题
func (a *API) UpdateTab(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的选项卡ID")
		return
	}

	var req service.TabInput
	if !bindJSON(c, &req, "选项卡数据格式不正确") {
		return
	}

	tab, err := a.tabs.Update(id, req.Title)
	if err != nil {
		respondServiceError(c, err, "选项卡不存在", "更新选项卡失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "选项卡更新成功", "tab": tab})
}

// RenameTabSlug 修改选项卡 slug
func (a *API) RenameTabSlug(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的选项卡ID")
		return
	}

	var req slugRequest
	if !bindJSON(c, &req, "slug 格式不正确") {
		return
	}

	tab, err := a.tabs.RenameSlug(id, req.Slug)
	if err != nil {
		respondServiceError(c, err, "选项卡不存在", "修改 slug 失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "slug 已更新", "tab": tab})
}

// DeleteTab 删除选项卡分组及全部内容页
func (a *API) DeleteTab(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的选项卡ID")
		return
	}

	if err := a.tabs.Delete(id); err != nil {
		respondServiceError(c, err, "选项卡不存在", "删除选项卡失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "选项卡删除成功"})
}

// ListTabItems 获取内容页（按显示顺序）
func (a *API) ListTabItems(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的选项卡ID")
		return
	}

	items, err := a.tabs.ListItems(id)
	if err != nil {
		respondServiceError(c, err, "选项卡不存在", "获取内容页失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateTabItem 新增内容页，内容在保存前经过清洗
func (a *API) CreateTabItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的选项卡ID")
		return
	}

	var req service.TabItemInput
	if !bindJSON(c, &req, "内容页数据格式不正确") {
		return
	}

	item, err := a.tabs.CreateItem(id, req)
	if err != nil {
		respondServiceError(c, err, "选项卡不存在", "创建内容页失败")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "内容页创建成功", "item": item})
}

// UpdateTabItem 更新内容页
func (a *API) UpdateTabItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的内容页ID")
		return
	}

	var req service.TabItemInput
	if !bindJSON(c, &req, "内容页数据格式不正确") {
		return
	}

	item, err := a.tabs.UpdateItem(id, req)
	if err != nil {
		respondServiceError(c, err, "内容页不存在", "更新内容页失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "内容页更新成功", "item": item})
}

// DeleteTabItem 删除内容页
func (a *API) DeleteTabItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的内容页ID")
		return
	}

	if err := a.tabs.DeleteItem(id); err != nil {
		respondServiceError(c, err, "内容页不存在", "删除内容页失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "内容页删除成功"})
}

// ReorderTabItems 更新内容页排序
func (a *API) ReorderTabItems(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的选项卡ID")
		return
	}

	var req reorderRequest
	if !bindJSON(c, &req, "排序数据格式不正确") {
		return
	}

	if err := a.tabs.ReorderItems(id, req.IDs); err != nil {
		respondServiceError(c, err, "选项卡不存在", "更新排序失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "排序已更新"})
}
