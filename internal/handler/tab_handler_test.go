package handler

import (
	"net/http"
	"testing"

	"github.com/sitecms/internal/db"
	"github.com/sitecms/internal/service"
)

func TestCreateTabItemSanitizesContent(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	tab, err := api.tabs.Create(service.TabInput{Title: "Features", Slug: "features"})
	if err != nil {
		t.Fatalf("failed to seed tab: %v", err)
	}

	payload := map[string]any{"title": "Fast", "content": `<p>quick<script>alert(1)</script></p>`}
	c, w := newJSONContext(http.MethodPost, "/admin/api/tabs/1/items", payload, idParam(tab.ID))
	api.CreateTabItem(c)
	expectStatus(t, w, http.StatusCreated)

	var resp struct {
		Item db.TabItem `json:"item"`
	}
	decodeBody(t, w, &resp)
	if resp.Item.Content != "<p>quick</p>" {
		t.Fatalf("expected sanitized content, got %q", resp.Item.Content)
	}
}

func TestCreateTabItemRejectsEmptyAfterSanitize(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	tab, _ := api.tabs.Create(service.TabInput{Title: "Features", Slug: "features"})

	payload := map[string]any{"title": "Bad", "content": `<script>alert(1)</script>`}
	c, w := newJSONContext(http.MethodPost, "/admin/api/tabs/1/items", payload, idParam(tab.ID))
	api.CreateTabItem(c)
	expectStatus(t, w, http.StatusBadRequest)
}

func TestDeleteTabCascades(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	tab, _ := api.tabs.Create(service.TabInput{Title: "Features", Slug: "features"})
	api.tabs.CreateItem(tab.ID, service.TabItemInput{Title: "One", Content: "<p>1</p>"})

	c, w := newJSONContext(http.MethodDelete, "/admin/api/tabs/1", nil, idParam(tab.ID))
	api.DeleteTab(c)
	expectStatus(t, w, http.StatusOK)

	var count int64
	api.DB().Model(&db.TabItem{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected tab items to be removed, got %d", count)
	}

	c, w = newJSONContext(http.MethodGet, "/admin/api/tabs/1/items", nil, idParam(tab.ID))
	api.ListTabItems(c)
	expectStatus(t, w, http.StatusNotFound)
}

func TestReorderTabItems(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	tab, _ := api.tabs.Create(service.TabInput{Title: "Features", Slug: "features"})
	a, _ := api.tabs.CreateItem(tab.ID, service.TabItemInput{Title: "a", Content: "<p>a</p>"})
	b, _ := api.tabs.CreateItem(tab.ID, service.TabItemInput{Title: "b", Content: "<p>b</p>"})

	c, w := newJSONContext(http.MethodPut, "/admin/api/tabs/1/reorder", map[string]any{"ids": []uint{b.ID, a.ID}}, idParam(tab.ID))
	api.ReorderTabItems(c)
	expectStatus(t, w, http.StatusOK)

	items, err := api.tabs.ListItems(tab.ID)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if items[0].ID != b.ID || items[1].ID != a.ID {
		t.Fatalf("unexpected order: %+v", items)
	}
}
