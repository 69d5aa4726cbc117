package handler

import (
	"net/http"
	"testing"

	"github.com/sitecms/internal/db"
)

func TestSiteSettingsRoundTrip(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	c, w := newJSONContext(http.MethodGet, "/admin/api/settings", nil)
	api.GetSiteSettings(c)
	expectStatus(t, w, http.StatusOK)
	if w.Body.String() != `{"settings":null}` {
		t.Fatalf("expected null settings, got %s", w.Body.String())
	}

	for _, title := range []string{"First", "Second"} {
		c, w = newJSONContext(http.MethodPut, "/admin/api/settings", map[string]any{"title": title, "contactEmail": "info@example.com"})
		api.UpdateSiteSettings(c)
		expectStatus(t, w, http.StatusOK)
	}

	var count int64
	api.DB().Model(&db.SiteSettings{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected a single settings row, got %d", count)
	}

	c, w = newJSONContext(http.MethodGet, "/admin/api/settings", nil)
	api.GetSiteSettings(c)
	var resp struct {
		Settings db.SiteSettings `json:"settings"`
	}
	decodeBody(t, w, &resp)
	if resp.Settings.Title != "Second" {
		t.Fatalf("expected latest saved title, got %q", resp.Settings.Title)
	}
}

func TestUpdateSiteSettingsInvalidEmail(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	c, w := newJSONContext(http.MethodPut, "/admin/api/settings", map[string]any{"title": "Site", "contactEmail": "nope"})
	api.UpdateSiteSettings(c)
	expectStatus(t, w, http.StatusBadRequest)
}
