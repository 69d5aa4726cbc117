package service

import (
	"errors"
	"fmt"

	"github.com/sitecms/internal/db"
	"github.com/sitecms/internal/logger"
	"github.com/sitecms/internal/sanitize"
	"gorm.io/gorm"
)

type seedGroup struct {
	name  string
	slug  string
	items []MenuItemInput
}

var demoMenus = []seedGroup{
	{name: "Main", slug: "main", items: []MenuItemInput{
		{Title: "Home", URL: "/"},
		{Title: "Services", URL: "#services"},
		{Title: "Contacts", URL: "#contacts"},
	}},
	{name: "Footer", slug: "footer", items: []MenuItemInput{
		{Title: "Privacy", URL: "/privacy"},
	}},
}

var demoTabs = []TabItemInput{
	{Title: "Design", Format: ContentFormatMarkdown, Content: "We build **clean**, fast interfaces."},
	{Title: "Development", Format: ContentFormatMarkdown, Content: "Go services, tested and observable."},
	{Title: "Support", Content: "<p>Help is one <a href=\"#contacts\">message</a> away.</p>"},
}

var demoServices = []ServiceInput{
	{Title: "Web design", Description: "Landing pages and corporate sites."},
	{Title: "Backend", Description: "APIs and integrations."},
	{Title: "Hosting", Description: "Deployment and monitoring."},
}

// SeedDemo fills an empty database with demo content. Existing records are
// left untouched, so running it twice is harmless.
func SeedDemo(gdb *gorm.DB, sanitizer *sanitize.Sanitizer) error {
	menus := NewMenuService(gdb)
	for _, group := range demoMenus {
		var existing db.Menu
		err := gdb.Where("slug = ?", group.slug).Take(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		menu, err := menus.Create(MenuInput{Name: group.name, Slug: group.slug})
		if err != nil {
			return fmt.Errorf("seed menu %s: %w", group.slug, err)
		}
		for j, item := range group.items {
			order := j
			item.Order = &order
			if _, err := menus.CreateItem(menu.ID, item); err != nil {
				return fmt.Errorf("seed menu item %s/%q: %w", group.slug, item.Title, err)
			}
		}
		logger.Info().Str("slug", group.slug).Int("items", len(group.items)).Msg("seeded menu")
	}

	tabs := NewTabService(gdb, sanitizer)
	var tab db.Tab
	err := gdb.Where("slug = ?", "features").Take(&tab).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		created, err := tabs.Create(TabInput{Title: "Features", Slug: "features"})
		if err != nil {
			return fmt.Errorf("seed tabs: %w", err)
		}
		for j, pane := range demoTabs {
			order := j
			pane.Order = &order
			if _, err := tabs.CreateItem(created.ID, pane); err != nil {
				return fmt.Errorf("seed tab pane %q: %w", pane.Title, err)
			}
		}
		logger.Info().Str("slug", created.Slug).Int("items", len(demoTabs)).Msg("seeded tabs")
	case err != nil:
		return err
	}

	var serviceCount int64
	if err := gdb.Model(&db.Service{}).Count(&serviceCount).Error; err != nil {
		return err
	}
	if serviceCount == 0 {
		catalog := NewCatalogService(gdb)
		for _, input := range demoServices {
			if _, err := catalog.Create(input); err != nil {
				return fmt.Errorf("seed service %q: %w", input.Title, err)
			}
		}
		logger.Info().Int("count", len(demoServices)).Msg("seeded services")
	}

	settings := NewSiteSettingsService(gdb)
	current, err := settings.Get()
	if err != nil {
		return err
	}
	if current == nil {
		if _, err := settings.Save(SiteSettingsInput{Title: "Demo site", ContactEmail: "hello@example.com"}); err != nil {
			return fmt.Errorf("seed settings: %w", err)
		}
		logger.Info().Msg("seeded site settings")
	}

	return nil
}
