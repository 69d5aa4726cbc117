package service

import (
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/sitecms/internal/db"
	"github.com/sitecms/internal/metrics"
	"gorm.io/gorm"
)

// GroupView is the read-side projection of a menu or tab group.
type GroupView struct {
	ID   uint
	Name string
	Slug string
}

// ItemView is one ordered child of a group. URL is set for menu links,
// Content for tab panes (already sanitized when it was written).
type ItemView struct {
	ID      uint
	Title   string
	URL     string
	Content template.HTML
	Order   int
}

// ResolvedGroup is the result of a lookup. Group is nil when the slug does not
// exist; absence is a normal state, not an error.
type ResolvedGroup struct {
	Kind  Kind
	Slug  string
	Group *GroupView
	Items []ItemView
}

// Found reports whether the slug matched a group.
func (r ResolvedGroup) Found() bool {
	return r.Group != nil
}

// Resolver serves the read path used by templates.
type Resolver struct {
	db *gorm.DB
}

// NewResolver creates a Resolver.
func NewResolver(gdb *gorm.DB) *Resolver {
	return &Resolver{db: gdb}
}

// Resolve fetches a group and its ordered children from one read transaction.
// A missing slug yields an empty, not-found ResolvedGroup and a nil error;
// errors are reserved for unknown kinds and database failures.
func (r *Resolver) Resolve(kind Kind, slug string) (ResolvedGroup, error) {
	resolved := ResolvedGroup{Kind: kind, Slug: strings.TrimSpace(slug), Items: []ItemView{}}
	if !kind.Valid() {
		return resolved, fmt.Errorf("unknown content kind %q", kind)
	}
	if resolved.Slug == "" {
		metrics.ResolverLookups.WithLabelValues(string(kind), metrics.ResultMiss).Inc()
		return resolved, nil
	}

	var err error
	switch kind {
	case KindMenu:
		err = r.resolveMenu(&resolved)
	case KindTab:
		err = r.resolveTab(&resolved)
	}

	switch {
	case err != nil:
		metrics.ResolverLookups.WithLabelValues(string(kind), metrics.ResultError).Inc()
		return resolved, fmt.Errorf("resolve %s %q: %w", kind, resolved.Slug, err)
	case resolved.Found():
		metrics.ResolverLookups.WithLabelValues(string(kind), metrics.ResultHit).Inc()
	default:
		metrics.ResolverLookups.WithLabelValues(string(kind), metrics.ResultMiss).Inc()
	}
	return resolved, nil
}

func (r *Resolver) resolveMenu(out *ResolvedGroup) error {
	var menu db.Menu
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Preload("Items", func(q *gorm.DB) *gorm.DB {
			return q.Order(itemOrder)
		}).Where("slug = ?", out.Slug).Take(&menu).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	out.Group = &GroupView{ID: menu.ID, Name: menu.Name, Slug: menu.Slug}
	out.Items = make([]ItemView, 0, len(menu.Items))
	for _, item := range menu.Items {
		out.Items = append(out.Items, ItemView{
			ID:    item.ID,
			Title: item.Title,
			URL:   item.URL,
			Order: item.Order,
		})
	}
	return nil
}

func (r *Resolver) resolveTab(out *ResolvedGroup) error {
	var tab db.Tab
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Preload("Items", func(q *gorm.DB) *gorm.DB {
			return q.Order(itemOrder)
		}).Where("slug = ?", out.Slug).Take(&tab).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	out.Group = &GroupView{ID: tab.ID, Name: tab.Title, Slug: tab.Slug}
	out.Items = make([]ItemView, 0, len(tab.Items))
	for _, item := range tab.Items {
		out.Items = append(out.Items, ItemView{
			ID:      item.ID,
			Title:   item.Title,
			Content: template.HTML(item.Content),
			Order:   item.Order,
		})
	}
	return nil
}

// ResolveSettings returns the earliest created settings record, or nil when none exists.
func (r *Resolver) ResolveSettings() (*db.SiteSettings, error) {
	return firstSettings(r.db)
}

// ResolveServices returns all services in insertion order.
func (r *Resolver) ResolveServices() ([]db.Service, error) {
	var services []db.Service
	if err := r.db.Order("id asc").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}
