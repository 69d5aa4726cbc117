package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sitecms/internal/db"
	"github.com/sitecms/internal/metrics"
	"github.com/sitecms/internal/sanitize"
	"gorm.io/gorm"
)

const (
	ContentFormatHTML     = "html"
	ContentFormatMarkdown = "markdown"
)

// TabInput carries the editable fields of a tab group. A blank slug is derived from the title.
type TabInput struct {
	Title string `json:"title" validate:"required,max=100"`
	Slug  string `json:"slug" validate:"required,max=50,urlslug"`
}

// TabItemInput carries one pane. Content is rich text in Format ("html" by default).
type TabItemInput struct {
	Title   string `json:"title" validate:"required,max=50"`
	Content string `json:"content" validate:"required"`
	Format  string `json:"format" validate:"omitempty,oneof=html markdown"`
	Order   *int   `json:"order" validate:"omitempty,gte=0"`
}

// TabService manages tab groups and their panes. Pane content is sanitized
// on every write.
type TabService struct {
	db        *gorm.DB
	sanitizer *sanitize.Sanitizer
}

// NewTabService creates a TabService instance.
func NewTabService(gdb *gorm.DB, sanitizer *sanitize.Sanitizer) *TabService {
	return &TabService{db: gdb, sanitizer: sanitizer}
}

var tabSpec = groupSpec{
	kind:         KindTab,
	newGroup:     func() interface{} { return &db.Tab{} },
	newItem:      func() interface{} { return &db.TabItem{} },
	itemFK:       "tab_id",
	groupMissing: ErrTabNotFound,
}

// List returns tab groups ordered by title.
func (s *TabService) List() ([]db.Tab, error) {
	var tabs []db.Tab
	if err := s.db.Order("title asc").Order("id asc").Find(&tabs).Error; err != nil {
		return nil, err
	}
	return tabs, nil
}

// Get loads a tab group with its panes in display order.
func (s *TabService) Get(id uint) (*db.Tab, error) {
	var tab db.Tab
	err := s.db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order(itemOrder)
	}).First(&tab, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTabNotFound
		}
		return nil, err
	}
	return &tab, nil
}

// Create inserts a new tab group with a unique slug.
func (s *TabService) Create(input TabInput) (*db.Tab, error) {
	input.Title = strings.TrimSpace(input.Title)
	slug, err := resolveSlug(input.Slug, input.Title)
	if err != nil {
		return nil, err
	}
	input.Slug = slug
	if err := validateInput(input); err != nil {
		return nil, err
	}

	tab := db.Tab{Title: input.Title, Slug: input.Slug}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureSlugFree(tx, tabSpec, tab.Slug, 0); err != nil {
			return err
		}
		return tx.Create(&tab).Error
	})
	if err != nil {
		return nil, translateSlugError(err, KindTab, tab.Slug)
	}
	return &tab, nil
}

// Update changes the display title. The slug is left alone; see RenameSlug.
func (s *TabService) Update(id uint, title string) (*db.Tab, error) {
	tab, err := s.find(id)
	if err != nil {
		return nil, err
	}

	input := TabInput{Title: strings.TrimSpace(title), Slug: tab.Slug}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	tab.Title = input.Title
	if err := s.db.Save(tab).Error; err != nil {
		return nil, err
	}
	return tab, nil
}

// RenameSlug changes the lookup key of a tab group.
func (s *TabService) RenameSlug(id uint, slug string) (*db.Tab, error) {
	tab, err := s.find(id)
	if err != nil {
		return nil, err
	}

	input := TabInput{Title: tab.Title, Slug: strings.TrimSpace(slug)}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.Slug == tab.Slug {
		return tab, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureSlugFree(tx, tabSpec, input.Slug, tab.ID); err != nil {
			return err
		}
		return tx.Model(tab).Update("slug", input.Slug).Error
	})
	if err != nil {
		return nil, translateSlugError(err, KindTab, input.Slug)
	}
	tab.Slug = input.Slug
	return tab, nil
}

// Delete removes the tab group together with all of its panes.
func (s *TabService) Delete(id uint) error {
	return deleteGroup(s.db, tabSpec, id)
}

// ListItems returns the panes of a group in display order.
func (s *TabService) ListItems(tabID uint) ([]db.TabItem, error) {
	if _, err := s.find(tabID); err != nil {
		return nil, err
	}
	var items []db.TabItem
	if err := s.db.Where("tab_id = ?", tabID).Order(itemOrder).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem adds a pane to a tab group.
func (s *TabService) CreateItem(tabID uint, input TabItemInput) (*db.TabItem, error) {
	content, err := s.prepareItem(&input)
	if err != nil {
		return nil, err
	}
	if _, err := s.find(tabID); err != nil {
		return nil, err
	}

	item := db.TabItem{TabID: tabID, Title: input.Title, Content: content}
	if input.Order != nil {
		item.Order = *input.Order
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem edits a pane in place.
func (s *TabService) UpdateItem(id uint, input TabItemInput) (*db.TabItem, error) {
	var item db.TabItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTabItemNotFound
		}
		return nil, err
	}

	content, err := s.prepareItem(&input)
	if err != nil {
		return nil, err
	}

	item.Title = input.Title
	item.Content = content
	if input.Order != nil {
		item.Order = *input.Order
	}
	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes a single pane.
func (s *TabService) DeleteItem(id uint) error {
	result := s.db.Delete(&db.TabItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTabItemNotFound
	}
	return nil
}

// ReorderItems updates pane order based on the provided ids sequence.
func (s *TabService) ReorderItems(tabID uint, ids []uint) error {
	return reorderItems(s.db, tabSpec, tabID, ids)
}

// prepareItem validates the input and returns the sanitized HTML to persist.
func (s *TabService) prepareItem(input *TabItemInput) (string, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Format = strings.ToLower(strings.TrimSpace(input.Format))
	if err := validateInput(*input); err != nil {
		return "", err
	}

	raw := input.Content
	if input.Format == ContentFormatMarkdown {
		rendered, err := sanitize.RenderMarkdown(raw)
		if err != nil {
			return "", fmt.Errorf("render markdown: %w", err)
		}
		raw = rendered
	}

	cleaned := strings.TrimSpace(s.sanitizer.Clean(raw))
	metrics.SanitizedWrites.Inc()
	if cleaned == "" {
		return "", invalid("content", "is empty after sanitization")
	}
	return cleaned, nil
}

func (s *TabService) find(id uint) (*db.Tab, error) {
	var tab db.Tab
	if err := s.db.First(&tab, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTabNotFound
		}
		return nil, err
	}
	return &tab, nil
}
