package service

import (
	"errors"
	"strings"

	"github.com/sitecms/internal/db"
	"gorm.io/gorm"
)

// MenuInput carries the editable fields of a menu. A blank slug is derived from the name.
type MenuInput struct {
	Name string `json:"name" validate:"required,max=100"`
	Slug string `json:"slug" validate:"required,max=50,urlslug"`
}

// MenuItemInput carries the editable fields of a menu link.
// A nil Order means 0 on create and "unchanged" on update.
type MenuItemInput struct {
	Title string `json:"title" validate:"required,max=100"`
	URL   string `json:"url" validate:"required,max=200"`
	Order *int   `json:"order" validate:"omitempty,gte=0"`
}

// MenuService manages menus and their ordered links.
type MenuService struct {
	db *gorm.DB
}

// NewMenuService creates a MenuService instance.
func NewMenuService(gdb *gorm.DB) *MenuService {
	return &MenuService{db: gdb}
}

var menuSpec = groupSpec{
	kind:         KindMenu,
	newGroup:     func() interface{} { return &db.Menu{} },
	newItem:      func() interface{} { return &db.MenuItem{} },
	itemFK:       "menu_id",
	groupMissing: ErrMenuNotFound,
}

// List returns menus ordered by name.
func (s *MenuService) List() ([]db.Menu, error) {
	var menus []db.Menu
	if err := s.db.Order("name asc").Order("id asc").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

// Get loads a menu with its items in display order.
func (s *MenuService) Get(id uint) (*db.Menu, error) {
	var menu db.Menu
	err := s.db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order(itemOrder)
	}).First(&menu, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return &menu, nil
}

// Create inserts a new menu with a unique slug.
func (s *MenuService) Create(input MenuInput) (*db.Menu, error) {
	input.Name = strings.TrimSpace(input.Name)
	slug, err := resolveSlug(input.Slug, input.Name)
	if err != nil {
		return nil, err
	}
	input.Slug = slug
	if err := validateInput(input); err != nil {
		return nil, err
	}

	menu := db.Menu{Name: input.Name, Slug: input.Slug}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureSlugFree(tx, menuSpec, menu.Slug, 0); err != nil {
			return err
		}
		return tx.Create(&menu).Error
	})
	if err != nil {
		return nil, translateSlugError(err, KindMenu, menu.Slug)
	}
	return &menu, nil
}

// Update changes the display name. The slug is left alone; see RenameSlug.
func (s *MenuService) Update(id uint, name string) (*db.Menu, error) {
	menu, err := s.find(id)
	if err != nil {
		return nil, err
	}

	input := MenuInput{Name: strings.TrimSpace(name), Slug: menu.Slug}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	menu.Name = input.Name
	if err := s.db.Save(menu).Error; err != nil {
		return nil, err
	}
	return menu, nil
}

// RenameSlug changes the lookup key of a menu. Templates referring to the old
// slug stop resolving, so this is a separate administrative action.
func (s *MenuService) RenameSlug(id uint, slug string) (*db.Menu, error) {
	menu, err := s.find(id)
	if err != nil {
		return nil, err
	}

	input := MenuInput{Name: menu.Name, Slug: strings.TrimSpace(slug)}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.Slug == menu.Slug {
		return menu, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureSlugFree(tx, menuSpec, input.Slug, menu.ID); err != nil {
			return err
		}
		return tx.Model(menu).Update("slug", input.Slug).Error
	})
	if err != nil {
		return nil, translateSlugError(err, KindMenu, input.Slug)
	}
	menu.Slug = input.Slug
	return menu, nil
}

// Delete removes the menu together with all of its items.
func (s *MenuService) Delete(id uint) error {
	return deleteGroup(s.db, menuSpec, id)
}

// ListItems returns the items of a menu in display order.
func (s *MenuService) ListItems(menuID uint) ([]db.MenuItem, error) {
	if _, err := s.find(menuID); err != nil {
		return nil, err
	}
	var items []db.MenuItem
	if err := s.db.Where("menu_id = ?", menuID).Order(itemOrder).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem appends a link to a menu.
func (s *MenuService) CreateItem(menuID uint, input MenuItemInput) (*db.MenuItem, error) {
	input = trimMenuItem(input)
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if _, err := s.find(menuID); err != nil {
		return nil, err
	}

	item := db.MenuItem{MenuID: menuID, Title: input.Title, URL: input.URL}
	if input.Order != nil {
		item.Order = *input.Order
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem edits a link in place.
func (s *MenuService) UpdateItem(id uint, input MenuItemInput) (*db.MenuItem, error) {
	input = trimMenuItem(input)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var item db.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	item.Title = input.Title
	item.URL = input.URL
	if input.Order != nil {
		item.Order = *input.Order
	}
	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes a single link.
func (s *MenuService) DeleteItem(id uint) error {
	result := s.db.Delete(&db.MenuItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

// ReorderItems updates item order based on the provided ids sequence.
func (s *MenuService) ReorderItems(menuID uint, ids []uint) error {
	return reorderItems(s.db, menuSpec, menuID, ids)
}

func (s *MenuService) find(id uint) (*db.Menu, error) {
	var menu db.Menu
	if err := s.db.First(&menu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return &menu, nil
}

func trimMenuItem(input MenuItemInput) MenuItemInput {
	input.Title = strings.TrimSpace(input.Title)
	input.URL = strings.TrimSpace(input.URL)
	return input
}
