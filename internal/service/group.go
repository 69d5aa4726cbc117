package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sitecms/internal/metrics"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Kind names a family of content groups. Slugs are unique within one kind.
type Kind string

const (
	KindMenu Kind = "menu"
	KindTab  Kind = "tabs"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindMenu || k == KindTab
}

// ParseKind accepts the kind names used in URLs ("menu", "menus", "tab", "tabs").
func ParseKind(raw string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "menu", "menus":
		return KindMenu, true
	case "tab", "tabs":
		return KindTab, true
	}
	return "", false
}

// itemOrder is the display order of items inside a group.
const itemOrder = "sort_order asc, title asc, id asc"

// groupSpec describes the tables behind one kind so reorder and cascade
// delete are written once.
type groupSpec struct {
	kind         Kind
	newGroup     func() interface{}
	newItem      func() interface{}
	itemFK       string
	groupMissing error
}

func lockGroup(tx *gorm.DB, spec groupSpec, groupID uint) error {
	group := spec.newGroup()
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(group, groupID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return spec.groupMissing
	}
	if err != nil {
		return err
	}
	// engines without row locks take the write lock here
	return tx.Model(group).UpdateColumn("updated_at", time.Now()).Error
}

func checkOrderIDs(ids []uint) error {
	if len(ids) == 0 {
		return invalid("ids", "must list at least one item")
	}
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			return invalid("ids", "contains an invalid id")
		}
		if _, ok := seen[id]; ok {
			return invalid("ids", "contains item %d more than once", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// reorderItems assigns each listed item its position in ids. Items of the
// group that are not listed keep their order value.
func reorderItems(gdb *gorm.DB, spec groupSpec, groupID uint, ids []uint) error {
	if err := checkOrderIDs(ids); err != nil {
		return err
	}

	err := gdb.Transaction(func(tx *gorm.DB) error {
		if err := lockGroup(tx, spec, groupID); err != nil {
			return err
		}

		var owners []struct {
			ID      uint
			GroupID uint
		}
		if err := tx.Model(spec.newItem()).
			Select("id, " + spec.itemFK + " AS group_id").
			Where("id IN ?", ids).
			Scan(&owners).Error; err != nil {
			return err
		}

		ownerOf := make(map[uint]uint, len(owners))
		for _, row := range owners {
			ownerOf[row.ID] = row.GroupID
		}
		for _, id := range ids {
			owner, ok := ownerOf[id]
			if !ok {
				return invalid("ids", "item %d does not exist", id)
			}
			if owner != groupID {
				return invalid("ids", "item %d belongs to another %s", id, spec.kind)
			}
		}

		for idx, id := range ids {
			if err := tx.Model(spec.newItem()).Where("id = ?", id).Update("sort_order", idx).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.Reorders.WithLabelValues(string(spec.kind)).Inc()
	return nil
}

// deleteGroup removes the group and all of its items in one transaction.
func deleteGroup(gdb *gorm.DB, spec groupSpec, groupID uint) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		if err := lockGroup(tx, spec, groupID); err != nil {
			return err
		}
		if err := tx.Where(spec.itemFK+" = ?", groupID).Delete(spec.newItem()).Error; err != nil {
			return fmt.Errorf("delete %s items: %w", spec.kind, err)
		}
		if err := tx.Delete(spec.newGroup(), groupID).Error; err != nil {
			return fmt.Errorf("delete %s: %w", spec.kind, err)
		}
		return nil
	})
}

// ensureSlugFree returns a ConflictError when another group of the kind owns slug.
// excludeID skips the group being renamed.
func ensureSlugFree(tx *gorm.DB, spec groupSpec, slug string, excludeID uint) error {
	var count int64
	query := tx.Model(spec.newGroup()).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &ConflictError{Kind: spec.kind, Slug: slug}
	}
	return nil
}

// translateSlugError maps a unique index violation raced past ensureSlugFree.
func translateSlugError(err error, kind Kind, slug string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConflictError{Kind: kind, Slug: slug}
	}
	return err
}
