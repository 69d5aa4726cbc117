package db

import "time"

// Tab groups a set of tab panes under one slug.
type Tab struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Slug      string    `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Items     []TabItem `gorm:"foreignKey:TabID;constraint:OnDelete:CASCADE;" json:"items,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TabItem holds one pane. Content is stored already sanitized.
type TabItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TabID     uint      `gorm:"index;not null" json:"tabId"`
	Title     string    `gorm:"size:50;not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Order     int       `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
