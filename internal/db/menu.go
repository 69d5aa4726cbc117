package db

import "time"

// Menu 表示站点导航菜单，通过 Slug 在模板中查找。
type Menu struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:100;not null" json:"name"`
	Slug      string     `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Items     []MenuItem `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE;" json:"items,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// MenuItem 是菜单中的一个链接，按 Order、Title、ID 排序。
type MenuItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MenuID    uint      `gorm:"index;not null" json:"menuId"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	URL       string    `gorm:"size:200;not null" json:"url"`
	Order     int       `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
