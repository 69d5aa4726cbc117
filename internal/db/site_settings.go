package db

import "time"

// SiteSettings 保存站点标题、Logo 与联系邮箱。
// 约定只存在一条记录，读取时以最早创建的一条为准。
type SiteSettings struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Logo         string    `gorm:"size:255" json:"logo"`
	ContactEmail string    `gorm:"size:254" json:"contactEmail"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName 自定义表名以保持命名一致。
func (SiteSettings) TableName() string {
	return "site_settings"
}
