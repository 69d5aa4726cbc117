package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sitecms/internal/db"
	"gorm.io/gorm"
)

// SiteSettingsInput 用于更新站点设置。
type SiteSettingsInput struct {
	Title        string `json:"title" validate:"required,max=200"`
	Logo         string `json:"logo" validate:"max=255"`
	ContactEmail string `json:"contactEmail" validate:"required,email,max=254"`
}

// SiteSettingsService 提供站点设置的读取与更新能力。
// 表中理论上只有一条记录；若因历史原因存在多条，始终以最早创建的一条为准。
type SiteSettingsService struct {
	db *gorm.DB
}

// NewSiteSettingsService 构造 SiteSettingsService。
func NewSiteSettingsService(gdb *gorm.DB) *SiteSettingsService {
	return &SiteSettingsService{db: gdb}
}

// Get 返回最早创建的设置记录，不存在时返回 nil 且不报错。
func (s *SiteSettingsService) Get() (*db.SiteSettings, error) {
	return firstSettings(s.db)
}

// Save 更新当前生效的设置记录，不存在时创建，永远不会新增第二条。
func (s *SiteSettingsService) Save(input SiteSettingsInput) (*db.SiteSettings, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Logo = strings.TrimSpace(input.Logo)
	input.ContactEmail = strings.TrimSpace(input.ContactEmail)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var saved db.SiteSettings
	err := s.db.Transaction(func(tx *gorm.DB) error {
		current, err := firstSettings(tx)
		if err != nil {
			return err
		}
		if current == nil {
			saved = db.SiteSettings{Title: input.Title, Logo: input.Logo, ContactEmail: input.ContactEmail}
			return tx.Create(&saved).Error
		}

		current.Title = input.Title
		current.Logo = input.Logo
		current.ContactEmail = input.ContactEmail
		if err := tx.Save(current).Error; err != nil {
			return err
		}
		saved = *current
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save site settings: %w", err)
	}
	return &saved, nil
}

func firstSettings(tx *gorm.DB) (*db.SiteSettings, error) {
	var settings db.SiteSettings
	err := tx.Order("created_at asc").Order("id asc").Take(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load site settings: %w", err)
	}
	return &settings, nil
}
