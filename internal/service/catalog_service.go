package service

import (
	"errors"
	"strings"

	"github.com/sitecms/internal/db"
	"gorm.io/gorm"
)

// ServiceInput carries the fields of one entry in the services block.
// Icon is a reference to an already stored image and may be empty.
type ServiceInput struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon" validate:"max=255"`
}

// CatalogService manages the services shown on the home page.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a CatalogService instance.
func NewCatalogService(gdb *gorm.DB) *CatalogService {
	return &CatalogService{db: gdb}
}

// List returns services in insertion order.
func (s *CatalogService) List() ([]db.Service, error) {
	var services []db.Service
	if err := s.db.Order("id asc").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// Get fetches one service.
func (s *CatalogService) Get(id uint) (*db.Service, error) {
	var svc db.Service
	if err := s.db.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}

// Create inserts a service.
func (s *CatalogService) Create(input ServiceInput) (*db.Service, error) {
	input = trimService(input)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	svc := db.Service{Title: input.Title, Description: input.Description, Icon: input.Icon}
	if err := s.db.Create(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// Update replaces the editable fields of a service.
func (s *CatalogService) Update(id uint, input ServiceInput) (*db.Service, error) {
	input = trimService(input)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	svc, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	svc.Title = input.Title
	svc.Description = input.Description
	svc.Icon = input.Icon
	if err := s.db.Save(svc).Error; err != nil {
		return nil, err
	}
	return svc, nil
}

// Delete removes a service.
func (s *CatalogService) Delete(id uint) error {
	result := s.db.Delete(&db.Service{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func trimService(input ServiceInput) ServiceInput {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Icon = strings.TrimSpace(input.Icon)
	return input
}
