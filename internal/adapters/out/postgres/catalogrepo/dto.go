// Package catalogrepo maps categories and menu items to their tables.
package catalogrepo

import (
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoryDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string    `gorm:"type:varchar(255);not null;index"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

// MenuItemDTO references its category; removing the category removes the item.
type MenuItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title      string          `gorm:"type:varchar(255);not null;index"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null;index"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category   CategoryDTO     `gorm:"constraint:OnDelete:CASCADE"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func categoryFromDomain(c *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:    c.ID().Bytes(),
		Title: c.Title(),
	}
}

func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewCategory(id, dto.Title)
}

func menuItemFromDomain(m *catalog.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:         m.ID().Bytes(),
		Title:      m.Title(),
		Price:      m.Price().Decimal(),
		CategoryID: m.CategoryID().Bytes(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.NewMenuItem(id, dto.Title, price, categoryID)
}
