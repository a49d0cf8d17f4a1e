// Package cartrepo stores carts as rows of cart_lines keyed by owner.
package cartrepo

import (
	"restaurant/internal/adapters/out/postgres/catalogrepo"
	"restaurant/internal/adapters/out/postgres/principalrepo"
	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartLineDTO is one row of a cart. An owner has at most one row per menu item.
type CartLineDTO struct {
	ID         uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID                  `gorm:"type:uuid;not null;uniqueIndex:idx_cart_lines_owner_item,priority:1"`
	MenuItemID uuid.UUID                  `gorm:"type:uuid;not null;uniqueIndex:idx_cart_lines_owner_item,priority:2"`
	Quantity   int                        `gorm:"not null"`
	Owner      principalrepo.PrincipalDTO `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	MenuItem   catalogrepo.MenuItemDTO    `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
}

func (CartLineDTO) TableName() string {
	return "cart_lines"
}

func fromDomain(c *cart.Cart) []CartLineDTO {
	owner := c.OwnerID().Bytes()
	lines := c.Lines()

	dtos := make([]CartLineDTO, 0, len(lines))
	for _, l := range lines {
		dtos = append(dtos, CartLineDTO{
			ID:         l.ID().Bytes(),
			OwnerID:    owner,
			MenuItemID: l.MenuItemID().Bytes(),
			Quantity:   l.Quantity(),
		})
	}
	return dtos
}

func toDomain(ownerID kernel.UUID, dtos []CartLineDTO) (*cart.Cart, error) {
	lines := make([]*cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
		if err != nil {
			return nil, err
		}

		line, err := cart.NewLine(id, menuItemID, dto.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(ownerID, lines)
}
