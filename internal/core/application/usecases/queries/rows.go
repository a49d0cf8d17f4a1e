package queries

import (
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// menuItemRow is the column set shared by every query that renders a menu item.
type menuItemRow struct {
	MenuItemID    uuid.UUID
	MenuItemTitle string
	Price         decimal.Decimal
	CategoryID    uuid.UUID
	CategoryTitle string
}

const menuItemColumns = `
	mi.id       AS menu_item_id,
	mi.title    AS menu_item_title,
	mi.price    AS price,
	c.id        AS category_id,
	c.title     AS category_title`

func (r menuItemRow) toView() (MenuItemView, error) {
	id, err := kernel.UUIDFromBytes(r.MenuItemID[:])
	if err != nil {
		return MenuItemView{}, err
	}
	categoryID, err := kernel.UUIDFromBytes(r.CategoryID[:])
	if err != nil {
		return MenuItemView{}, err
	}
	price, err := kernel.NewMoney(r.Price)
	if err != nil {
		return MenuItemView{}, err
	}
	return MenuItemView{
		ID:       id,
		Title:    r.MenuItemTitle,
		Price:    price,
		Category: CategoryView{ID: categoryID, Title: r.CategoryTitle},
	}, nil
}
