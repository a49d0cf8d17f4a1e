package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrListCartLinesQueryIsNotConstructed = errors.New(
	"ListCartLinesQuery must be created via NewListCartLinesQuery constructor",
)

// ListCartLinesQuery returns the caller's own cart. There is no way to read
// another principal's cart.
type ListCartLinesQuery struct {
	caller identity.Caller

	guard guard.ConstructorGuard
}

func NewListCartLinesQuery(caller identity.Caller) (ListCartLinesQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListCartLinesQuery{}, err
	}
	return ListCartLinesQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCartLinesQuery) Validate() error {
	return q.guard.Validate(ErrListCartLinesQueryIsNotConstructed)
}

type ListCartLinesQueryHandler struct {
	db *gorm.DB
}

func NewListCartLinesQueryHandler(db *gorm.DB) ListCartLinesQueryHandler {
	return ListCartLinesQueryHandler{db: db}
}

type cartLineRow struct {
	ID       uuid.UUID
	Owner    string
	Quantity int

	MenuItemID    uuid.UUID
	MenuItemTitle string
	Price         decimal.Decimal
	CategoryID    uuid.UUID
	CategoryTitle string
}

func (r cartLineRow) menuItem() menuItemRow {
	return menuItemRow{
		MenuItemID:    r.MenuItemID,
		MenuItemTitle: r.MenuItemTitle,
		Price:         r.Price,
		CategoryID:    r.CategoryID,
		CategoryTitle: r.CategoryTitle,
	}
}

func (h ListCartLinesQueryHandler) Handle(ctx context.Context, query ListCartLinesQuery) ([]CartLineView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []cartLineRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT
			cl.id       AS id,
			p.username  AS owner,
			cl.quantity AS quantity,`+menuItemColumns+`
		FROM cart_lines cl
		JOIN principals p  ON p.id = cl.owner_id
		JOIN menu_items mi ON mi.id = cl.menu_item_id
		JOIN categories c  ON c.id = mi.category_id
		WHERE cl.owner_id = ?
		ORDER BY mi.title, cl.id
	`, query.caller.ID().Bytes()).Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]CartLineView, 0, len(rows))
	for _, r := range rows {
		id, err := kernel.UUIDFromBytes(r.ID[:])
		if err != nil {
			return nil, err
		}
		item, err := r.menuItem().toView()
		if err != nil {
			return nil, err
		}
		views = append(views, CartLineView{
			ID:        id,
			Owner:     r.Owner,
			MenuItem:  item,
			Quantity:  r.Quantity,
			UnitPrice: item.Price,
			Subtotal:  item.Price.Mul(r.Quantity),
		})
	}
	return views, nil
}
