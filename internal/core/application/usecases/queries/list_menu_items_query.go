package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrListMenuItemsQueryIsNotConstructed = errors.New(
		"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
	)
	ErrGetMenuItemQueryIsNotConstructed = errors.New(
		"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
	)
)

// MenuItemOrdering selects the sort order of ListMenuItemsQuery.
type MenuItemOrdering string

const (
	OrderByTitle     MenuItemOrdering = "title"
	OrderByPrice     MenuItemOrdering = "price"
	OrderByPriceDesc MenuItemOrdering = "-price"
)

func (o MenuItemOrdering) sql() (string, error) {
	switch o {
	case "", OrderByTitle:
		return "mi.title, mi.id", nil
	case OrderByPrice:
		return "mi.price, mi.title, mi.id", nil
	case OrderByPriceDesc:
		return "mi.price DESC, mi.title, mi.id", nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("ordering", fmt.Errorf("%q is not supported", string(o)))
	}
}

// ListMenuItemsQuery lists menu items, optionally restricted to one category
// or to titles containing search. It is public.
type ListMenuItemsQuery struct {
	categoryID *kernel.UUID
	search     string
	ordering   MenuItemOrdering

	guard guard.ConstructorGuard
}

func NewListMenuItemsQuery(categoryID *kernel.UUID, search string, ordering MenuItemOrdering) (ListMenuItemsQuery, error) {
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return ListMenuItemsQuery{}, err
		}
	}
	if _, err := ordering.sql(); err != nil {
		return ListMenuItemsQuery{}, err
	}
	return ListMenuItemsQuery{
		categoryID: categoryID,
		search:     strings.TrimSpace(search),
		ordering:   ordering,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

// GetMenuItemQuery returns one menu item.
type GetMenuItemQuery struct {
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMenuItemQuery(menuItemID kernel.UUID) (GetMenuItemQuery, error) {
	if err := menuItemID.Validate(); err != nil {
		return GetMenuItemQuery{}, err
	}
	return GetMenuItemQuery{menuItemID: menuItemID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

// MenuItemQueryHandler serves both menu item queries.
type MenuItemQueryHandler struct {
	db *gorm.DB
}

func NewMenuItemQueryHandler(db *gorm.DB) MenuItemQueryHandler {
	return MenuItemQueryHandler{db: db}
}

func (h MenuItemQueryHandler) List(ctx context.Context, query ListMenuItemsQuery) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orderBy, err := query.ordering.sql()
	if err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if query.categoryID != nil {
		where = append(where, "mi.category_id = ?")
		args = append(args, query.categoryID.Bytes())
	}
	if query.search != "" {
		where = append(where, "mi.title ILIKE ?")
		args = append(args, "%"+escapeLike(query.search)+"%")
	}

	sql := `SELECT ` + menuItemColumns + `
		FROM menu_items mi
		JOIN categories c ON c.id = mi.category_id`
	if len(where) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	sql += "\n\t\tORDER BY " + orderBy

	var rows []menuItemRow
	if err = h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]MenuItemView, 0, len(rows))
	for _, r := range rows {
		v, viewErr := r.toView()
		if viewErr != nil {
			return nil, viewErr
		}
		views = append(views, v)
	}
	return views, nil
}

func (h MenuItemQueryHandler) Get(ctx context.Context, query GetMenuItemQuery) (MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return MenuItemView{}, err
	}

	var rows []menuItemRow
	if err := h.db.WithContext(ctx).Raw(`SELECT `+menuItemColumns+`
		FROM menu_items mi
		JOIN categories c ON c.id = mi.category_id
		WHERE mi.id = ?
	`, query.menuItemID.Bytes()).Scan(&rows).Error; err != nil {
		return MenuItemView{}, err
	}
	if len(rows) == 0 {
		return MenuItemView{}, errs.NewObjectNotFoundError("menuItemID", query.menuItemID)
	}

	return rows[0].toView()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
