package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrListVisibleOrdersQueryIsNotConstructed = errors.New(
		"ListVisibleOrdersQuery must be created via NewListVisibleOrdersQuery constructor",
	)
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// ListVisibleOrdersQuery lists the orders the caller may see:
//   - Manager or Admin: every order
//   - DeliveryCrew: orders assigned to the caller
//   - anyone else: orders the caller placed
//
// Example:
//
//	query, _ := NewListVisibleOrdersQuery(caller)
//	orders, err := handler.List(ctx, query)
type ListVisibleOrdersQuery struct {
	caller identity.Caller

	guard guard.ConstructorGuard
}

func NewListVisibleOrdersQuery(caller identity.Caller) (ListVisibleOrdersQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListVisibleOrdersQuery{}, err
	}
	return ListVisibleOrdersQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q ListVisibleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListVisibleOrdersQueryIsNotConstructed)
}

// GetOrderQuery reads one order under the same scoping as ListVisibleOrdersQuery.
// An order outside the caller's scope is reported as not found.
type GetOrderQuery struct {
	caller  identity.Caller
	orderID kernel.UUID
	ownOnly bool

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(caller identity.Caller, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(caller.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{caller: caller, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// NewGetOwnOrderQuery reads an order the caller placed, whatever other roles
// the caller holds. A delivery crew member uses it to see the order they just
// checked out, which the assigned-orders scope would hide.
func NewGetOwnOrderQuery(caller identity.Caller, orderID kernel.UUID) (GetOrderQuery, error) {
	q, err := NewGetOrderQuery(caller, orderID)
	if err != nil {
		return GetOrderQuery{}, err
	}
	q.ownOnly = true
	return q, nil
}

func (q GetOrderQuery) visibility() services.OrderVisibility {
	if q.ownOnly {
		return services.OrderVisibility{Scope: services.ScopeOwned, PrincipalID: q.caller.ID()}
	}
	return services.VisibilityFor(q.caller)
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderQueryHandler serves both order queries.
type OrderQueryHandler struct {
	db *gorm.DB
}

func NewOrderQueryHandler(db *gorm.DB) OrderQueryHandler {
	return OrderQueryHandler{db: db}
}

type orderRow struct {
	ID           uuid.UUID
	Owner        string
	DeliveryCrew *string
	Status       string
	Total        decimal.Decimal
}

type orderLineRow struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	Title     string
	UnitPrice decimal.Decimal
	Quantity  int

	MenuItemID    *uuid.UUID
	MenuItemTitle *string
	Price         decimal.NullDecimal
	CategoryID    *uuid.UUID
	CategoryTitle *string
}

const orderSelect = `
		SELECT
			o.id        AS id,
			owner.username AS owner,
			crew.username  AS delivery_crew,
			o.status    AS status,
			o.total     AS total
		FROM orders o
		JOIN principals owner     ON owner.id = o.owner_id
		LEFT JOIN principals crew ON crew.id = o.delivery_crew_id`

func (h OrderQueryHandler) List(ctx context.Context, query ListVisibleOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, args := scopeFilter(services.VisibilityFor(query.caller))

	var rows []orderRow
	if err := h.db.WithContext(ctx).
		Raw(orderSelect+where+"\n\t\tORDER BY o.created_at, o.id", args...).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return h.withItems(ctx, rows)
}

func (h OrderQueryHandler) Get(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	where, args := scopeFilter(query.visibility())
	if where == "" {
		where = "\n\t\tWHERE o.id = ?"
	} else {
		where += " AND o.id = ?"
	}
	args = append(args, query.orderID.Bytes())

	var rows []orderRow
	if err := h.db.WithContext(ctx).Raw(orderSelect+where, args...).Scan(&rows).Error; err != nil {
		return OrderView{}, err
	}
	if len(rows) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("orderID", query.orderID)
	}

	views, err := h.withItems(ctx, rows)
	if err != nil {
		return OrderView{}, err
	}
	return views[0], nil
}

func scopeFilter(v services.OrderVisibility) (string, []any) {
	switch v.Scope {
	case services.ScopeAll:
		return "", nil
	case services.ScopeAssigned:
		return "\n\t\tWHERE o.delivery_crew_id = ?", []any{v.PrincipalID.Bytes()}
	default:
		return "\n\t\tWHERE o.owner_id = ?", []any{v.PrincipalID.Bytes()}
	}
}

func (h OrderQueryHandler) withItems(ctx context.Context, rows []orderRow) ([]OrderView, error) {
	views := make([]OrderView, 0, len(rows))
	if len(rows) == 0 {
		return views, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	index := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		v, err := r.toView()
		if err != nil {
			return nil, err
		}
		index[r.ID] = len(views)
		views = append(views, v)
		ids = append(ids, r.ID)
	}

	var lines []orderLineRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT
			ol.id         AS id,
			ol.order_id   AS order_id,
			ol.title      AS title,
			ol.unit_price AS unit_price,
			ol.quantity   AS quantity,
			mi.id         AS menu_item_id,
			mi.title      AS menu_item_title,
			mi.price      AS price,
			c.id          AS category_id,
			c.title       AS category_title
		FROM order_lines ol
		LEFT JOIN menu_items mi ON mi.id = ol.menu_item_id
		LEFT JOIN categories c  ON c.id = mi.category_id
		WHERE ol.order_id IN ?
		ORDER BY ol.title, ol.id
	`, ids).Scan(&lines).Error; err != nil {
		return nil, err
	}

	for _, l := range lines {
		item, err := l.toView()
		if err != nil {
			return nil, err
		}
		i := index[l.OrderID]
		views[i].Items = append(views[i].Items, item)
	}
	return views, nil
}

func (r orderRow) toView() (OrderView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderView{}, err
	}
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return OrderView{}, err
	}
	total, err := kernel.NewMoney(r.Total)
	if err != nil {
		return OrderView{}, err
	}
	return OrderView{
		ID:           id,
		Owner:        r.Owner,
		DeliveryCrew: r.DeliveryCrew,
		Status:       status.Code(),
		Total:        total,
		Items:        make([]OrderItemView, 0),
	}, nil
}

func (r orderLineRow) toView() (OrderItemView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderItemView{}, err
	}
	orderID, err := kernel.UUIDFromBytes(r.OrderID[:])
	if err != nil {
		return OrderItemView{}, err
	}
	unitPrice, err := kernel.NewMoney(r.UnitPrice)
	if err != nil {
		return OrderItemView{}, err
	}

	view := OrderItemView{
		ID:        id,
		OrderID:   orderID,
		Title:     r.Title,
		UnitPrice: unitPrice,
		Quantity:  r.Quantity,
		Subtotal:  unitPrice.Mul(r.Quantity),
	}

	if r.MenuItemID != nil && r.CategoryID != nil && r.Price.Valid {
		item, itemErr := menuItemRow{
			MenuItemID:    *r.MenuItemID,
			MenuItemTitle: deref(r.MenuItemTitle),
			Price:         r.Price.Decimal,
			CategoryID:    *r.CategoryID,
			CategoryTitle: deref(r.CategoryTitle),
		}.toView()
		if itemErr != nil {
			return OrderItemView{}, itemErr
		}
		view.MenuItem = &item
	}
	return view, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
