package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrCountUnassignedOrdersQueryIsNotConstructed = errors.New(
	"CountUnassignedOrdersQuery must be created via NewCountUnassignedOrdersQuery constructor",
)

// CountUnassignedOrdersQuery counts placed orders still waiting for a
// delivery crew member. Used by the periodic report job.
type CountUnassignedOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewCountUnassignedOrdersQuery() CountUnassignedOrdersQuery {
	return CountUnassignedOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q CountUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountUnassignedOrdersQueryIsNotConstructed)
}

type CountUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

func NewCountUnassignedOrdersQueryHandler(db *gorm.DB) CountUnassignedOrdersQueryHandler {
	return CountUnassignedOrdersQueryHandler{db: db}
}

func (h CountUnassignedOrdersQueryHandler) Handle(ctx context.Context, query CountUnassignedOrdersQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE status = ? AND delivery_crew_id IS NULL
	`, order.Placed.Code()).Scan(&count).Error
	return count, err
}
