// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored as one row in orders plus one row per line in order_lines.
package orderrepo

import (
	"time"

	"restaurant/internal/adapters/out/postgres/principalrepo"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by owner, assignee and status for the visibility-scoped listings.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeliveryCrewID *uuid.UUID      `gorm:"type:uuid;index"`
	Status         string          `gorm:"type:varchar(16);not null;index"`
	Total          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt      time.Time       `gorm:"not null;index"`
	Lines          []OrderLineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	Owner        principalrepo.PrincipalDTO  `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	DeliveryCrew *principalrepo.PrincipalDTO `gorm:"foreignKey:DeliveryCrewID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is a priced snapshot of a menu item. MenuItemID carries no
// foreign key so that deleting a menu item never touches placed orders.
type OrderLineDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null"`
	Title      string          `gorm:"type:varchar(255);not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Quantity   int             `gorm:"not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var crewID *uuid.UUID
	if id := o.AssigneeID(); id != nil {
		raw := id.Bytes()
		crewID = &raw
	}

	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:         l.ID().Bytes(),
			OrderID:    o.ID().Bytes(),
			MenuItemID: l.MenuItemID().Bytes(),
			Title:      l.Title(),
			UnitPrice:  l.UnitPrice().Decimal(),
			Quantity:   l.Quantity(),
		})
	}

	return OrderDTO{
		ID:             o.ID().Bytes(),
		OwnerID:        o.OwnerID().Bytes(),
		DeliveryCrewID: crewID,
		Status:         o.Status().Code(),
		Total:          o.Total().Decimal(),
		Lines:          lines,
	}
}

// toDomain reconstructs the aggregate with RestoreOrder. Lines must be preloaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var crewID *kernel.UUID
	if dto.DeliveryCrewID != nil {
		cID, crewErr := kernel.UUIDFromBytes((*dto.DeliveryCrewID)[:])
		if crewErr != nil {
			return nil, crewErr
		}

		crewID = &cID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := lineToDomain(l)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, ownerID, crewID, status, total, lines)
}

func lineToDomain(dto OrderLineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.NewLine(id, menuItemID, dto.Title, unitPrice, dto.Quantity)
}
