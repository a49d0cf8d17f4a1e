package http

import (
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/generated/servers"
	"restaurant/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelID(paramName string, id openapi_types.UUID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return parsed, nil
}

func toMoney(paramName string, s servers.Money) (kernel.Money, error) {
	m, err := kernel.MoneyFromString(s)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return m, nil
}

func toCategory(v queries.CategoryView) servers.Category {
	return servers.Category{
		Id:    v.ID.Bytes(),
		Title: v.Title,
	}
}

func toMenuItem(v queries.MenuItemView) servers.MenuItem {
	return servers.MenuItem{
		Id:       v.ID.Bytes(),
		Title:    v.Title,
		Price:    v.Price.String(),
		Category: toCategory(v.Category),
	}
}

func toCartLine(v queries.CartLineView) servers.CartLine {
	return servers.CartLine{
		Id:        v.ID.Bytes(),
		User:      v.Owner,
		Menuitem:  toMenuItem(v.MenuItem),
		Quantity:  v.Quantity,
		UnitPrice: v.UnitPrice.String(),
		Price:     v.Subtotal.String(),
	}
}

func toOrder(v queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, len(v.Items))
	for i, item := range v.Items {
		items[i] = servers.OrderItem{
			Id:        item.ID.Bytes(),
			Order:     item.OrderID.Bytes(),
			Title:     item.Title,
			UnitPrice: item.UnitPrice.String(),
			Quantity:  item.Quantity,
			Price:     item.Subtotal.String(),
		}
		if item.MenuItem != nil {
			m := toMenuItem(*item.MenuItem)
			items[i].Menuitem = &m
		}
	}

	return servers.Order{
		Id:           v.ID.Bytes(),
		User:         v.Owner,
		DeliveryCrew: v.DeliveryCrew,
		Status:       servers.OrderStatus(v.Status),
		Total:        v.Total.String(),
		Items:        items,
	}
}

func toUser(v queries.UserView) servers.User {
	roles := v.Roles
	if roles == nil {
		roles = []string{}
	}
	return servers.User{
		Id:       v.ID.Bytes(),
		Username: v.Username,
		Email:    v.Email,
		Roles:    roles,
	}
}

func mapSlice[V, W any](views []V, f func(V) W) []W {
	out := make([]W, len(views))
	for i, v := range views {
		out[i] = f(v)
	}
	return out
}
