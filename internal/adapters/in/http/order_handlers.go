package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/generated/servers"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/orders. Customers see their own orders,
// delivery crew the orders assigned to them, managers and admins all orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListVisibleOrdersQuery(caller)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.queries.Orders.List(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, mapSlice(views, toOrder))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := toKernelID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.orderView(ctx, caller, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(view))
}

// CreateOrderFromCart handles POST /api/v1/orders/create-from-cart. The new
// order is read back as owned by the caller, so crew members placing their
// own orders get it too.
func (s *Server) CreateOrderFromCart(ctx echo.Context) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderFromCartCommand(caller)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := s.commands.CreateOrderFromCart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOwnOrderQuery(caller, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.queries.Orders.Get(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toOrder(view))
}

// AssignOrder handles POST /api/v1/orders/{orderId}/assign. An order can be
// assigned only once through this path.
func (s *Server) AssignOrder(ctx echo.Context, orderId servers.OrderId) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := toKernelID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.AssignOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	crewID, err := toKernelID("delivery_crew_id", body.DeliveryCrewId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignOrderCommand(caller, id, crewID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.AssignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.orderView(ctx, caller, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusAccepted, toOrder(view))
}

// MarkOrderDelivered handles POST /api/v1/orders/{orderId}/mark-delivered.
func (s *Server) MarkOrderDelivered(ctx echo.Context, orderId servers.OrderId) error {
	return s.markDelivered(ctx, orderId)
}

// PatchOrderDelivered handles PATCH /api/v1/orders/{orderId}/mark-delivered.
func (s *Server) PatchOrderDelivered(ctx echo.Context, orderId servers.OrderId) error {
	return s.markDelivered(ctx, orderId)
}

// markDelivered answers 200 both on the transition and on a repeated call; the
// latter carries a warning and leaves the order untouched.
func (s *Server) markDelivered(ctx echo.Context, orderId servers.OrderId) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := toKernelID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMarkOrderDeliveredCommand(caller, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var warning *string
	if err = s.commands.MarkOrderDelivered.Handle(ctx.Request().Context(), cmd); err != nil {
		if !services.IsWarning(err) {
			return s.fail(ctx, err)
		}
		msg := err.Error()
		warning = &msg
	}

	view, err := s.orderView(ctx, caller, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.DeliveryResult{
		Order:   toOrder(view),
		Warning: warning,
	})
}

func (s *Server) orderView(ctx echo.Context, caller identity.Caller, orderID kernel.UUID) (queries.OrderView, error) {
	query, err := queries.NewGetOrderQuery(caller, orderID)
	if err != nil {
		return queries.OrderView{}, err
	}
	return s.queries.Orders.Get(ctx.Request().Context(), query)
}
