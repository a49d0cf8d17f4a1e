package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/generated/servers"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListUsers handles GET /api/v1/users. Admins and managers only.
func (s *Server) ListUsers(ctx echo.Context) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListUsersQuery(caller)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.queries.Users.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, mapSlice(views, toUser))
}

// SetManager handles POST /api/v1/users/{userId}/set-manager.
func (s *Server) SetManager(ctx echo.Context, userId servers.UserId) error {
	return s.grantRole(ctx, userId, identity.Manager)
}

// SetDeliveryCrew handles POST /api/v1/users/{userId}/set-delivery.
func (s *Server) SetDeliveryCrew(ctx echo.Context, userId servers.UserId) error {
	return s.grantRole(ctx, userId, identity.DeliveryCrew)
}

func (s *Server) grantRole(ctx echo.Context, userId servers.UserId, role identity.Role) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	targetID, err := toKernelID("userId", userId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewGrantRoleCommand(caller, targetID, role)
	if err != nil {
		return s.fail(ctx, err)
	}
	changed, err := s.commands.GrantRole.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.RoleGrant{
		UserId:  userId,
		Role:    role.String(),
		Changed: changed,
	})
}

// OverrideOrderAssignment handles POST /api/v1/users/{userId}/assign-order.
// Unlike AssignOrder it replaces an existing assignee.
func (s *Server) OverrideOrderAssignment(ctx echo.Context, userId servers.UserId) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	targetID, err := toKernelID("userId", userId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.OverrideOrderAssignmentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	orderID, err := toKernelID("order_id", body.OrderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewOverrideOrderAssignmentCommand(caller, targetID, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.OverrideOrderAssignment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.orderView(ctx, caller, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(view))
}
