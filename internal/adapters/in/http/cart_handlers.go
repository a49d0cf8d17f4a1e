package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/generated/servers"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListCart handles GET /api/v1/cart.
func (s *Server) ListCart(ctx echo.Context) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListCartLinesQuery(caller)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.queries.CartLines.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, mapSlice(views, toCartLine))
}

// AddCartLine handles POST /api/v1/cart. Posting a menu item already in the
// cart replaces its quantity.
func (s *Server) AddCartLine(ctx echo.Context) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.AddCartLineJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	menuItemID, err := toKernelID("menuitem_id", body.MenuitemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddCartLineCommand(caller, menuItemID, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}
	lineID, err := s.commands.AddCartLine.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListCartLinesQuery(caller)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.queries.CartLines.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	for _, v := range views {
		if v.ID.IsEqual(lineID) {
			return ctx.JSON(http.StatusCreated, toCartLine(v))
		}
	}
	return s.fail(ctx, errs.NewObjectNotFoundError("lineID", lineID))
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewClearCartCommand(caller)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
