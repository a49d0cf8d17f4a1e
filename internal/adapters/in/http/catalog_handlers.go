package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/generated/servers"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListCategories handles GET /api/v1/categories.
func (s *Server) ListCategories(ctx echo.Context) error {
	views, err := s.queries.Categories.List(ctx.Request().Context(), queries.NewListCategoriesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, mapSlice(views, toCategory))
}

// GetCategory handles GET /api/v1/categories/{categoryId}.
func (s *Server) GetCategory(ctx echo.Context, categoryId servers.CategoryId) error {
	id, err := toKernelID("categoryId", categoryId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondCategory(ctx, http.StatusOK, id)
}

// CreateCategory handles POST /api/v1/categories.
func (s *Server) CreateCategory(ctx echo.Context) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.CreateCategoryJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	categoryID := kernel.NewUUID()
	cmd, err := commands.NewCreateCategoryCommand(caller, categoryID, body.Title)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.CreateCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondCategory(ctx, http.StatusCreated, categoryID)
}

// UpdateCategory handles PUT /api/v1/categories/{categoryId}.
func (s *Server) UpdateCategory(ctx echo.Context, categoryId servers.CategoryId) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := toKernelID("categoryId", categoryId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.UpdateCategoryJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewUpdateCategoryCommand(caller, id, body.Title)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.UpdateCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondCategory(ctx, http.StatusOK, id)
}

// DeleteCategory handles DELETE /api/v1/categories/{categoryId}. Menu items of
// the category are removed with it.
func (s *Server) DeleteCategory(ctx echo.Context, categoryId servers.CategoryId) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := toKernelID("categoryId", categoryId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteCategoryCommand(caller, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.DeleteCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondCategory(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetCategoryQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.queries.Categories.Get(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, toCategory(view))
}

// ListMenuItems handles GET /api/v1/menu-items.
func (s *Server) ListMenuItems(ctx echo.Context, params servers.ListMenuItemsParams) error {
	var categoryID *kernel.UUID
	if params.Category != nil {
		id, err := toKernelID("category", *params.Category)
		if err != nil {
			return s.fail(ctx, err)
		}
		categoryID = &id
	}

	var search string
	if params.Search != nil {
		search = *params.Search
	}

	var ordering queries.MenuItemOrdering
	if params.Sort != nil {
		ordering = queries.MenuItemOrdering(*params.Sort)
	}

	query, err := queries.NewListMenuItemsQuery(categoryID, search, ordering)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.queries.MenuItems.List(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, mapSlice(views, toMenuItem))
}

// GetMenuItem handles GET /api/v1/menu-items/{menuItemId}.
func (s *Server) GetMenuItem(ctx echo.Context, menuItemId servers.MenuItemId) error {
	id, err := toKernelID("menuItemId", menuItemId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondMenuItem(ctx, http.StatusOK, id)
}

// CreateMenuItem handles POST /api/v1/menu-items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.CreateMenuItemJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	price, err := toMoney("price", body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}
	categoryID, err := toKernelID("category_id", body.CategoryId)
	if err != nil {
		return s.fail(ctx, err)
	}

	menuItemID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuItemCommand(caller, menuItemID, body.Title, price, categoryID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.CreateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondMenuItem(ctx, http.StatusCreated, menuItemID)
}

// UpdateMenuItem handles PUT /api/v1/menu-items/{menuItemId}.
func (s *Server) UpdateMenuItem(ctx echo.Context, menuItemId servers.MenuItemId) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := toKernelID("menuItemId", menuItemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.UpdateMenuItemJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	price, err := toMoney("price", body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}
	categoryID, err := toKernelID("category_id", body.CategoryId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(caller, id, body.Title, price, categoryID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.UpdateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondMenuItem(ctx, http.StatusOK, id)
}

// DeleteMenuItem handles DELETE /api/v1/menu-items/{menuItemId}.
func (s *Server) DeleteMenuItem(ctx echo.Context, menuItemId servers.MenuItemId) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := toKernelID("menuItemId", menuItemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteMenuItemCommand(caller, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.DeleteMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondMenuItem(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetMenuItemQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.queries.MenuItems.Get(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, toMenuItem(view))
}
