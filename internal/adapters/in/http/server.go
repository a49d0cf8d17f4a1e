package http

import (
	"log/slog"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/generated/servers"
)

var _ servers.ServerInterface = (*Server)(nil)

// CommandHandlers groups the write use cases reachable over HTTP.
type CommandHandlers struct {
	CreateCategory commands.CreateCategoryCommandHandler
	UpdateCategory commands.UpdateCategoryCommandHandler
	DeleteCategory commands.DeleteCategoryCommandHandler

	CreateMenuItem commands.CreateMenuItemCommandHandler
	UpdateMenuItem commands.UpdateMenuItemCommandHandler
	DeleteMenuItem commands.DeleteMenuItemCommandHandler

	AddCartLine commands.AddCartLineCommandHandler
	ClearCart   commands.ClearCartCommandHandler

	CreateOrderFromCart     commands.CreateOrderFromCartCommandHandler
	AssignOrder             commands.AssignOrderCommandHandler
	MarkOrderDelivered      commands.MarkOrderDeliveredCommandHandler
	OverrideOrderAssignment commands.OverrideOrderAssignmentCommandHandler

	GrantRole commands.GrantRoleCommandHandler
}

// QueryHandlers groups the read models reachable over HTTP.
type QueryHandlers struct {
	Categories queries.CategoryQueryHandler
	MenuItems  queries.MenuItemQueryHandler
	CartLines  queries.ListCartLinesQueryHandler
	Orders     queries.OrderQueryHandler
	Users      queries.ListUsersQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, logger *slog.Logger) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		logger:   logger.With("component", "http"),
	}
}
