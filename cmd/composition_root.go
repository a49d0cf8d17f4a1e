package cmd

import (
	"context"
	"log/slog"

	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot wires use cases to storage. Events committed by units of
// work go to publisher.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) principalUoWFactory() commands.PrincipalUoWFactory {
	return FuncPrincipalUoWFactory(func() commands.PrincipalUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateEnsurePrincipalCommandHandler() commands.EnsurePrincipalCommandHandler {
	return commands.NewEnsurePrincipalCommandHandler(c.principalUoWFactory(), c.configs.AdminUsernames)
}

func (c *CompositionRoot) CreateResolveCallerQueryHandler() queries.ResolveCallerQueryHandler {
	return queries.NewResolveCallerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCommandHandlers() httpin.CommandHandlers {
	return httpin.CommandHandlers{
		CreateCategory: commands.NewCreateCategoryCommandHandler(c.catalogUoWFactory()),
		UpdateCategory: commands.NewUpdateCategoryCommandHandler(c.catalogUoWFactory()),
		DeleteCategory: commands.NewDeleteCategoryCommandHandler(c.catalogUoWFactory()),

		CreateMenuItem: commands.NewCreateMenuItemCommandHandler(c.catalogUoWFactory()),
		UpdateMenuItem: commands.NewUpdateMenuItemCommandHandler(c.catalogUoWFactory()),
		DeleteMenuItem: commands.NewDeleteMenuItemCommandHandler(c.catalogUoWFactory()),

		AddCartLine: commands.NewAddCartLineCommandHandler(c.cartUoWFactory()),
		ClearCart:   commands.NewClearCartCommandHandler(c.cartUoWFactory()),

		CreateOrderFromCart:     commands.NewCreateOrderFromCartCommandHandler(c.checkoutUoWFactory()),
		AssignOrder:             commands.NewAssignOrderCommandHandler(c.orderUoWFactory()),
		MarkOrderDelivered:      commands.NewMarkOrderDeliveredCommandHandler(c.orderUoWFactory()),
		OverrideOrderAssignment: commands.NewOverrideOrderAssignmentCommandHandler(c.orderUoWFactory()),

		GrantRole: commands.NewGrantRoleCommandHandler(c.principalUoWFactory()),
	}
}

func (c *CompositionRoot) CreateQueryHandlers() httpin.QueryHandlers {
	return httpin.QueryHandlers{
		Categories: queries.NewCategoryQueryHandler(c.gormDB),
		MenuItems:  queries.NewMenuItemQueryHandler(c.gormDB),
		CartLines:  queries.NewListCartLinesQueryHandler(c.gormDB),
		Orders:     queries.NewOrderQueryHandler(c.gormDB),
		Users:      queries.NewListUsersQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(c.CreateCommandHandlers(), c.CreateQueryHandlers(), c.logger)
}

// CreateRouter builds the HTTP entry point: token verification against the
// configured secret, request validation against doc, and every API handler.
func (c *CompositionRoot) CreateRouter(doc *httpin.OpenAPI, ping func(context.Context) error) *echo.Echo {
	return httpin.NewRouter(httpin.RouterConfig{
		Server:  c.CreateServer(),
		OpenAPI: doc,
		Token: httpin.TokenConfig{
			Secret: []byte(c.configs.JWTSecret),
			Issuer: c.configs.JWTIssuer,
		},
		Resolver: c.CreateResolveCallerQueryHandler(),
		Ensurer:  c.CreateEnsurePrincipalCommandHandler(),
		Logger:   c.logger,
		Ping:     ping,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewCountUnassignedOrdersQueryHandler(c.gormDB),
		c.configs.UnassignedReportSchedule,
		c.logger,
	)
}

type FuncPrincipalUoWFactory func() commands.PrincipalUoW

func (f FuncPrincipalUoWFactory) Create() commands.PrincipalUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
