package commands_test

import (
	"context"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPrincipalRepository struct{ mock.Mock }

func (m *MockPrincipalRepository) Add(ctx context.Context, p *identity.Principal) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPrincipalRepository) Update(ctx context.Context, p *identity.Principal) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPrincipalRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Principal, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*identity.Principal)
	return p, args.Error(1)
}

func (m *MockPrincipalRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*identity.Principal, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*identity.Principal)
	return p, args.Error(1)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Add(ctx context.Context, c *catalog.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*catalog.Category)
	return c, args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, i *catalog.MenuItem) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockMenuItemRepository) Update(ctx context.Context, i *catalog.MenuItem) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	args := m.Called(ctx, id)
	i, _ := args.Get(0).(*catalog.MenuItem)
	return i, args.Error(1)
}

func (m *MockMenuItemRepository) GetMany(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]*catalog.MenuItem, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).(map[kernel.UUID]*catalog.MenuItem)
	return items, args.Error(1)
}

func (m *MockMenuItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Get(ctx context.Context, ownerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, ownerID)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) GetForUpdate(ctx context.Context, ownerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, ownerID)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

// MockUoW satisfies every narrowed unit of work interface of the package.
type MockUoW struct {
	mock.Mock

	principals *MockPrincipalRepository
	categories *MockCategoryRepository
	menuItems  *MockMenuItemRepository
	carts      *MockCartRepository
	orders     *MockOrderRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		principals: new(MockPrincipalRepository),
		categories: new(MockCategoryRepository),
		menuItems:  new(MockMenuItemRepository),
		carts:      new(MockCartRepository),
		orders:     new(MockOrderRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) PrincipalRepository() ports.PrincipalRepository { return m.principals }
func (m *MockUoW) CategoryRepository() ports.CategoryRepository   { return m.categories }
func (m *MockUoW) MenuItemRepository() ports.MenuItemRepository   { return m.menuItems }
func (m *MockUoW) CartRepository() ports.CartRepository           { return m.carts }
func (m *MockUoW) OrderRepository() ports.OrderRepository         { return m.orders }

// expectTx sets up Begin and the deferred Rollback, and Commit when commit is true.
func (m *MockUoW) expectTx(ctx context.Context, commit bool) {
	m.On("Begin", ctx).Return(nil).Once()
	if commit {
		m.On("Commit", ctx).Return(nil).Once()
	}
	m.On("Rollback", ctx).Return(nil).Maybe()
}

func (m *MockUoW) assertAll(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.principals.AssertExpectations(t)
	m.categories.AssertExpectations(t)
	m.menuItems.AssertExpectations(t)
	m.carts.AssertExpectations(t)
	m.orders.AssertExpectations(t)
}

type (
	principalUoWFactory func() commands.PrincipalUoW
	catalogUoWFactory   func() commands.CatalogUoW
	cartUoWFactory      func() commands.CartUoW
	orderUoWFactory     func() commands.OrderUoW
	checkoutUoWFactory  func() commands.CheckoutUoW
)

func (f principalUoWFactory) Create() commands.PrincipalUoW { return f() }
func (f catalogUoWFactory) Create() commands.CatalogUoW     { return f() }
func (f cartUoWFactory) Create() commands.CartUoW           { return f() }
func (f orderUoWFactory) Create() commands.OrderUoW         { return f() }
func (f checkoutUoWFactory) Create() commands.CheckoutUoW   { return f() }

func principalFactory(uow *MockUoW) principalUoWFactory {
	return func() commands.PrincipalUoW { return uow }
}

func catalogFactory(uow *MockUoW) catalogUoWFactory {
	return func() commands.CatalogUoW { return uow }
}

func cartFactory(uow *MockUoW) cartUoWFactory {
	return func() commands.CartUoW { return uow }
}

func orderFactory(uow *MockUoW) orderUoWFactory {
	return func() commands.OrderUoW { return uow }
}

func checkoutFactory(uow *MockUoW) checkoutUoWFactory {
	return func() commands.CheckoutUoW { return uow }
}

// unusedFactory fails the test if a handler opens a transaction.
func unusedFactory[T any](t *testing.T) func() T {
	return func() T {
		t.Fatal("unit of work must not be created")
		var zero T
		return zero
	}
}

func newPrincipal(t *testing.T, username string, roles ...identity.Role) *identity.Principal {
	t.Helper()
	p, err := identity.NewPrincipal(kernel.NewUUID(), username, username+"@example.com", roles...)
	require.NoError(t, err)
	return p
}

func callerOf(t *testing.T, p *identity.Principal) identity.Caller {
	t.Helper()
	c, err := p.AsCaller()
	require.NoError(t, err)
	return c
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newMenuItem(t *testing.T, title, price string) *catalog.MenuItem {
	t.Helper()
	item, err := catalog.NewMenuItem(kernel.NewUUID(), title, money(t, price), kernel.NewUUID())
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T, ownerID kernel.UUID) *order.Order {
	t.Helper()
	l, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), "Pasta", money(t, "7.00"), 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), ownerID, []*order.Line{l})
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}
