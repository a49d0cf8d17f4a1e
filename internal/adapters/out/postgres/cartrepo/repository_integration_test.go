package cartrepo_test

import (
	"context"
	"testing"

	"restaurant/internal/adapters/out/postgres/cartrepo"
	"restaurant/internal/adapters/out/postgres/catalogrepo"
	"restaurant/internal/adapters/out/postgres/pgtest"
	"restaurant/internal/adapters/out/postgres/principalrepo"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	tracker    *MockAggregateTracker
	repository *cartrepo.GormCartRepository

	owner *identity.Principal
	pizza *catalog.MenuItem
	soup  *catalog.MenuItem
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.pg.Truncate())
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = cartrepo.NewGormCartRepository(suite.pg.DB, suite.tracker)

	var err error
	suite.owner, err = identity.NewPrincipal(kernel.NewUUID(), "alice", "")
	suite.Require().NoError(err)
	suite.Require().NoError(principalrepo.NewGormPrincipalRepository(suite.pg.DB, suite.tracker).Add(ctx, suite.owner))

	category, err := catalog.NewCategory(kernel.NewUUID(), "Mains")
	suite.Require().NoError(err)
	suite.Require().NoError(catalogrepo.NewGormCategoryRepository(suite.pg.DB, suite.tracker).Add(ctx, category))

	items := catalogrepo.NewGormMenuItemRepository(suite.pg.DB, suite.tracker)
	price, err := kernel.MoneyFromString("10.00")
	suite.Require().NoError(err)
	suite.pizza, err = catalog.NewMenuItem(kernel.NewUUID(), "Pizza", price, category.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(items.Add(ctx, suite.pizza))
	suite.soup, err = catalog.NewMenuItem(kernel.NewUUID(), "Soup", price, category.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(items.Add(ctx, suite.soup))
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *CartRepositoryIntegrationTestSuite) TestGet_NoLines_ReturnsEmptyCart() {
	c, err := suite.repository.Get(context.Background(), suite.owner.ID())

	suite.Require().NoError(err)
	suite.True(c.IsEmpty())
	suite.Equal(suite.owner.ID(), c.OwnerID())
}

func (suite *CartRepositoryIntegrationTestSuite) TestSave_UpsertsAndKeepsOneLinePerItem() {
	ctx := context.Background()
	c, err := suite.repository.GetForUpdate(ctx, suite.owner.ID())
	suite.Require().NoError(err)

	first, err := c.AddOrUpdateLine(suite.pizza.ID(), 1)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, c))

	c, err = suite.repository.Get(ctx, suite.owner.ID())
	suite.Require().NoError(err)
	again, err := c.AddOrUpdateLine(suite.pizza.ID(), 4)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, c))

	stored, err := suite.repository.Get(ctx, suite.owner.ID())
	suite.Require().NoError(err)
	suite.Require().Len(stored.Lines(), 1)
	suite.Equal(first.ID(), again.ID())
	suite.Equal(4, stored.Lines()[0].Quantity())
}

func (suite *CartRepositoryIntegrationTestSuite) TestSave_ClearedCartDeletesLines() {
	ctx := context.Background()
	c, err := suite.repository.Get(ctx, suite.owner.ID())
	suite.Require().NoError(err)
	_, err = c.AddOrUpdateLine(suite.pizza.ID(), 1)
	suite.Require().NoError(err)
	_, err = c.AddOrUpdateLine(suite.soup.ID(), 2)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, c))

	c.Clear()
	suite.Require().NoError(suite.repository.Save(ctx, c))

	stored, err := suite.repository.Get(ctx, suite.owner.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEmpty())
}

func (suite *CartRepositoryIntegrationTestSuite) TestDeletingMenuItem_RemovesCartLine() {
	ctx := context.Background()
	c, err := suite.repository.Get(ctx, suite.owner.ID())
	suite.Require().NoError(err)
	_, err = c.AddOrUpdateLine(suite.soup.ID(), 2)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, c))

	items := catalogrepo.NewGormMenuItemRepository(suite.pg.DB, suite.tracker)
	suite.Require().NoError(items.Delete(ctx, suite.soup.ID()))

	stored, err := suite.repository.Get(ctx, suite.owner.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEmpty())
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetForUpdate_UnknownOwner_ReturnsNotFound() {
	_, err := suite.repository.GetForUpdate(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCartRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}
