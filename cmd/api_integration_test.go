package cmd

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restaurant/api"
	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/eventlog"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/pgtest"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"
	"restaurant/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const apiTestSecret = "integration-secret"

// APIIntegrationTestSuite drives the fully wired router against PostgreSQL.
type APIIntegrationTestSuite struct {
	suite.Suite
	pg     *pgtest.Database
	router *echo.Echo

	alice, dan, maria *identity.Principal
	pizza             *catalog.MenuItem
}

func (suite *APIIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	pg, err := pgtest.Start(ctx)
	suite.Require().NoError(err)
	suite.pg = pg

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := NewCompositionRoot(Config{JWTSecret: apiTestSecret}, pg.DB, eventlog.NewPublisher(logger), logger)
	doc, err := httpin.LoadOpenAPI(ctx, api.OpenAPI)
	suite.Require().NoError(err)
	suite.router = app.CreateRouter(doc, nil)
}

func (suite *APIIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	suite.alice = suite.seedPrincipal("alice")
	suite.dan = suite.seedPrincipal("dan", identity.DeliveryCrew)
	suite.maria = suite.seedPrincipal("maria", identity.Manager)
	suite.pizza = suite.seedMenuItem("Pizza", "10.00")
}

func (suite *APIIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *APIIntegrationTestSuite) TestCreateFromCart_Returns201WithTheNewOrder() {
	suite.addToCart(suite.alice, suite.pizza, 2)

	rec := suite.do(suite.alice, http.MethodPost, "/api/v1/orders/create-from-cart", "")
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var placed servers.Order
	suite.decode(rec, &placed)
	suite.Equal("alice", placed.User)
	suite.Equal(servers.OrderStatus("placed"), placed.Status)
	suite.Equal("20.00", placed.Total)
	suite.Nil(placed.DeliveryCrew)
	suite.Len(placed.Items, 1)

	rec = suite.do(suite.alice, http.MethodGet, "/api/v1/cart", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`[]`, rec.Body.String())
}

func (suite *APIIntegrationTestSuite) TestCreateFromCart_CrewMemberCheckingOutGets201() {
	suite.addToCart(suite.dan, suite.pizza, 1)

	rec := suite.do(suite.dan, http.MethodPost, "/api/v1/orders/create-from-cart", "")
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var placed servers.Order
	suite.decode(rec, &placed)
	suite.Equal("dan", placed.User)
	suite.Equal("10.00", placed.Total)
}

func (suite *APIIntegrationTestSuite) TestCreateFromCart_EmptyCart() {
	rec := suite.do(suite.alice, http.MethodPost, "/api/v1/orders/create-from-cart", "")

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Equal("cart_empty", suite.reason(rec))
}

func (suite *APIIntegrationTestSuite) TestCreateFromCart_TotalTooLargeIsRejectedAndCartKept() {
	caviar := suite.seedMenuItem("Caviar", catalog.MaxPrice.String())
	suite.addToCart(suite.alice, caviar, 1000)

	rec := suite.do(suite.alice, http.MethodPost, "/api/v1/orders/create-from-cart", "")
	suite.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
	suite.Equal("invalid_request", suite.reason(rec))

	rec = suite.do(suite.alice, http.MethodGet, "/api/v1/cart", "")
	var lines []servers.CartLine
	suite.decode(rec, &lines)
	suite.Len(lines, 1)
}

func (suite *APIIntegrationTestSuite) TestAssign_Returns202ThenConflict() {
	orderID := suite.placeOrder(suite.alice)
	body := `{"delivery_crew_id":"` + suite.dan.ID().String() + `"}`

	rec := suite.do(suite.maria, http.MethodPost, "/api/v1/orders/"+orderID+"/assign", body)
	suite.Require().Equal(http.StatusAccepted, rec.Code, rec.Body.String())
	var assigned servers.Order
	suite.decode(rec, &assigned)
	suite.Require().NotNil(assigned.DeliveryCrew)
	suite.Equal("dan", *assigned.DeliveryCrew)
	suite.Equal(servers.OrderStatus("placed"), assigned.Status)

	rec = suite.do(suite.maria, http.MethodPost, "/api/v1/orders/"+orderID+"/assign", body)
	suite.Equal(http.StatusConflict, rec.Code)
	suite.Equal("order_already_assigned", suite.reason(rec))
}

func (suite *APIIntegrationTestSuite) TestMarkDelivered_RepeatCarriesWarning() {
	for _, method := range []string{http.MethodPost, http.MethodPatch} {
		suite.Run(method, func() {
			orderID := suite.placeOrder(suite.alice)
			rec := suite.do(suite.maria, http.MethodPost, "/api/v1/orders/"+orderID+"/assign",
				`{"delivery_crew_id":"`+suite.dan.ID().String()+`"}`)
			suite.Require().Equal(http.StatusAccepted, rec.Code, rec.Body.String())

			target := "/api/v1/orders/" + orderID + "/mark-delivered"

			rec = suite.do(suite.dan, method, target, "")
			suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
			var first servers.DeliveryResult
			suite.decode(rec, &first)
			suite.Equal(servers.OrderStatus("delivered"), first.Order.Status)
			suite.Nil(first.Warning)

			rec = suite.do(suite.dan, method, target, "")
			suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
			var second servers.DeliveryResult
			suite.decode(rec, &second)
			suite.Equal(servers.OrderStatus("delivered"), second.Order.Status)
			suite.Require().NotNil(second.Warning)
			suite.NotEmpty(*second.Warning)
		})
	}
}

func (suite *APIIntegrationTestSuite) TestListUsers_ManagerAllowedCustomerForbidden() {
	rec := suite.do(suite.maria, http.MethodGet, "/api/v1/users", "")
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var users []servers.User
	suite.decode(rec, &users)
	suite.Len(users, 3)

	rec = suite.do(suite.alice, http.MethodGet, "/api/v1/users", "")
	suite.Equal(http.StatusForbidden, rec.Code)
}

func (suite *APIIntegrationTestSuite) addToCart(p *identity.Principal, item *catalog.MenuItem, quantity int) {
	body, err := json.Marshal(map[string]any{"menuitem_id": item.ID().String(), "quantity": quantity})
	suite.Require().NoError(err)
	rec := suite.do(p, http.MethodPost, "/api/v1/cart", string(body))
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
}

func (suite *APIIntegrationTestSuite) placeOrder(p *identity.Principal) string {
	suite.addToCart(p, suite.pizza, 1)
	rec := suite.do(p, http.MethodPost, "/api/v1/orders/create-from-cart", "")
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var placed servers.Order
	suite.decode(rec, &placed)
	return placed.Id.String()
}

func (suite *APIIntegrationTestSuite) do(p *identity.Principal, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+suite.token(p))

	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *APIIntegrationTestSuite) token(p *identity.Principal) string {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      p.ID().String(),
		"username": p.Username(),
		"email":    p.Email(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(apiTestSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *APIIntegrationTestSuite) decode(rec *httptest.ResponseRecorder, target any) {
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), target), rec.Body.String())
}

func (suite *APIIntegrationTestSuite) reason(rec *httptest.ResponseRecorder) string {
	var body servers.Error
	suite.decode(rec, &body)
	return body.Reason
}

func (suite *APIIntegrationTestSuite) seedPrincipal(username string, roles ...identity.Role) *identity.Principal {
	p, err := identity.NewPrincipal(kernel.NewUUID(), username, username+"@example.com", roles...)
	suite.Require().NoError(err)
	suite.commit(func(ctx context.Context, uow ports.UnitOfWork) error {
		return uow.PrincipalRepository().Add(ctx, p)
	})
	return p
}

func (suite *APIIntegrationTestSuite) seedMenuItem(title, price string) *catalog.MenuItem {
	category, err := catalog.NewCategory(kernel.NewUUID(), title+" category")
	suite.Require().NoError(err)
	amount, err := kernel.MoneyFromString(price)
	suite.Require().NoError(err)
	item, err := catalog.NewMenuItem(kernel.NewUUID(), title, amount, category.ID())
	suite.Require().NoError(err)

	suite.commit(func(ctx context.Context, uow ports.UnitOfWork) error {
		if err := uow.CategoryRepository().Add(ctx, category); err != nil {
			return err
		}
		return uow.MenuItemRepository().Add(ctx, item)
	})
	return item
}

func (suite *APIIntegrationTestSuite) commit(fn func(ctx context.Context, uow ports.UnitOfWork) error) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uow := postgres.NewGormUnitOfWorkFactory(suite.pg.DB, nil, logger).Create()

	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()
	suite.Require().NoError(fn(ctx, uow))
	suite.Require().NoError(uow.Commit(ctx))
}

func TestAPIIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(APIIntegrationTestSuite))
}
