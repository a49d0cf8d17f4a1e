package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant/api"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, ping func(context.Context) error) *echo.Echo {
	t.Helper()

	doc, err := LoadOpenAPI(t.Context(), api.OpenAPI)
	require.NoError(t, err)

	logger := discardLogger()
	return NewRouter(RouterConfig{
		Server:   NewServer(CommandHandlers{}, QueryHandlers{}, logger),
		OpenAPI:  doc,
		Token:    TokenConfig{Secret: testSecret},
		Resolver: &MockCallerResolver{},
		Ensurer:  &MockPrincipalEnsurer{},
		Logger:   logger,
		Ping:     ping,
	})
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	return serveAs(e, "", method, target, body)
}

func serveAs(e *echo.Echo, authorization, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	rec := serve(newTestRouter(t, nil), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	failing := func(context.Context) error { return errors.New("connection refused") }
	rec = serve(newTestRouter(t, failing), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_ServesOpenAPIDocument(t *testing.T) {
	e := newTestRouter(t, nil)

	rec := serve(e, http.MethodGet, "/api/openapi.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"openapi":"3.0.3"`)
	assert.Contains(t, rec.Body.String(), `"/api/v1/orders/create-from-cart"`)

	rec = serve(e, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"CreateOrderFromCart"`)
}

func TestRouter_RejectsBeforeDispatch(t *testing.T) {
	menuItemID := kernel.NewUUID().String()
	orderID := kernel.NewUUID().String()

	tests := []struct {
		name          string
		authorization string
		method        string
		target        string
		body          string
		status        int
		reason        string
	}{
		{
			name:   "cart requires a caller",
			method: http.MethodPost, target: "/api/v1/cart",
			body:   `{"menuitem_id":"` + menuItemID + `","quantity":2}`,
			status: http.StatusUnauthorized, reason: "unauthenticated",
		},
		{
			name:   "clearing the cart requires a caller",
			method: http.MethodDelete, target: "/api/v1/cart",
			status: http.StatusUnauthorized, reason: "unauthenticated",
		},
		{
			name:   "orders require a caller",
			method: http.MethodGet, target: "/api/v1/orders",
			status: http.StatusUnauthorized, reason: "unauthenticated",
		},
		{
			name:   "users require a caller",
			method: http.MethodGet, target: "/api/v1/users",
			status: http.StatusUnauthorized, reason: "unauthenticated",
		},
		{
			name:   "quantity below one",
			method: http.MethodPost, target: "/api/v1/cart",
			body:   `{"menuitem_id":"` + menuItemID + `","quantity":0}`,
			status: http.StatusBadRequest, reason: "invalid_request",
		},
		{
			name:   "quantity above the cap",
			method: http.MethodPost, target: "/api/v1/cart",
			body:   `{"menuitem_id":"` + menuItemID + `","quantity":2000000000}`,
			status: http.StatusBadRequest, reason: "invalid_request",
		},
		{
			name:   "unknown body field",
			method: http.MethodPost, target: "/api/v1/cart",
			body:   `{"menuitem_id":"` + menuItemID + `","quantity":1,"price":"0.01"}`,
			status: http.StatusBadRequest, reason: "invalid_request",
		},
		{
			name:   "malformed price",
			method: http.MethodPost, target: "/api/v1/menu-items",
			body:   `{"title":"Soup","price":"cheap","category_id":"` + menuItemID + `"}`,
			status: http.StatusBadRequest, reason: "invalid_request",
		},
		{
			name:   "assign without body",
			method: http.MethodPost, target: "/api/v1/orders/" + orderID + "/assign",
			status: http.StatusBadRequest, reason: "invalid_request",
		},
		{
			name:   "unsupported sort",
			method: http.MethodGet, target: "/api/v1/menu-items?sort=calories",
			status: http.StatusBadRequest, reason: "invalid_request",
		},
		{
			name:   "order id is not a uuid",
			method: http.MethodGet, target: "/api/v1/orders/42",
			status: http.StatusBadRequest, reason: "invalid_request",
		},
		{
			name:   "unknown route",
			method: http.MethodGet, target: "/api/v1/couriers",
			status: http.StatusNotFound, reason: "not_found",
		},
		{
			name:          "invalid token",
			authorization: "Bearer not-a-jwt",
			method:        http.MethodGet, target: "/api/v1/orders",
			status: http.StatusUnauthorized, reason: "unauthenticated",
		},
	}

	e := newTestRouter(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveAs(e, tt.authorization, tt.method, tt.target, tt.body)

			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"reason":"`+tt.reason+`"`)
		})
	}
}
