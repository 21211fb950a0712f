package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adapter "campuseats/internal/adapters/in/http"
	"campuseats/internal/adapters/out/inmem"
	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uowFactory struct{ store *inmem.Store }

func (f uowFactory) Create() commands.UoW { return inmem.NewUnitOfWork(f.store) }

type orderUoWFactory struct{ store *inmem.Store }

func (f orderUoWFactory) Create() commands.OrderUoW { return inmem.NewUnitOfWork(f.store) }

type paymentUoWFactory struct{ store *inmem.Store }

func (f paymentUoWFactory) Create() commands.PaymentUoW { return inmem.NewUnitOfWork(f.store) }

type courierUoWFactory struct{ store *inmem.Store }

func (f courierUoWFactory) Create() commands.CourierUoW { return inmem.NewUnitOfWork(f.store) }

type customerUoWFactory struct{ store *inmem.Store }

func (f customerUoWFactory) Create() commands.CustomerUoW { return inmem.NewUnitOfWork(f.store) }

type readUoWFactory struct{ store *inmem.Store }

func (f readUoWFactory) Create() ports.UnitOfWork { return inmem.NewUnitOfWork(f.store) }

func newTestServer() (*echo.Echo, *inmem.Store) {
	store := inmem.NewStore()
	numbers := order.NewNumberSequence()

	server := adapter.NewServer(
		commands.NewRegisterCustomerCommandHandler(customerUoWFactory{store}),
		commands.NewRegisterCourierCommandHandler(courierUoWFactory{store}),
		commands.NewPlaceOrderCommandHandler(uowFactory{store}, numbers),
		commands.NewAddExtraCommandHandler(orderUoWFactory{store}),
		commands.NewChangeAddressCommandHandler(orderUoWFactory{store}),
		commands.NewPayOrderCommandHandler(paymentUoWFactory{store}),
		commands.NewChangeOrderStateCommandHandler(orderUoWFactory{store}),
		queries.NewGetKitchenQueueQueryHandler(readUoWFactory{store}),
		queries.NewGetReadyDeliveriesQueryHandler(readUoWFactory{store}),
		queries.NewGetOrderDetailsQueryHandler(readUoWFactory{store}),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e, store
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registerCustomer(t *testing.T, e *echo.Echo, studentNumber string) string {
	t.Helper()
	body := `{"name":"Alex","deliveryAddress":"12 Rue Galilee","studentNumber":"` + studentNumber + `"}`
	rec := doJSON(t, e, http.MethodPost, "/api/v1/customers", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created.ID
}

func placeOrder(t *testing.T, e *echo.Echo, customerID, mode string) string {
	t.Helper()
	body := `{"customerId":"` + customerID + `","partySize":1,"mode":"` + mode + `",` +
		`"lines":[{"name":"Lasagna","unitPrice":25.00,"category":"main"}]}`
	rec := doJSON(t, e, http.MethodPost, "/api/v1/orders", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var placed struct {
		Number string `json:"number"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &placed))
	return placed.Number
}

func TestServer(t *testing.T) {
	t.Run("should report health", func(t *testing.T) {
		e, _ := newTestServer()

		rec := doJSON(t, e, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should place, pay and serve an order over the API", func(t *testing.T) {
		e, _ := newTestServer()
		customerID := registerCustomer(t, e, "")
		number := placeOrder(t, e, customerID, "ON_SITE")

		rec := doJSON(t, e, http.MethodPost, "/api/v1/orders/"+number+"/payment",
			`{"method":"cash","tendered":30.00}`)
		require.Equal(t, http.StatusNoContent, rec.Code)

		for _, target := range []string{"READY", "SERVED"} {
			rec = doJSON(t, e, http.MethodPost, "/api/v1/orders/"+number+"/state",
				`{"target":"`+target+`"}`)
			require.Equal(t, http.StatusNoContent, rec.Code)
		}

		rec = doJSON(t, e, http.MethodGet, "/api/v1/orders/"+number, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var details struct {
			Status string `json:"status"`
			Paid   bool   `json:"paid"`
			Total  string `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &details))
		assert.Equal(t, "SERVED", details.Status)
		assert.True(t, details.Paid)
		assert.Equal(t, "25.00", details.Total)
	})

	t.Run("should add an extra and reflect it in the total", func(t *testing.T) {
		e, _ := newTestServer()
		customerID := registerCustomer(t, e, "")
		number := placeOrder(t, e, customerID, "ON_SITE")

		rec := doJSON(t, e, http.MethodPost, "/api/v1/orders/"+number+"/extras",
			`{"name":"Cola","price":2.00,"kind":"Drink","quantity":1}`)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, e, http.MethodGet, "/api/v1/orders/"+number, "")
		var details struct {
			Total string `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &details))
		assert.Equal(t, "27.00", details.Total)
	})

	t.Run("should map unknown orders to 404", func(t *testing.T) {
		e, _ := newTestServer()

		rec := doJSON(t, e, http.MethodGet, "/api/v1/orders/ORD-9999", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should map rejected transitions to 409", func(t *testing.T) {
		e, _ := newTestServer()
		customerID := registerCustomer(t, e, "")
		number := placeOrder(t, e, customerID, "ON_SITE")

		rec := doJSON(t, e, http.MethodPost, "/api/v1/orders/"+number+"/state",
			`{"target":"IN_PREPARATION"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should map a failed payment to 409", func(t *testing.T) {
		e, _ := newTestServer()
		customerID := registerCustomer(t, e, "")
		number := placeOrder(t, e, customerID, "ON_SITE")

		rec := doJSON(t, e, http.MethodPost, "/api/v1/orders/"+number+"/payment",
			`{"method":"cash","tendered":5.00}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should reject an invalid delivery mode", func(t *testing.T) {
		e, _ := newTestServer()
		customerID := registerCustomer(t, e, "")

		body := `{"customerId":"` + customerID + `","partySize":1,"mode":"DRONE",` +
			`"lines":[{"name":"Lasagna","unitPrice":25.00}]}`
		rec := doJSON(t, e, http.MethodPost, "/api/v1/orders", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should list the kitchen queue", func(t *testing.T) {
		e, _ := newTestServer()
		customerID := registerCustomer(t, e, "")
		number := placeOrder(t, e, customerID, "ON_SITE")

		rec := doJSON(t, e, http.MethodGet, "/api/v1/kitchen/queue", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var queue []struct {
			Number string `json:"number"`
			Status string `json:"status"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &queue))
		require.Len(t, queue, 1)
		assert.Equal(t, number, queue[0].Number)
		assert.Equal(t, "NEW", queue[0].Status)
	})

	t.Run("should list ready deliveries", func(t *testing.T) {
		e, _ := newTestServer()
		customerID := registerCustomer(t, e, "")
		number := placeOrder(t, e, customerID, "DELIVERY")

		rec := doJSON(t, e, http.MethodPost, "/api/v1/orders/"+number+"/payment",
			`{"method":"cash","tendered":30.00}`)
		require.Equal(t, http.StatusNoContent, rec.Code)
		rec = doJSON(t, e, http.MethodPost, "/api/v1/orders/"+number+"/state",
			`{"target":"READY"}`)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, e, http.MethodGet, "/api/v1/deliveries/ready", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var deliveries []struct {
			Number  string `json:"number"`
			Address string `json:"address"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deliveries))
		require.Len(t, deliveries, 1)
		assert.Equal(t, "12 Rue Galilee", deliveries[0].Address)
	})
}
