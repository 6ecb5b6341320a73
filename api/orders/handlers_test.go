package orders

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"ordertrack_server/lib"
	"ordertrack_server/mocks"
	"ordertrack_server/services"
	"ordertrack_server/structs"
	"ordertrack_server/structs/tables"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(store *mocks.MockOrderStorage) chi.Router {
	logger := gecho.NewDefaultLogger()
	orderService := services.NewOrderService(logger, &structs.Config{}, store)

	r := chi.NewRouter()
	NewOrderRoutesManager(logger, orderService).RegisterRoutes(r)
	return r
}

func doRequest(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrdersHandler(t *testing.T) {
	t.Run("valid batch returns 201", func(t *testing.T) {
		store := new(mocks.MockOrderStorage)
		store.On("InsertMany", mock.Anything, mock.AnythingOfType("[]tables.Order")).Return(1, nil)

		rec := doRequest(t, newTestRouter(store), http.MethodPost, "/api/orders/",
			`[{"client":"Acme","product":"Roses","quantity":"2","price":"10","date":"2024-03-01"}]`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		store.AssertExpectations(t)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		store := new(mocks.MockOrderStorage)

		rec := doRequest(t, newTestRouter(store), http.MethodPost, "/api/orders/", `{not json`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		store.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
	})

	t.Run("empty batch returns 400", func(t *testing.T) {
		store := new(mocks.MockOrderStorage)

		rec := doRequest(t, newTestRouter(store), http.MethodPost, "/api/orders/", `[]`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		store.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
	})

	t.Run("storage failure returns 500", func(t *testing.T) {
		store := new(mocks.MockOrderStorage)
		store.On("InsertMany", mock.Anything, mock.AnythingOfType("[]tables.Order")).
			Return(0, lib.ErrStorageUnavailable)

		rec := doRequest(t, newTestRouter(store), http.MethodPost, "/api/orders/",
			`[{"client":"Acme","product":"Roses","quantity":"2","price":"10","date":"2024-03-01"}]`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestListOrdersHandler(t *testing.T) {
	t.Run("returns 200 with the record set", func(t *testing.T) {
		store := new(mocks.MockOrderStorage)
		store.On("FindAll", mock.Anything).Return([]tables.Order{
			{Client: "Acme", Product: "Roses", Quantity: "2", Price: "10", Date: "2024-03-01"},
		}, nil)

		rec := doRequest(t, newTestRouter(store), http.MethodGet, "/api/orders/", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("storage failure returns 500", func(t *testing.T) {
		store := new(mocks.MockOrderStorage)
		store.On("FindAll", mock.Anything).Return(nil, lib.ErrStorageUnavailable)

		rec := doRequest(t, newTestRouter(store), http.MethodGet, "/api/orders/", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestUpdateOrderHandler(t *testing.T) {
	body := `{"client":"Acme","product":"Roses","date":"2024-03-01","quantity":"5"}`

	t.Run("matching key returns 200", func(t *testing.T) {
		store := new(mocks.MockOrderStorage)
		store.On("UpdateByKey", mock.Anything, mock.Anything, mock.Anything).Return(2, nil)

		rec := doRequest(t, newTestRouter(store), http.MethodPatch, "/api/orders/", body)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no match returns 404", func(t *testing.T) {
		store := new(mocks.MockOrderStorage)
		store.On("UpdateByKey", mock.Anything, mock.Anything, mock.Anything).Return(0, nil)

		rec := doRequest(t, newTestRouter(store), http.MethodPatch, "/api/orders/", body)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing key fields returns 400", func(t *testing.T) {
		store := new(mocks.MockOrderStorage)

		rec := doRequest(t, newTestRouter(store), http.MethodPatch, "/api/orders/",
			`{"client":"Acme"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		store.AssertNotCalled(t, "UpdateByKey", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteOrderHandler(t *testing.T) {
	body := `{"client":"Acme","product":"Roses","date":"2024-03-01"}`

	t.Run("matching key returns 200", func(t *testing.T) {
		store := new(mocks.MockOrderStorage)
		store.On("DeleteByKey", mock.Anything, mock.Anything).Return(1, nil)

		rec := doRequest(t, newTestRouter(store), http.MethodDelete, "/api/orders/", body)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no match returns 404", func(t *testing.T) {
		store := new(mocks.MockOrderStorage)
		store.On("DeleteByKey", mock.Anything, mock.Anything).Return(0, nil)

		rec := doRequest(t, newTestRouter(store), http.MethodDelete, "/api/orders/", body)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDateSummaryHandler(t *testing.T) {
	store := new(mocks.MockOrderStorage)
	store.On("FindAll", mock.Anything).Return([]tables.Order{
		{Client: "Acme", Product: "Roses", Quantity: "2", Price: "100", Date: "2024-03-01"},
	}, nil)

	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/api/orders/summary/2024-03-01", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDashboardHandler(t *testing.T) {
	store := new(mocks.MockOrderStorage)
	store.On("FindAll", mock.Anything).Return([]tables.Order{
		{Client: "Acme", Product: "Roses", Quantity: "2", Price: "100", Date: "2024-03-01"},
	}, nil)

	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/api/orders/dashboard", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
