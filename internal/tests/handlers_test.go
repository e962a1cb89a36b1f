package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "github.com/chetansai93/eshanee-chetan-backend/internal/api/http"
	"github.com/chetansai93/eshanee-chetan-backend/internal/domain"
	"github.com/chetansai93/eshanee-chetan-backend/internal/mocks"
	"github.com/chetansai93/eshanee-chetan-backend/internal/service"
)

func setupTestRouter(menuSvc *mocks.MenuServiceInterface, orderSvc *mocks.OrderServiceInterface) *mux.Router {
	handler := httpapi.NewHandler(menuSvc, orderSvc)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func asUser(req *http.Request, id, role string) *http.Request {
	req.Header.Set("X-User-Id", id)
	req.Header.Set("X-User-Role", role)
	return req
}

func TestHandler_health(t *testing.T) {
	router := setupTestRouter(mocks.NewMenuServiceInterface(t), mocks.NewOrderServiceInterface(t))

	req := httptest.NewRequest("GET", "/health", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"healthy"`)
}

func TestHandler_createOrder(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		userID       string
		prepareMocks func(orderSvc *mocks.OrderServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"items":[{"menu_item_id":7,"quantity":3}]}`,
			userID:  "5",
			prepareMocks: func(orderSvc *mocks.OrderServiceInterface) {
				orderSvc.On("Create", mock.Anything, 5, mock.Anything).
					Return(&domain.Order{ID: 1, OrderNumber: "EC123", TotalAmount: 750, Status: domain.StatusPending}, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"order_number":"EC123"`,
		},
		{
			name:         "unauthenticated",
			payload:      `{"items":[{"menu_item_id":7,"quantity":3}]}`,
			userID:       "",
			prepareMocks: func(orderSvc *mocks.OrderServiceInterface) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			userID:       "5",
			prepareMocks: func(orderSvc *mocks.OrderServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "empty_items",
			payload: `{"items":[]}`,
			userID:  "5",
			prepareMocks: func(orderSvc *mocks.OrderServiceInterface) {
				orderSvc.On("Create", mock.Anything, 5, mock.Anything).
					Return(nil, service.ErrEmptyOrder).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "at least one item",
		},
		{
			name:    "unavailable_item",
			payload: `{"items":[{"menu_item_id":99,"quantity":1}]}`,
			userID:  "5",
			prepareMocks: func(orderSvc *mocks.OrderServiceInterface) {
				orderSvc.On("Create", mock.Anything, 5, mock.Anything).
					Return(nil, service.ErrItemUnavailable).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "store_failure_is_generic",
			payload: `{"items":[{"menu_item_id":7,"quantity":1}]}`,
			userID:  "5",
			prepareMocks: func(orderSvc *mocks.OrderServiceInterface) {
				orderSvc.On("Create", mock.Anything, 5, mock.Anything).
					Return(nil, errors.New("pq: connection refused")).Once()
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Failed to create order",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orderSvc := mocks.NewOrderServiceInterface(t)
			router := setupTestRouter(mocks.NewMenuServiceInterface(t), orderSvc)
			testCase.prepareMocks(orderSvc)

			req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(testCase.payload))
			if testCase.userID != "" {
				req = asUser(req, testCase.userID, domain.RoleCustomer)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
			if testCase.expectedCode == http.StatusInternalServerError {
				assert.NotContains(t, recorder.Body.String(), "pq:")
			}
		})
	}
}

func TestHandler_createGuestOrder(t *testing.T) {
	t.Run("success_without_auth", func(t *testing.T) {
		orderSvc := mocks.NewOrderServiceInterface(t)
		router := setupTestRouter(mocks.NewMenuServiceInterface(t), orderSvc)

		orderSvc.On("CreateGuest", mock.Anything, mock.Anything).
			Return(&domain.Order{ID: 2, OrderNumber: "EC456", TotalAmount: 500, Status: domain.StatusPending,
				CustomerName: "John Doe", CustomerEmail: "g@b.com"}, nil).Once()

		payload := `{"customer_name":"John Doe","customer_phone":"5559876543","customer_email":"g@b.com",
			"items":[{"menu_item_id":7,"quantity":2}],"total_amount":999}`
		req := httptest.NewRequest("POST", "/api/orders/guest", bytes.NewBufferString(payload))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"order_number":"EC456"`)
	})

	t.Run("failure_includes_detail", func(t *testing.T) {
		orderSvc := mocks.NewOrderServiceInterface(t)
		router := setupTestRouter(mocks.NewMenuServiceInterface(t), orderSvc)

		orderSvc.On("CreateGuest", mock.Anything, mock.Anything).
			Return(nil, errors.New("failed to create guest order: users schema mismatch")).Once()

		payload := `{"customer_name":"John Doe","customer_phone":"5559876543","customer_email":"g@b.com",
			"items":[{"menu_item_id":7,"quantity":2}]}`
		req := httptest.NewRequest("POST", "/api/orders/guest", bytes.NewBufferString(payload))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "users schema mismatch")
	})

	t.Run("missing_profile", func(t *testing.T) {
		orderSvc := mocks.NewOrderServiceInterface(t)
		router := setupTestRouter(mocks.NewMenuServiceInterface(t), orderSvc)

		orderSvc.On("CreateGuest", mock.Anything, mock.Anything).
			Return(nil, service.ErrGuestProfile).Once()

		req := httptest.NewRequest("POST", "/api/orders/guest", bytes.NewBufferString(`{"items":[{"menu_item_id":7,"quantity":1}]}`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_listOrders_PassesCallerScope(t *testing.T) {
	orderSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(mocks.NewMenuServiceInterface(t), orderSvc)

	orderSvc.On("List", 5, domain.RoleCustomer, domain.StatusPending, "2026-08-29").
		Return([]domain.Order{{ID: 1, OrderNumber: "EC1"}}, nil).Once()

	req := asUser(httptest.NewRequest("GET", "/api/orders?status=pending&date=2026-08-29", nil), "5", domain.RoleCustomer)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Success bool           `json:"success"`
		Data    []domain.Order `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data, 1)
}

func TestHandler_getOrder_NotFound(t *testing.T) {
	orderSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(mocks.NewMenuServiceInterface(t), orderSvc)

	orderSvc.On("Get", 5, domain.RoleCustomer, 9).Return(nil, service.ErrOrderNotFound).Once()

	req := asUser(httptest.NewRequest("GET", "/api/orders/9", nil), "5", domain.RoleCustomer)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_orderQRCode(t *testing.T) {
	orderSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(mocks.NewMenuServiceInterface(t), orderSvc)

	orderSvc.On("Get", 5, domain.RoleCustomer, 9).
		Return(&domain.Order{ID: 9, OrderNumber: "EC789"}, nil).Once()

	req := asUser(httptest.NewRequest("GET", "/api/orders/9/qrcode", nil), "5", domain.RoleCustomer)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
	assert.NotEmpty(t, recorder.Body.Bytes())
}

func TestHandler_updateOrderStatus(t *testing.T) {
	tests := []struct {
		name         string
		role         string
		payload      string
		prepareMocks func(orderSvc *mocks.OrderServiceInterface)
		expectedCode int
	}{
		{
			name:    "employee_success",
			role:    domain.RoleEmployee,
			payload: `{"status":"preparing"}`,
			prepareMocks: func(orderSvc *mocks.OrderServiceInterface) {
				orderSvc.On("SetStatus", mock.Anything, 9, domain.StatusPreparing).
					Return(&domain.Order{ID: 9, OrderNumber: "EC1", Status: domain.StatusPreparing}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "customer_forbidden",
			role:         domain.RoleCustomer,
			payload:      `{"status":"preparing"}`,
			prepareMocks: func(orderSvc *mocks.OrderServiceInterface) {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:    "invalid_status",
			role:    domain.RoleAdmin,
			payload: `{"status":"shipped"}`,
			prepareMocks: func(orderSvc *mocks.OrderServiceInterface) {
				orderSvc.On("SetStatus", mock.Anything, 9, "shipped").
					Return(nil, service.ErrInvalidStatus).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "missing_order",
			role:    domain.RoleAdmin,
			payload: `{"status":"confirmed"}`,
			prepareMocks: func(orderSvc *mocks.OrderServiceInterface) {
				orderSvc.On("SetStatus", mock.Anything, 9, domain.StatusConfirmed).
					Return(nil, service.ErrOrderNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orderSvc := mocks.NewOrderServiceInterface(t)
			router := setupTestRouter(mocks.NewMenuServiceInterface(t), orderSvc)
			testCase.prepareMocks(orderSvc)

			req := asUser(httptest.NewRequest("PATCH", "/api/orders/9/status", bytes.NewBufferString(testCase.payload)), "2", testCase.role)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_orderStats(t *testing.T) {
	t.Run("employee_gets_stats", func(t *testing.T) {
		orderSvc := mocks.NewOrderServiceInterface(t)
		router := setupTestRouter(mocks.NewMenuServiceInterface(t), orderSvc)

		orderSvc.On("Stats", mock.Anything, "week", "").
			Return(&domain.OrderStats{TotalOrders: 12, TotalRevenue: 3400, UniqueCustomers: 4}, nil).Once()

		req := asUser(httptest.NewRequest("GET", "/api/orders/stats?period=week", nil), "2", domain.RoleEmployee)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"total_orders":12`)
	})

	t.Run("customer_forbidden", func(t *testing.T) {
		orderSvc := mocks.NewOrderServiceInterface(t)
		router := setupTestRouter(mocks.NewMenuServiceInterface(t), orderSvc)

		req := asUser(httptest.NewRequest("GET", "/api/orders/stats", nil), "5", domain.RoleCustomer)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func TestHandler_menu(t *testing.T) {
	t.Run("list_is_public", func(t *testing.T) {
		menuSvc := mocks.NewMenuServiceInterface(t)
		router := setupTestRouter(menuSvc, mocks.NewOrderServiceInterface(t))

		menuSvc.On("ListItems", "starters", (*bool)(nil)).
			Return([]domain.MenuItem{{ID: 7, Name: "Paneer Tikka", Price: 250}}, nil).Once()

		req := httptest.NewRequest("GET", "/api/menu?category=starters", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Paneer Tikka")
	})

	t.Run("get_missing_item", func(t *testing.T) {
		menuSvc := mocks.NewMenuServiceInterface(t)
		router := setupTestRouter(menuSvc, mocks.NewOrderServiceInterface(t))

		menuSvc.On("GetItem", 99).Return(nil, service.ErrItemNotFound).Once()

		req := httptest.NewRequest("GET", "/api/menu/99", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("create_requires_admin", func(t *testing.T) {
		menuSvc := mocks.NewMenuServiceInterface(t)
		router := setupTestRouter(menuSvc, mocks.NewOrderServiceInterface(t))

		payload := `{"name":"Paneer Tikka","description":"Chargrilled paneer skewers","price":320,"category":"starters"}`
		req := asUser(httptest.NewRequest("POST", "/api/menu", bytes.NewBufferString(payload)), "2", domain.RoleEmployee)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("delete_as_admin", func(t *testing.T) {
		menuSvc := mocks.NewMenuServiceInterface(t)
		router := setupTestRouter(menuSvc, mocks.NewOrderServiceInterface(t))

		menuSvc.On("DeleteItem", 7).Return(nil).Once()

		req := asUser(httptest.NewRequest("DELETE", "/api/menu/7", nil), "1", domain.RoleAdmin)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
