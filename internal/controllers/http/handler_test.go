package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Dhanuka2552/food/internal/domain"
	"github.com/Dhanuka2552/food/internal/infra/rabbitmq"
	"github.com/Dhanuka2552/food/internal/mocks"
	"github.com/Dhanuka2552/food/internal/services"
)

func setupRouter(menuRepo *mocks.MockMenuRepository, orderRepo *mocks.MockOrderRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	menuService := services.NewMenuService(menuRepo)
	orderService := services.NewOrderService(orderRepo, menuRepo, rabbitmq.NoopPublisher{})
	statsService := services.NewStatsService(orderRepo, menuRepo)

	r := gin.New()
	NewHandler(menuService, orderService, statsService).RegisterRoutes(r)
	return r
}

func perform(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func menuFixture() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: 1, Name: "Pizza", Price: 1200},
		{ID: 2, Name: "Burger", Price: 600},
		{ID: 3, Name: "Pasta", Price: 900},
	}
}

func TestGetMenu(t *testing.T) {
	menuRepo := new(mocks.MockMenuRepository)
	menuRepo.On("FindAll").Return(menuFixture(), nil)
	r := setupRouter(menuRepo, new(mocks.MockOrderRepository))

	w, envelope := perform(t, r, http.MethodGet, "/api/menu", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, envelope["success"])
	assert.Len(t, envelope["data"], 3)
}

func TestGetMenuItem_NotFound(t *testing.T) {
	menuRepo := new(mocks.MockMenuRepository)
	menuRepo.On("FindByID", 99).Return(nil, nil)
	r := setupRouter(menuRepo, new(mocks.MockOrderRepository))

	w, envelope := perform(t, r, http.MethodGet, "/api/menu/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "Menu item not found", envelope["error"])
}

func TestGetMenuItem_NonNumericID(t *testing.T) {
	r := setupRouter(new(mocks.MockMenuRepository), new(mocks.MockOrderRepository))

	w, _ := perform(t, r, http.MethodGet, "/api/menu/abc", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOrder_Success(t *testing.T) {
	menuRepo := new(mocks.MockMenuRepository)
	menuRepo.On("FindByName", "Pizza").Return(&domain.MenuItem{ID: 1, Name: "Pizza", Price: 1200}, nil)
	orderRepo := new(mocks.MockOrderRepository)
	orderRepo.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil)
	r := setupRouter(menuRepo, orderRepo)

	w, envelope := perform(t, r, http.MethodPost, "/api/orders", gin.H{
		"item":     "Pizza",
		"quantity": 2,
		"name":     "John Doe",
		"phone":    "+1 (555) 123-4567",
		"address":  "42 Baker Street",
		"payment":  "cash",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, "Order placed successfully", envelope["message"])

	data := envelope["data"].(map[string]any)
	assert.Equal(t, float64(2400), data["totalPrice"])
	assert.Equal(t, float64(1200), data["price"])
	assert.Equal(t, "pending", data["status"])
}

// The storefront sometimes sends quantity as a numeric string.
func TestCreateOrder_StringQuantity(t *testing.T) {
	menuRepo := new(mocks.MockMenuRepository)
	menuRepo.On("FindByName", "Burger").Return(&domain.MenuItem{ID: 2, Name: "Burger", Price: 600}, nil)
	orderRepo := new(mocks.MockOrderRepository)
	orderRepo.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil)
	r := setupRouter(menuRepo, orderRepo)

	w, envelope := perform(t, r, http.MethodPost, "/api/orders", gin.H{
		"item":     "Burger",
		"quantity": "3",
		"name":     "Jane Doe",
		"phone":    "5551234567",
		"address":  "42 Baker Street",
		"payment":  "card",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, float64(1800), data["totalPrice"])
}

func TestCreateOrder_ValidationErrors(t *testing.T) {
	tests := []struct {
		name          string
		body          gin.H
		expectedError string
	}{
		{
			name: "missing fields",
			body: gin.H{
				"item": "Pizza", "quantity": 1, "name": "John Doe",
			},
			expectedError: "All fields are required",
		},
		{
			name: "name with digits",
			body: gin.H{
				"item": "Pizza", "quantity": 1, "name": "John123",
				"phone": "5551234567", "address": "42 Baker Street", "payment": "cash",
			},
			expectedError: "Name should contain only letters.",
		},
		{
			name: "unknown item",
			body: gin.H{
				"item": "Sushi", "quantity": 1, "name": "John Doe",
				"phone": "5551234567", "address": "42 Baker Street", "payment": "cash",
			},
			expectedError: "Invalid menu item",
		},
		{
			name: "short phone",
			body: gin.H{
				"item": "Pizza", "quantity": 1, "name": "John Doe",
				"phone": "123", "address": "42 Baker Street", "payment": "cash",
			},
			expectedError: "Enter a valid phone number (7-15 digits)",
		},
		{
			name: "short address",
			body: gin.H{
				"item": "Pizza", "quantity": 1, "name": "John Doe",
				"phone": "5551234567", "address": "abc", "payment": "cash",
			},
			expectedError: "Address must be at least 5 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menuRepo := new(mocks.MockMenuRepository)
			menuRepo.On("FindByName", "Pizza").Return(&domain.MenuItem{ID: 1, Name: "Pizza", Price: 1200}, nil).Maybe()
			menuRepo.On("FindByName", "Sushi").Return(nil, nil).Maybe()
			r := setupRouter(menuRepo, new(mocks.MockOrderRepository))

			w, envelope := perform(t, r, http.MethodPost, "/api/orders", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, false, envelope["success"])
			assert.Equal(t, tt.expectedError, envelope["error"])
		})
	}
}

func TestCreateOrder_SaveFailure(t *testing.T) {
	menuRepo := new(mocks.MockMenuRepository)
	menuRepo.On("FindByName", "Pizza").Return(&domain.MenuItem{ID: 1, Name: "Pizza", Price: 1200}, nil)
	orderRepo := new(mocks.MockOrderRepository)
	orderRepo.On("Save", mock.AnythingOfType("*domain.Order")).Return(assert.AnError)
	r := setupRouter(menuRepo, orderRepo)

	w, envelope := perform(t, r, http.MethodPost, "/api/orders", gin.H{
		"item": "Pizza", "quantity": 1, "name": "John Doe",
		"phone": "5551234567", "address": "42 Baker Street", "payment": "cash",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to save order", envelope["error"])
}

func TestGetOrder_NotFound(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	orderRepo.On("FindByID", int64(12345)).Return(nil, nil)
	r := setupRouter(new(mocks.MockMenuRepository), orderRepo)

	w, envelope := perform(t, r, http.MethodGet, "/api/orders/12345", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", envelope["error"])
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		r := setupRouter(new(mocks.MockMenuRepository), new(mocks.MockOrderRepository))

		w, envelope := perform(t, r, http.MethodPatch, "/api/orders/1", gin.H{"status": "shipped"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Valid status is required", envelope["error"])
	})

	t.Run("success", func(t *testing.T) {
		existing := &domain.Order{
			ID:         1,
			Item:       "Pizza",
			ItemID:     1,
			Quantity:   1,
			Price:      1200,
			TotalPrice: 1200,
			Status:     domain.StatusPending,
			CreatedAt:  time.Now().Add(-time.Minute),
			UpdatedAt:  time.Now().Add(-time.Minute),
		}
		orderRepo := new(mocks.MockOrderRepository)
		orderRepo.On("FindByID", int64(1)).Return(existing, nil)
		orderRepo.On("Update", mock.AnythingOfType("*domain.Order")).Return(true, nil)
		r := setupRouter(new(mocks.MockMenuRepository), orderRepo)

		w, envelope := perform(t, r, http.MethodPatch, "/api/orders/1", gin.H{"status": "delivered"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Order status updated", envelope["message"])
		data := envelope["data"].(map[string]any)
		assert.Equal(t, "delivered", data["status"])
	})

	t.Run("not found", func(t *testing.T) {
		orderRepo := new(mocks.MockOrderRepository)
		orderRepo.On("FindByID", int64(2)).Return(nil, nil)
		r := setupRouter(new(mocks.MockMenuRepository), orderRepo)

		w, envelope := perform(t, r, http.MethodPatch, "/api/orders/2", gin.H{"status": "delivered"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Order not found", envelope["error"])
	})
}

func TestDeleteOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		orderRepo := new(mocks.MockOrderRepository)
		orderRepo.On("Delete", int64(1)).Return(true, nil)
		r := setupRouter(new(mocks.MockMenuRepository), orderRepo)

		w, envelope := perform(t, r, http.MethodDelete, "/api/orders/1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Order deleted successfully", envelope["message"])
	})

	t.Run("not found", func(t *testing.T) {
		orderRepo := new(mocks.MockOrderRepository)
		orderRepo.On("Delete", int64(2)).Return(false, nil)
		r := setupRouter(new(mocks.MockMenuRepository), orderRepo)

		w, envelope := perform(t, r, http.MethodDelete, "/api/orders/2", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Order not found", envelope["error"])
	})
}

func TestGetStats(t *testing.T) {
	menuRepo := new(mocks.MockMenuRepository)
	menuRepo.On("FindAll").Return(menuFixture(), nil)
	orderRepo := new(mocks.MockOrderRepository)
	orderRepo.On("FindAll").Return([]domain.Order{}, nil)
	r := setupRouter(menuRepo, orderRepo)

	w, envelope := perform(t, r, http.MethodGet, "/api/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, float64(0), data["totalOrders"])
	assert.Equal(t, float64(0), data["totalRevenue"])

	byStatus := data["ordersByStatus"].(map[string]any)
	assert.Len(t, byStatus, 6)
	assert.Equal(t, float64(0), byStatus["out_for_delivery"])

	items := data["popularItems"].([]any)
	assert.Len(t, items, 3)
}
