package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Dhanuka2552/food/internal/domain"
	"github.com/Dhanuka2552/food/internal/services"
)

type Handler struct {
	menu   *services.MenuService
	orders *services.OrderService
	stats  *services.StatsService
}

func NewHandler(menu *services.MenuService, orders *services.OrderService, stats *services.StatsService) *Handler {
	return &Handler{menu: menu, orders: orders, stats: stats}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/menu", h.GetMenu)
	api.GET("/menu/:id", h.GetMenuItem)
	api.POST("/orders", h.CreateOrder)
	api.GET("/orders", h.GetOrders)
	api.GET("/orders/:id", h.GetOrder)
	api.PATCH("/orders/:id", h.UpdateOrderStatus)
	api.DELETE("/orders/:id", h.DeleteOrder)
	api.GET("/stats", h.GetStats)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

func (h *Handler) GetMenu(c *gin.Context) {
	items, err := h.menu.ListItems()
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch menu")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

func (h *Handler) GetMenuItem(c *gin.Context) {
	// A non-numeric id cannot match any item, so it is a plain 404.
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Menu item not found")
		return
	}

	item, err := h.menu.GetItem(id)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			fail(c, http.StatusNotFound, "Menu item not found")
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to fetch menu item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), services.CreateOrderInput{
		Item:     req.Item,
		Quantity: quantityString(req.Quantity),
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Payment:  req.Payment,
	})
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			fail(c, http.StatusBadRequest, verr.Message)
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to save order")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"data":    order,
	})
}

func (h *Handler) GetOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders()
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusNotFound, "Order not found")
		return
	}

	order, err := h.orders.GetOrder(id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			fail(c, http.StatusNotFound, "Order not found")
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to fetch order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusNotFound, "Order not found")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Valid status is required")
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), id, domain.OrderStatus(req.Status))
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			fail(c, http.StatusBadRequest, verr.Message)
		case errors.Is(err, services.ErrOrderNotFound):
			fail(c, http.StatusNotFound, "Order not found")
		default:
			fail(c, http.StatusInternalServerError, "Failed to update order")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated",
		"data":    order,
	})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusNotFound, "Order not found")
		return
	}

	if err := h.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			fail(c, http.StatusNotFound, "Order not found")
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to delete order")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted successfully"})
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.stats.ComputeStats(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

// quantityString flattens the loosely typed quantity field to the string
// the service validates.
func quantityString(v any) string {
	switch q := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(q)
	case float64:
		return strconv.FormatFloat(q, 'f', -1, 64)
	default:
		return ""
	}
}
