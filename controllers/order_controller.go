package controllers

import (
	"errors"
	"net/http"

	"github.com/cleaningmadeasy/laundry-api/config"
	"github.com/cleaningmadeasy/laundry-api/pricing"
	"github.com/cleaningmadeasy/laundry-api/services"
	"github.com/gin-gonic/gin"
)

// SubmitOrderRequest represents the request body for submitting an order
type SubmitOrderRequest struct {
	FullName      string             `json:"full_name" binding:"required"`
	Phone         string             `json:"phone" binding:"required"`
	Email         string             `json:"email" binding:"required,email"`
	Location      string             `json:"location" binding:"required"`
	ServiceType   string             `json:"service_type" binding:"required"`
	OrderType     string             `json:"order_type" binding:"required,oneof=quick detailed"`
	QuickOrder    int                `json:"quick_order"`
	DetailedOrder pricing.ItemCounts `json:"detailed_order"`
	PickupDay     string             `json:"pickup_day" binding:"required,oneof=friday saturday"`
	TimeSlot      string             `json:"time_slot" binding:"required"`
	Notes         string             `json:"notes"`
}

// UpdateStatusRequest represents the request body for a status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// newOrderService wires the order service from the application globals
func newOrderService() *services.OrderService {
	db := config.GetDB()
	cfg := config.GetConfig()
	return services.NewOrderService(db, services.NewRandomIDGenerator(db), services.NewMailer(cfg), cfg)
}

// SubmitOrder handles POST /api/v1/orders - public order submission
func SubmitOrder(c *gin.Context) {
	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	order, err := newOrderService().Submit(services.SubmitOrderInput{
		FullName:      req.FullName,
		Phone:         req.Phone,
		Email:         req.Email,
		Location:      req.Location,
		ServiceType:   req.ServiceType,
		OrderType:     req.OrderType,
		QuickOrder:    req.QuickOrder,
		DetailedOrder: req.DetailedOrder,
		PickupDay:     req.PickupDay,
		TimeSlot:      req.TimeSlot,
		Notes:         req.Notes,
	})
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": vErr.Message,
				},
			})
		case errors.Is(err, services.ErrIDExhausted):
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ID_CONFLICT",
					"message": "Could not allocate an order identifier, please retry",
				},
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to submit order",
				},
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"order_id":     order.OrderID,
			"total_amount": order.TotalAmount,
		},
	})
}

// ListOrders handles GET /api/v1/orders - lists orders, newest first (admin only)
func ListOrders(c *gin.Context) {
	orders, err := newOrderService().List(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch orders",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

// GetOrder handles GET /api/v1/orders/:id - fetches one order by its public identifier (admin only)
func GetOrder(c *gin.Context) {
	order, err := newOrderService().Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ORDER_NOT_FOUND",
					"message": "Order not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch order",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status - moves an order
// through its lifecycle (admin only)
func UpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	order, err := newOrderService().SetStatus(c.Param("id"), req.Status)
	if err != nil {
		var vErr *services.ValidationError
		var tErr *services.TransitionError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": vErr.Message,
				},
			})
		case errors.As(err, &tErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_TRANSITION",
					"message": tErr.Error(),
				},
			})
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ORDER_NOT_FOUND",
					"message": "Order not found",
				},
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to update order status",
				},
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}
