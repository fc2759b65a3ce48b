package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/cornbelt-mill/cornbelt-site-api/config"
	"github.com/cornbelt-mill/cornbelt-site-api/models"
)

// bagPrices maps bag size to unit price in dollars.
var bagPrices = map[string]float64{
	"2lb":  7.50,
	"5lb":  16.00,
	"10lb": 28.00,
	"25lb": 62.00,
}

// OrderTotal computes the order total from bag size and quantity.
// Unknown sizes price at zero; the admin can correct them manually.
func OrderTotal(size string, quantity int) float64 {
	return bagPrices[size] * float64(quantity)
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	CustomerName string     `json:"customer_name" binding:"required"`
	Email        string     `json:"email" binding:"required,email"`
	Phone        string     `json:"phone"`
	Product      string     `json:"product" binding:"required"`
	Size         string     `json:"size" binding:"required"`
	Quantity     int        `json:"quantity" binding:"required,gt=0"`
	DeliveryDate *time.Time `json:"delivery_date"`
	Notes        string     `json:"notes"`
}

// UpdateOrderRequest represents the request body for an admin order update
type UpdateOrderRequest struct {
	Status       *string    `json:"status"`
	Notes        *string    `json:"notes"`
	Size         *string    `json:"size"`
	Quantity     *int       `json:"quantity"`
	DeliveryDate *time.Time `json:"delivery_date"`
}

// CreateOrder handles POST /api/orders - places a new order from the
// storefront order form (also used by the admin order screen)
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
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

	order := models.Order{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Product:      req.Product,
		Size:         req.Size,
		Quantity:     req.Quantity,
		DeliveryDate: req.DeliveryDate,
		Notes:        req.Notes,
		Status:       models.OrderStatusPending,
		TotalPrice:   OrderTotal(req.Size, req.Quantity),
	}

	db := config.GetDB()
	if err := db.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create order",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// ListOrders handles GET /api/admin/orders - lists all orders, newest first
func ListOrders(c *gin.Context) {
	db := config.GetDB()
	var orders []models.Order
	if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
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

// GetOrder handles GET /api/admin/orders/:id
func GetOrder(c *gin.Context) {
	db := config.GetDB()
	var order models.Order
	if err := db.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// UpdateOrder handles PUT /api/admin/orders/:id - admin edits to status,
// notes, size, quantity or delivery date. The total is recomputed when
// size or quantity change.
func UpdateOrder(c *gin.Context) {
	db := config.GetDB()
	var order models.Order
	if err := db.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	var req UpdateOrderRequest
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

	if req.Status != nil {
		if !models.ValidOrderStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_STATUS",
					"message": "Status must be one of pending, confirmed, shipped, delivered, cancelled",
				},
			})
			return
		}
		order.Status = *req.Status
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}
	if req.Size != nil {
		order.Size = *req.Size
	}
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_QUANTITY",
					"message": "Quantity must be greater than zero",
				},
			})
			return
		}
		order.Quantity = *req.Quantity
	}
	if req.DeliveryDate != nil {
		order.DeliveryDate = req.DeliveryDate
	}
	if req.Size != nil || req.Quantity != nil {
		order.TotalPrice = OrderTotal(order.Size, order.Quantity)
	}

	if err := db.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update order",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// DeleteOrder handles DELETE /api/admin/orders/:id
func DeleteOrder(c *gin.Context) {
	db := config.GetDB()
	var order models.Order
	if err := db.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	if err := db.Delete(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete order",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
