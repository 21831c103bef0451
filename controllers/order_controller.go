package controllers

import (
	"errors"

	"github.com/Mikjohns10/instabite-backend/pkg/resp"
	"github.com/Mikjohns10/instabite-backend/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

type CreateOrderRequest struct {
	RestaurantID        uint                   `json:"restaurantId" binding:"required"`
	CustomerName        string                 `json:"customerName" binding:"required"`
	CustomerPhone       string                 `json:"customerPhone" binding:"required"`
	CustomerAddress     string                 `json:"customerAddress" binding:"required"`
	CustomerEmail       string                 `json:"customerEmail"`
	Items               []services.OrderLineIn `json:"items" binding:"required,min=1"`
	SpecialInstructions string                 `json:"specialInstructions"`
	PaymentMethod       string                 `json:"paymentMethod"`
}

// POST /orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Service.Create(&services.CreateOrderReq{
		RestaurantID:        req.RestaurantID,
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		CustomerAddress:     req.CustomerAddress,
		CustomerEmail:       req.CustomerEmail,
		Lines:               req.Items,
		SpecialInstructions: req.SpecialInstructions,
		PaymentMethod:       req.PaymentMethod,
	})
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	resp.Created(c, gin.H{
		"order":   order,
		"billUrl": services.BillPath(order.ID),
	})
}

// GET /restaurant/:id/orders
func (ctl *OrderController) ListForRestaurant(c *gin.Context) {
	orders, err := ctl.Service.ListForRestaurant(paramID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Service.UpdateStatus(paramID(c), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

// GET /orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	order, err := ctl.Service.Get(paramID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"order":   order,
		"billUrl": services.BillPath(order.ID),
	})
}
