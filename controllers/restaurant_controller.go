package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Mikjohns10/instabite-backend/pkg/resp"
	"github.com/Mikjohns10/instabite-backend/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: s}
}

func paramID(c *gin.Context) uint {
	id, _ := strconv.Atoi(c.Param("id"))
	return uint(id)
}

// GET /restaurant/:id
func (ctl *RestaurantController) Get(c *gin.Context) {
	rest, err := ctl.Service.Get(paramID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurant": rest})
}

// GET /restaurants
func (ctl *RestaurantController) List(c *gin.Context) {
	rests, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurants": rests})
}

type PaymentInfoRequest struct {
	UpiID *string `json:"upiId"`
	QrRef *string `json:"qrRef"`
	Gstin *string `json:"gstin"`
}

// PUT /restaurant/:id/payment-info
func (ctl *RestaurantController) UpdatePaymentInfo(c *gin.Context) {
	var req PaymentInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ctl.Service.UpdatePaymentInfo(paramID(c), services.PaymentInfoIn{
		UpiID: req.UpiID, QrRef: req.QrRef, Gstin: req.Gstin,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"upiId": rest.UpiID, "qrRef": rest.QrRef, "gstin": rest.Gstin,
	})
}

// GET /restaurant/:id/payment-qr
func (ctl *RestaurantController) PaymentQR(c *gin.Context) {
	png, err := ctl.Service.PaymentQR(paramID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
