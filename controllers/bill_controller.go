package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Mikjohns10/instabite-backend/pkg/resp"
	"github.com/Mikjohns10/instabite-backend/services"

	"github.com/gin-gonic/gin"
)

type BillController struct {
	Service *services.BillingService
}

func NewBillController(s *services.BillingService) *BillController {
	return &BillController{Service: s}
}

// GET /orders/:id/bill — renders the invoice and streams it as an
// attachment. Persists the order's tax fields as a side effect.
func (ctl *BillController) Download(c *gin.Context) {
	doc, filename, err := ctl.Service.GenerateBill(paramID(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrRender):
			resp.ServerError(c, err)
		default:
			resp.ServerError(c, err)
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", doc)
}
