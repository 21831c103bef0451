package controllers

import (
	"errors"

	"github.com/Mikjohns10/instabite-backend/pkg/resp"
	"github.com/Mikjohns10/instabite-backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.RestaurantService
}

func NewMenuController(s *services.RestaurantService) *MenuController {
	return &MenuController{Service: s}
}

type MenuItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Price       int64  `json:"price" binding:"min=0"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
}

// POST /restaurant/:id/menu
func (ctl *MenuController) Add(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := ctl.Service.AddMenuItem(paramID(c), services.MenuItemIn{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"menu": menu})
}

// GET /restaurant/:id/menu
func (ctl *MenuController) List(c *gin.Context) {
	menu, err := ctl.Service.ListMenu(paramID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"menu": menu})
}
