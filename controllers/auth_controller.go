package controllers

import (
	"errors"
	"time"

	"github.com/Mikjohns10/instabite-backend/pkg/resp"
	"github.com/Mikjohns10/instabite-backend/services"
	"github.com/Mikjohns10/instabite-backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	UpiID    string `json:"upiId"`
	QrRef    string `json:"qrRef"`
	Gstin    string `json:"gstin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Service   *services.AuthService
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthController(s *services.AuthService, secret string, ttl time.Duration) *AuthController {
	return &AuthController{Service: s, JWTSecret: secret, JWTTTL: ttl}
}

// POST /restaurant/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := a.Service.Register(services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
		UpiID:    req.UpiID,
		QrRef:    req.QrRef,
		Gstin:    req.Gstin,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	token, err := utils.GenerateToken(rest.ID, a.JWTSecret, a.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"id": rest.ID, "name": rest.Name, "email": rest.Email,
		"token": token,
	})
}

// POST /restaurant/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := a.Service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrInvalidCredential) {
			resp.Unauthorized(c, "invalid credentials")
			return
		}
		resp.ServerError(c, err)
		return
	}

	token, err := utils.GenerateToken(rest.ID, a.JWTSecret, a.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"id": rest.ID, "name": rest.Name, "email": rest.Email,
		"token": token,
	})
}

// GET /restaurant/me (requires token)
func (a *AuthController) Me(c *gin.Context) {
	rest, err := a.Service.GetProfile(utils.CurrentRestaurantID(c))
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
