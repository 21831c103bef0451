package routes

import (
	"github.com/Mikjohns10/instabite-backend/configs"
	"github.com/Mikjohns10/instabite-backend/controllers"
	"github.com/Mikjohns10/instabite-backend/middlewares"
	"github.com/Mikjohns10/instabite-backend/repository"
	"github.com/Mikjohns10/instabite-backend/services"
	"github.com/Mikjohns10/instabite-backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, feed *ws.OrderFeedHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) })

	// Repositories
	restRepo := repository.NewRestaurantRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(restRepo)
	restSvc := services.NewRestaurantService(restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, restRepo, feed)
	billSvc := services.NewBillingService(orderRepo, restRepo, cfg.CurrencyPrefix)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cfg.JWTSecret, cfg.JWTTTL)
	restCtrl := controllers.NewRestaurantController(restSvc)
	menuCtrl := controllers.NewMenuController(restSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	billCtrl := controllers.NewBillController(billSvc)

	// Restaurant accounts
	r.POST("/restaurant/register", authCtrl.Register)
	r.POST("/restaurant/login", authCtrl.Login)
	r.GET("/restaurant/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	r.GET("/restaurant/:id", restCtrl.Get)
	r.PUT("/restaurant/:id/payment-info", restCtrl.UpdatePaymentInfo)
	r.GET("/restaurant/:id/payment-qr", restCtrl.PaymentQR)
	r.POST("/restaurant/:id/menu", menuCtrl.Add)
	r.GET("/restaurant/:id/menu", menuCtrl.List)
	r.GET("/restaurants", restCtrl.List)

	// Orders
	r.POST("/orders", orderCtrl.Create)
	r.GET("/restaurant/:id/orders", orderCtrl.ListForRestaurant)
	r.PUT("/orders/:id/status", orderCtrl.UpdateStatus)
	r.GET("/orders/:id", orderCtrl.Get)
	r.GET("/orders/:id/bill", billCtrl.Download)

	// Live order feed
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), feed.HandleWebSocket)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"success": false, "error": "route not found"})
	})
}
