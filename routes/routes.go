package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Kadalibhanu05/Gitam-Campus-Eats/configs"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/controllers"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/middlewares"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/repository"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/services"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/session"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, store session.Store, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.SessionMiddleware(store, cfg))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	canteenRepo := repository.NewCanteenRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo)
	cartSvc := services.NewCartService(store)
	canteenSvc := services.NewCanteenService(canteenRepo)
	orderSvc := services.NewOrderService(orderRepo, cartSvc)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, store, cfg)
	cartCtrl := controllers.NewCartController(cartSvc, cfg)
	canteenCtrl := controllers.NewCanteenController(canteenSvc, cfg)
	orderCtrl := controllers.NewOrderController(orderSvc)

	// Auth (public)
	r.POST("/signup", authCtrl.Signup)
	r.POST("/login", authCtrl.Login)
	r.GET("/logout", authCtrl.Logout)

	// Browsing (public)
	r.GET("/canteens", canteenCtrl.List)
	r.GET("/menu/:canteenId", canteenCtrl.Menu)

	// Cart + orders (logged-in users)
	u := r.Group("/", middlewares.RequireUser())
	{
		u.POST("/add-to-cart", cartCtrl.Add)
		u.POST("/update-cart-quantity", cartCtrl.UpdateQuantity)
		u.GET("/cart", cartCtrl.View)
		u.POST("/place-order", orderCtrl.Place)
		u.GET("/orders", orderCtrl.ListForMe)
	}

	// Canteen management (owners only)
	o := r.Group("/", middlewares.RequireRole("owner"))
	{
		o.POST("/add-canteen", canteenCtrl.Create)
		o.GET("/edit-canteen/:id", canteenCtrl.EditView)
		o.POST("/edit-canteen/:id", canteenCtrl.AppendItems)
		o.POST("/delete-item", canteenCtrl.DeleteItem)
	}
}
