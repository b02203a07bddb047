package routes

import (
	"github.com/sandarunihara/Online-Food-Ordering-System/configs"
	"github.com/sandarunihara/Online-Food-Ordering-System/controllers"
	"github.com/sandarunihara/Online-Food-Ordering-System/middlewares"
	"github.com/sandarunihara/Online-Food-Ordering-System/repository"
	"github.com/sandarunihara/Online-Food-Ordering-System/services"
	"github.com/sandarunihara/Online-Food-Ordering-System/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(db, userRepo, addressRepo)
	restSvc := services.NewRestaurantService(db, restRepo, userRepo)
	foodSvc := services.NewFoodService(db, foodRepo, ingredientRepo)
	ingredientSvc := services.NewIngredientService(ingredientRepo, restRepo)
	cartSvc := services.NewCartService(db, cartRepo, foodRepo)
	orderSvc := services.NewOrderService(db, orderRepo, addressRepo, userRepo, restRepo, cartSvc)

	// Order status feed
	feed := ws.NewOrderFeed()
	go feed.Run()
	orderSvc.OnStatusChange = feed.PublishStatus

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminOrderCtrl := controllers.NewAdminOrderController(orderSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	adminRestCtrl := controllers.NewAdminRestaurantController(restSvc)
	foodCtrl := controllers.NewFoodController(foodSvc)
	adminFoodCtrl := controllers.NewAdminFoodController(foodSvc, restSvc)
	ingredientCtrl := controllers.NewIngredientController(ingredientSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	ownerOrAdmin := middlewares.AuthMiddleware(cfg.JWTSecret, "owner", "admin")

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/signup", authCtrl.Register)
		a.POST("/signin", authCtrl.Login)
	}

	api := r.Group("/api", auth)
	{
		api.GET("/auth/me", authCtrl.Me)
		api.PUT("/users/profile", userCtrl.UpdateProfile)
		api.GET("/users/addresses", userCtrl.Addresses)

		// Cart
		api.GET("/cart", cartCtrl.Get)
		api.PUT("/cart/add", cartCtrl.AddItem)
		api.PUT("/cart/clear", cartCtrl.Clear)
		api.PUT("/cart-item/update", cartCtrl.UpdateItemQuantity)
		api.DELETE("/cart-item/:id/remove", cartCtrl.RemoveItem)

		// Orders (customer)
		api.POST("/order", orderCtrl.Create)
		api.GET("/order/user", orderCtrl.ListForMe)
		api.GET("/order/:id", orderCtrl.Detail)
		api.DELETE("/order/:id", orderCtrl.Cancel)

		// Catalog (customer)
		api.GET("/restaurants", restCtrl.List)
		api.GET("/restaurants/search", restCtrl.Search)
		api.GET("/restaurants/:id", restCtrl.Detail)
		api.PUT("/restaurants/:id/add-favorites", restCtrl.ToggleFavorite)
		api.GET("/food/restaurant/:id", foodCtrl.RestaurantMenu)
		api.GET("/food/search", foodCtrl.Search)
	}

	admin := r.Group("/api/admin", ownerOrAdmin)
	{
		admin.GET("/order/restaurant/:id", adminOrderCtrl.ListForRestaurant)
		admin.PUT("/order/:id/:orderStatus", adminOrderCtrl.UpdateStatus)

		admin.POST("/restaurants", adminRestCtrl.Create)
		admin.PUT("/restaurants/:id", adminRestCtrl.Update)
		admin.DELETE("/restaurants/:id", adminRestCtrl.Delete)
		admin.PUT("/restaurants/:id/status", adminRestCtrl.ToggleOpen)
		admin.GET("/restaurants/user", adminRestCtrl.Mine)

		admin.POST("/food", adminFoodCtrl.Create)
		admin.PUT("/food/:id", adminFoodCtrl.Update)
		admin.DELETE("/food/:id", adminFoodCtrl.Delete)
		admin.PUT("/food/:id/availability", adminFoodCtrl.ToggleAvailability)

		admin.POST("/ingredients/category", ingredientCtrl.CreateCategory)
		admin.POST("/ingredients", ingredientCtrl.CreateItem)
		admin.GET("/ingredients/restaurant/:id/category", ingredientCtrl.RestaurantCategories)
		admin.GET("/ingredients/restaurant/:id", ingredientCtrl.RestaurantItems)
		admin.PUT("/ingredients/:id/stock", ingredientCtrl.ToggleStock)
	}

	// Realtime order status. Browser clients pass the token as a query
	// param, so this route gets its own auth handler.
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), feed.HandleWebSocket)
}
