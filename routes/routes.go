package routes

import (
	"github.com/gustavogalazzo/YummyGo/configs"
	"github.com/gustavogalazzo/YummyGo/controllers"
	"github.com/gustavogalazzo/YummyGo/middlewares"
	"github.com/gustavogalazzo/YummyGo/pkg/payments"
	"github.com/gustavogalazzo/YummyGo/repository"
	"github.com/gustavogalazzo/YummyGo/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, gateway payments.Gateway) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	addrRepo := repository.NewAddressRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	prodRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	cartStore := repository.NewCartStore()

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	addrSvc := services.NewAddressService(addrRepo)
	restSvc := services.NewRestaurantService(db, restRepo, prodRepo, userRepo)
	catalogSvc := services.NewCatalogService(prodRepo, restRepo)
	cartSvc := services.NewCartService(cartStore, prodRepo)
	orderSvc := services.NewOrderService(
		db, orderRepo, cartStore, prodRepo, restRepo, addrRepo, userRepo,
		gateway, services.LogNotifier{}, cfg.BaseURL,
	)
	reviewSvc := services.NewReviewService(reviewRepo, orderRepo)
	reportSvc := services.NewReportService(orderRepo, reviewRepo, restRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	addrCtrl := controllers.NewAddressController(addrSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	ownerOrderCtrl := controllers.NewOwnerOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(gateway, orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	reportCtrl := controllers.NewReportController(reportSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	owner := middlewares.AuthMiddleware(cfg.JWTSecret, "owner")

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", auth)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public catalog
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/search", restCtrl.Search)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/reviews", reviewCtrl.ListForRestaurant)

	// Webhook: public, authenticated by signature only
	r.POST("/payments/webhook", paymentCtrl.Webhook)

	// Profile
	profile := r.Group("/profile", auth)
	{
		profile.GET("/orders", orderCtrl.ListForMe)
		profile.GET("/addresses", addrCtrl.List)
		profile.POST("/addresses", addrCtrl.Create)
		profile.DELETE("/addresses/:id", addrCtrl.Delete)
	}

	// Cart + checkout (customer)
	u := r.Group("/", auth)
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.DELETE("/cart/items", cartCtrl.Remove)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/orders/checkout", orderCtrl.Checkout)
		u.GET("/orders/cancel", paymentCtrl.Cancel)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.GET("/orders/:id/success", paymentCtrl.Success)

		u.POST("/reviews", reviewCtrl.Create)

		// any signed-in customer can open a restaurant
		u.POST("/owner/restaurants", restCtrl.Register)
	}

	// Owner
	o := r.Group("/owner", owner)
	{
		o.GET("/restaurant", restCtrl.Mine)

		o.POST("/menu/categories", catalogCtrl.CreateCategory)
		o.DELETE("/menu/categories/:id", catalogCtrl.DeleteCategory)
		o.POST("/menu/products", catalogCtrl.CreateProduct)
		o.PUT("/menu/products/:id", catalogCtrl.UpdateProduct)
		o.DELETE("/menu/products/:id", catalogCtrl.DeleteProduct)

		o.GET("/restaurants/:id/orders", ownerOrderCtrl.List)
		o.GET("/restaurants/:id/orders/:oid", ownerOrderCtrl.Detail)
		o.PATCH("/orders/:id/advance", ownerOrderCtrl.Advance)
		o.PATCH("/orders/:id/cancel", ownerOrderCtrl.Cancel)

		o.GET("/restaurants/:id/reports/sales", reportCtrl.Sales)
		o.GET("/restaurants/:id/reports/quality", reportCtrl.Quality)
	}
}
