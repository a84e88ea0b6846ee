package main

import (
	"context"
	"gin-foody/controllers"
	"gin-foody/infra"
	"gin-foody/middlewares"
	"gin-foody/models"
	"gin-foody/repositories"
	"gin-foody/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

func setupRouter(db *mongo.Database, tokenDB *gorm.DB) *gin.Engine {
	tokenRepository := repositories.NewTokenRepository(tokenDB)
	authService := services.NewAuthService(tokenRepository)
	authController := controllers.NewAuthController(authService)

	menuRepository := repositories.NewMenuRepository(db)
	menuService := services.NewMenuService(menuRepository)
	menuController := controllers.NewMenuController(menuService)

	cartRepository := repositories.NewCartRepository(db)
	cartService := services.NewCartService(cartRepository)
	cartController := controllers.NewCartController(cartService)

	userRepository := repositories.NewUserRepository(db)
	userService := services.NewUserService(userRepository)
	userController := controllers.NewUserController(userService)

	paymentRepository := repositories.NewPaymentRepository(db)
	paymentService := services.NewPaymentService(paymentRepository)
	paymentController := controllers.NewPaymentController(paymentService)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/jwt", authController.CreateToken)
	r.POST("/logout", authController.Logout)

	// Admin routes always stack AuthMiddleware first; AdminOnly alone
	// would reject everything.
	auth := middlewares.AuthMiddleware(authService)
	adminOnly := middlewares.AdminOnly(userService)

	menuRouter := r.Group("/menu")
	menuRouterWithAdminAuth := r.Group("/menu", auth, adminOnly)
	menuRouter.GET("", menuController.FindAll)
	menuRouter.GET("/:id", menuController.FindById)
	menuRouterWithAdminAuth.POST("", menuController.Create)
	menuRouterWithAdminAuth.PUT("/:id", menuController.Update)
	menuRouterWithAdminAuth.DELETE("/:id", menuController.Delete)

	cartRouter := r.Group("/carts")
	cartRouter.GET("", cartController.FindByEmail)
	cartRouter.GET("/:id", cartController.FindById)
	cartRouter.POST("", cartController.Create)
	cartRouter.PUT("/:id", cartController.UpdateQuantity)
	cartRouter.DELETE("/:id", cartController.Delete)

	userRouter := r.Group("/users")
	userRouterWithAuth := r.Group("/users", auth)
	userRouterWithAdminAuth := r.Group("/users", auth, adminOnly)
	userRouter.POST("", userController.Create)
	userRouterWithAuth.GET("/admin/:email", userController.CheckAdmin)
	userRouterWithAdminAuth.GET("", userController.FindAll)
	userRouterWithAdminAuth.DELETE("/:id", userController.Delete)
	userRouterWithAdminAuth.PATCH("/admin/:id", userController.GrantAdmin)

	paymentRouterWithAuth := r.Group("/payment", auth)
	paymentRouterWithAuth.GET("", paymentController.FindByEmail)
	paymentRouterWithAuth.POST("", paymentController.Record)

	r.POST("/create-payment-intent", paymentController.CreatePaymentIntent)

	return r
}

func initStores() (*mongo.Database, *gorm.DB) {
	infra.Initialize()
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	db := infra.SetupDB()
	tokenDB := infra.SetupTokenDB()

	if err := tokenDB.AutoMigrate(&models.BlacklistedToken{}); err != nil {
		log.Printf("Failed to migrate token blacklist database: %v", err)
	}

	// Email uniqueness is enforced at the store, not just checked in
	// the service.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("users").Indexes().CreateOne(ctx, indexModel); err != nil {
		log.Printf("Failed to ensure unique email index: %v", err)
	}

	return db, tokenDB
}

func main() {
	db, tokenDB := initStores()
	r := setupRouter(db, tokenDB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if err := db.Client().Disconnect(ctx); err != nil {
		log.Printf("Failed to disconnect from MongoDB: %v", err)
	}
	log.Println("Server exited")
}
