package main

import (
	"log"
	"net/http"

	"feastly-be/internal/api"
	"feastly-be/internal/cart"
	"feastly-be/internal/config"
	"feastly-be/internal/db"
	"feastly-be/internal/food"
	"feastly-be/internal/logger"
	"feastly-be/internal/order"
	"feastly-be/internal/payment"
	"feastly-be/internal/storage"
	"feastly-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	store, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to prepare upload directory: %v", err)
	}

	foodRepo := food.NewRepository(database)
	foodSvc := food.NewService(foodRepo, store)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, foodRepo)

	gateway := payment.NewHostedGateway(cfg.PaymentAPIKey, cfg.FrontendURL)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, cartRepo, foodRepo, gateway)

	router := api.NewRouter(cfg,
		api.NewFoodHandler(foodSvc),
		api.NewUserHandler(userSvc, store),
		api.NewCartHandler(cartSvc),
		api.NewOrderHandler(orderSvc, userSvc),
	)

	log.Printf("server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
