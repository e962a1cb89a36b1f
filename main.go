package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/chetansai93/eshanee-chetan-backend/config"
	httpapi "github.com/chetansai93/eshanee-chetan-backend/internal/api/http"
	"github.com/chetansai93/eshanee-chetan-backend/internal/service"
	"github.com/chetansai93/eshanee-chetan-backend/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	if err := storage.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter("orders")
	defer writer.Close()

	repository := storage.NewPostgresRepository(db)
	cache := storage.NewRedisStatsCache(rdb, time.Minute)
	publisher := storage.NewKafkaPublisher(writer)

	menuService := service.NewMenuService(repository)
	orderService := service.NewOrderService(repository, repository, repository, cache, publisher)

	handler := httpapi.NewHandler(menuService, orderService)
	router := httpapi.NewRouter(handler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	httpapi.StartServer(":"+port, router)
}
