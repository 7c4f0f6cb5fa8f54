package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpctrl "github.com/Dhanuka2552/food/internal/controllers/http"
	"github.com/Dhanuka2552/food/internal/infra/rabbitmq"
	"github.com/Dhanuka2552/food/internal/repository/jsonfile"
	"github.com/Dhanuka2552/food/internal/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	dataDir := getenv("DATA_DIR", "data")
	store, err := jsonfile.NewStore(dataDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dataDir).Msg("Failed to initialize data store")
	}

	menuRepo := jsonfile.NewMenuRepository(store)
	orderRepo := jsonfile.NewOrderRepository(store)

	var publisher rabbitmq.PublisherInterface = rabbitmq.NoopPublisher{}
	if amqpURL := os.Getenv("RABBITMQ_URL"); amqpURL != "" {
		p, err := rabbitmq.NewPublisher(amqpURL, "order.exchange")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to init publisher")
		}
		defer p.Close()
		publisher = p
		log.Info().Msg("Order event publisher connected")
	}

	menuService := services.NewMenuService(menuRepo)
	orderService := services.NewOrderService(orderRepo, menuRepo, publisher)
	statsService := services.NewStatsService(orderRepo, menuRepo)

	handler := httpctrl.NewHandler(menuService, orderService, statsService)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), httpctrl.RequestLogger(), httpctrl.CORS())

	handler.RegisterRoutes(r)

	port := getenv("PORT", "3000")
	log.Info().Str("port", port).Str("data_dir", dataDir).Msg("Starting food ordering backend")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server run")
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
