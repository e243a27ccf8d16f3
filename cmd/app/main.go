package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"tariff/cmd"
	httpin "tariff/internal/adapters/in/http"
)

func main() {
	configs := getConfigs()

	app, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("composition root: %v", err)
	}

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:               envOrDefault("HTTP_PORT", "8080"),
		CostPerKilogram:        os.Getenv("COST_PER_KG"),
		CostPerCubicCentimeter: os.Getenv("COST_PER_CM3"),
		MinimalPrice:           os.Getenv("MINIMAL_PRICE"),
		MinimalDistanceKm:      os.Getenv("MINIMAL_DISTANCE_KM"),
		PriceCurrency:          envOrDefault("PRICE_CURRENCY", "RUB"),
		MinLatitude:            os.Getenv("GEO_MIN_LATITUDE"),
		MaxLatitude:            os.Getenv("GEO_MAX_LATITUDE"),
		MinLongitude:           os.Getenv("GEO_MIN_LONGITUDE"),
		MaxLongitude:           os.Getenv("GEO_MAX_LONGITUDE"),
		MaxPackageSideMm:       os.Getenv("MAX_PACKAGE_SIDE_MM"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(app.CreateCalculatePriceQueryHandler())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
