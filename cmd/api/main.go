package main

import (
	"fmt"
	"os"

	"quant-utilities/internal/api/handlers"
	"quant-utilities/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ServerConfig is read from the environment with the API_ prefix.
type ServerConfig struct {
	Port string `default:"8080"`
	Env  string `default:"development"`
}

func main() {
	var cfg ServerConfig
	if err := envconfig.Process("api", &cfg); err != nil {
		log.Fatal().Err(err).Msg("invalid server configuration")
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	portfolioHandler := handlers.NewPortfolioHandler()
	splitHandler := handlers.NewSplitHandler()
	filterHandler := handlers.NewFilterHandler()
	schemeHandler := handlers.NewSchemeHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		api.POST("/portfolio", portfolioHandler.Build)
		api.POST("/split", splitHandler.Split)
		api.POST("/filter", filterHandler.Filter)

		api.GET("/schemes", schemeHandler.ListSchemes)
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
