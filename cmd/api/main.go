package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/config"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/logger"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/middleware"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/routes"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/store"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer log.Sync()

	st, err := store.New(cfg, log)
	if err != nil {
		log.Fatal("failed to build store", zap.Error(err))
	}

	if err := st.EnsureInitialized(context.Background()); err != nil {
		log.Fatal("failed to initialize store", zap.Error(err))
	}

	// gin.New em vez de gin.Default: o RequestLogger zap é a única linha
	// por requisição; o Recovery continua sendo o fallback de 500 genérico.
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, log)

	log.Info("server running",
		zap.String("addr", cfg.Addr()),
		zap.String("storage_backend", cfg.StorageBackend),
	)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
