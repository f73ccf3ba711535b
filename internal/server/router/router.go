package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mbodj/clinivet/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(stockH *handlers.StockHandler, salesH *handlers.SalesHandler, consultationH *handlers.ConsultationHandler, registryH *handlers.RegistryHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")
	{
		api.POST("/stock/receive", stockH.Receive)
		api.GET("/stock", stockH.List)
		api.GET("/stock/:id", stockH.Get)
		api.POST("/stock/:id/deduct", stockH.Deduct)

		api.POST("/sales/checkout", salesH.Checkout)

		api.POST("/consultations", consultationH.Save)
		api.GET("/pets/:petId/consultations", consultationH.HistoryByPet)

		api.POST("/clients", registryH.CreateClient)
		api.GET("/clients", registryH.ListClients)
		api.GET("/clients/:id", registryH.GetClient)

		api.POST("/expenses", registryH.CreateExpense)
		api.GET("/expenses", registryH.ListExpenses)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
