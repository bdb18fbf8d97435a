package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/repository/memory"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/server/handlers"
)

// Handlers groups everything the router wires up.
type Handlers struct {
	Session   *handlers.SessionHandler
	Inventory *handlers.InventoryHandler
	Financial *handlers.FinancialHandler
	Assistant *handlers.AssistantHandler
	Reports   *handlers.ReportsHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, sessions *memory.Store, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/api/login", h.Session.Login)

	api := r.Group("/api")
	api.Use(handlers.SessionAuth(sessions, logger))
	{
		api.POST("/logout", h.Session.Logout)
		api.GET("/profile", h.Session.GetProfile)
		api.PUT("/profile", h.Session.UpdateProfile)

		api.GET("/inventory", h.Inventory.List)
		api.POST("/inventory", h.Inventory.Register)
		api.PUT("/inventory/:id", h.Inventory.Update)
		api.POST("/inventory/:id/zero", h.Inventory.Zero)

		api.GET("/movements", h.Inventory.Movements)
		api.POST("/movements", h.Inventory.RecordMovement)
		api.GET("/movements/:id/receipt", h.Inventory.Receipt)

		api.GET("/financial", h.Financial.List)
		api.POST("/financial", h.Financial.Register)
		api.DELETE("/financial/:id", h.Financial.Delete)
		api.DELETE("/financial", h.Financial.Clear)

		api.GET("/dashboard", h.Reports.Dashboard)
		api.GET("/financial/summary", h.Reports.FinancialSummary)
		api.GET("/reports/movements.xlsx", h.Reports.ExportMovements)
		api.GET("/training", h.Reports.Training)

		api.POST("/assistant/chat", h.Assistant.Chat)
	}

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
