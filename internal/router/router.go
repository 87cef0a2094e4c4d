package router

import (
	"github.com/irisalmeida/registra-ai/internal/config"
	"github.com/irisalmeida/registra-ai/internal/handler"
	"github.com/irisalmeida/registra-ai/internal/ledger"
	"github.com/irisalmeida/registra-ai/internal/middleware"
	"github.com/irisalmeida/registra-ai/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires stores, services and handlers into a Gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	if len(cfg.CORS.Origins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.CORS.Origins
		corsCfg.AllowCredentials = true
		r.Use(cors.New(corsCfg))
	}

	records := store.NewRecords(db)
	users := store.NewUsers(db)
	service := ledger.NewService(records, users)
	directory := ledger.NewDirectory(users)

	authHandler := handler.NewAuthHandler(directory, cfg.OAuth, cfg.JWT)
	r.GET("/auth/google/login", authHandler.Login)
	r.GET("/auth/google/callback", authHandler.Callback)

	protected := r.Group("")
	protected.Use(
		middleware.Auth(cfg.JWT.Secret, directory),
		middleware.Audit(db),
	)

	protected.GET("/me", handler.GetMe)

	ledgerHandler := handler.NewLedgerHandler(service)
	protected.GET("/balance", ledgerHandler.GetBalance)
	protected.POST("/gain", ledgerHandler.PostGain)
	protected.POST("/expense", ledgerHandler.PostExpense)
	protected.GET("/history", ledgerHandler.GetHistory)

	exportHandler := handler.NewExportHandler(service)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
