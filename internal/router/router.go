package router

import (
	"trans-go/internal/config"
	"trans-go/internal/handler"
	"trans-go/internal/middleware"
	"trans-go/internal/repository"
	"trans-go/internal/service"
	"trans-go/pkg/llm"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	logger *logrus.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
	gateway llm.Gateway,
) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "翻译缓存与审核系统 API",
			"version": "1.0.0",
		})
	})

	// 初始化Repository
	translationRepo := repository.NewTranslationRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// 初始化Service
	translationService := service.NewTranslationService(translationRepo, gateway, redisClient, logger)
	feedbackService := service.NewFeedbackService(feedbackRepo, translationRepo)
	analyticsService := service.NewAnalyticsService(translationRepo, redisClient)

	// 初始化Handler
	translationHandler := handler.NewTranslationHandler(translationService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, cfg)

	// API路由组
	api := r.Group("/api/v1")
	{
		// 翻译管理
		translations := api.Group("/translations")
		{
			translations.POST("", translationHandler.Translate)
			translations.POST("/batch", translationHandler.BatchTranslate)
			translations.GET("", translationHandler.ListTranslations)
			translations.POST("/:id/review", translationHandler.Review)
			translations.POST("/:id/quality-check", translationHandler.QualityCheck)

			// 翻译反馈
			translations.POST("/:id/feedback", feedbackHandler.CreateFeedback)
			translations.GET("/:id/feedback", feedbackHandler.ListFeedback)
		}

		// 全局反馈统计
		api.GET("/feedback/stats", feedbackHandler.GetStats)

		// 统计分析
		analytics := api.Group("/analytics")
		{
			analytics.GET("/overview", analyticsHandler.Overview)
			analytics.GET("/language-pairs", analyticsHandler.LanguagePairs)
		}
	}

	return r
}
