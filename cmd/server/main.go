package main

import (
	"log"
	"os"

	"trans-go/internal/config"
	"trans-go/internal/models"
	"trans-go/internal/router"
	"trans-go/internal/utils"
	"trans-go/pkg/llm"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig("./config/config.yaml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	// 初始化验证器
	utils.InitValidator()

	// 初始化数据库
	if err := models.InitDB(cfg); err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}
	db := models.GetDB()

	// 初始化Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddress(),
		DB:       cfg.Redis.DB,
		Password: cfg.Redis.Password,
	})

	// 初始化翻译模型网关
	gateway := llm.NewClient(
		cfg.OpenAI.BaseURL,
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		cfg.OpenAI.GetTimeout(),
	)

	// 设置路由
	r := router.SetupRouter(cfg, logger, db, redisClient, gateway)

	// 启动服务器
	addr := cfg.Server.GetAddress()
	logger.Infof("服务器启动在 %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务器失败: %v", err)
	}
}
