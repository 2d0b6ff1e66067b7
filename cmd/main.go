package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"memento-backend/internal/artifact"
	"memento-backend/internal/config"
	"memento-backend/internal/handler"
	"memento-backend/internal/service"
	"memento-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "./configs/config.yaml", "配置文件路径，留空则只使用默认值和环境变量")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	placeholder, err := artifact.Load(cfg.Generation.ImageFile)
	if err != nil {
		logger.Fatalf("加载占位图像失败: %v", err)
	}

	// 初始化服务
	synthesizer := service.NewMockSynthesizer(cfg.Generation.Delay, cfg.Generation.ImageURL)
	generationService := service.NewGenerationService(synthesizer)

	// 初始化处理器
	generateHandler := handler.NewGenerateHandler(generationService, cfg.Generation.RequestTimeout)
	pageHandler := handler.NewPageHandler(placeholder)

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(cfg, generateHandler, pageHandler)

	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		logger.Infof("服务器启动在端口 %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待信号优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("服务器正在关闭...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("服务器关闭失败: %v", err)
	}
	logger.Info("服务器已关闭")
}
