package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/tarrantro/chatbot/config"
	"github.com/tarrantro/chatbot/controller"
	"github.com/tarrantro/chatbot/dao"
	"github.com/tarrantro/chatbot/logic"
	"github.com/tarrantro/chatbot/models"
	"github.com/tarrantro/chatbot/pkg"
	"github.com/tarrantro/chatbot/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Initialize config
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run main.go <config.yaml>")
	}
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	configFile := os.Args[1]
	if err := config.LoadConfig(configFile); err != nil {
		log.Fatalf("Failed to load config from %s: %v", configFile, err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := gorm.Open(postgres.Open(config.GlobalConfig.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := db.AutoMigrate(&models.User{}, &models.Message{}); err != nil {
		logger.Fatal("Failed to migrate schema", zap.Error(err))
	}

	// Initialize Chat client
	chatClient := pkg.NewChatClient(
		config.GlobalConfig.Chat.APIKey,
		config.GlobalConfig.Chat.BaseURL,
		config.GlobalConfig.Chat.Model,
	)

	// Initialize DAOs
	userDAO := dao.NewUserDAO(db)
	messageDAO := dao.NewMessageDAO(db)

	// Initialize Logics
	userLogic := logic.NewUserLogic(userDAO)
	chatLogic := logic.NewChatLogic(
		userDAO,
		messageDAO,
		chatClient,
		ratelimit.DefaultLimits(),
		time.Duration(config.GlobalConfig.Chat.TimeoutSeconds)*time.Second,
		logger,
	)
	historyLogic := logic.NewHistoryLogic(userDAO, messageDAO)

	// Initialize Controllers
	userCtrl := controller.NewUserController(userLogic)
	messageCtrl := controller.NewMessageController(chatLogic)
	historyCtrl := controller.NewHistoryController(historyLogic)

	// Setup Gin router
	r := gin.Default()
	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/register", userCtrl.Register)
	r.POST("/get_ai_chat_response", messageCtrl.ChatResponse)
	r.POST("/get_user_chat_history", historyCtrl.History)
	r.POST("/get_chat_status_today", userCtrl.StatusToday)

	// Run server
	if err := r.Run(fmt.Sprintf(":%d", config.GlobalConfig.Server.Port)); err != nil {
		logger.Fatal("Failed to run server", zap.Error(err))
	}
}
