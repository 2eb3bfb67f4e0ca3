package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"project_botAnalis/internal/entities"
	"project_botAnalis/internal/infrastructure"
	"project_botAnalis/internal/interfaces/http"
	"project_botAnalis/internal/repository"
	"project_botAnalis/internal/usecases"
)

func main() {
	// Load .env file if present; production reads plain env vars.
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using process environment")
	}

	cfg, err := infrastructure.LoadConfig()
	if err != nil {
		fmt.Println("FAILED to load config:", err)
		os.Exit(1)
	}

	ctx := context.Background()

	geminiClient, err := infrastructure.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		fmt.Println("FAILED to create Gemini client:", err)
		os.Exit(1)
	}
	defer geminiClient.Close()

	telegramClient, err := infrastructure.NewTelegramClient(cfg.TelegramToken)
	if err != nil {
		fmt.Println("FAILED to create Telegram client:", err)
		os.Exit(1)
	}

	priceClient := infrastructure.NewYahooFinanceClient()

	// Initialize services
	chatService := usecases.NewChatService(geminiClient, telegramClient)
	stockService := usecases.NewStockService(priceClient, geminiClient, telegramClient)
	sheetService := usecases.NewSheetService(repository.NewXLSXStore(), usecases.NewDescribeCalculator(), telegramClient)
	docService := usecases.NewDocService(repository.NewDocxConverter(), geminiClient, telegramClient)

	limiter := infrastructure.NewChatRateLimiter(rate.Limit(1), 3)
	dispatcher := usecases.NewDispatcher(chatService, stockService, sheetService, docService, telegramClient, limiter, cfg.RequestTimeout)

	// Liveness endpoint for platform health checks
	r := gin.Default()
	http.SetupRoutes(r, telegramClient.Bot.Self.UserName)
	go func() {
		if err := r.Run("0.0.0.0:" + cfg.Port); err != nil {
			fmt.Printf("FAILED to start HTTP server: %v\n", err)
			os.Exit(1)
		}
	}()

	fmt.Printf("[BOT] Connected as @%s\n", telegramClient.Bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := telegramClient.Bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}
		msg := toInboundMessage(update.Message)
		go dispatcher.Dispatch(ctx, msg)
	}
}

// toInboundMessage converts a Telegram update into the transport-agnostic
// message the dispatcher classifies.
func toInboundMessage(m *tgbotapi.Message) entities.InboundMessage {
	msg := entities.InboundMessage{
		ChatID:    m.Chat.ID,
		MessageID: m.MessageID,
		Text:      m.Text,
	}
	if m.From != nil {
		msg.From = m.From.UserName
	}
	if m.IsCommand() {
		msg.Command = m.Command()
		msg.Args = strings.Fields(m.CommandArguments())
	}
	if m.Document != nil {
		msg.Document = &entities.Attachment{
			FileID:   m.Document.FileID,
			FileName: m.Document.FileName,
			MimeType: m.Document.MimeType,
			Size:     int64(m.Document.FileSize),
		}
	}
	return msg
}
