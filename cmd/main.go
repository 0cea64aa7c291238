package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hoangtien79/FunBuyPlace/internal/chat"
	"github.com/hoangtien79/FunBuyPlace/internal/config"
	"github.com/hoangtien79/FunBuyPlace/internal/fixtures"
	"github.com/hoangtien79/FunBuyPlace/internal/navigation"
	"github.com/hoangtien79/FunBuyPlace/internal/platform/logger"
	"github.com/hoangtien79/FunBuyPlace/internal/platform/metrics"
	"github.com/hoangtien79/FunBuyPlace/internal/repository/memory"
	"github.com/hoangtien79/FunBuyPlace/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	configPath := "config.yaml"
	if cp := os.Getenv("CONFIG_PATH"); cp != "" {
		configPath = cp
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	ctx := context.Background()

	metricsManager := metrics.NewManager("funbuyplace")
	if cfg.Metrics.Port != "" {
		go func() {
			if err := metrics.StartServer(cfg.Metrics.Port, appLogger, metricsManager.Registry); err != nil {
				appLogger.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	stores := memory.NewStores()
	fixtures.Seed(ctx, stores)
	appLogger.Info("stores seeded",
		zap.Int("users", stores.Users.Len(ctx)),
		zap.Int("listings", stores.Listings.Len(ctx)),
		zap.Int("reports", stores.Reports.Len(ctx)),
		zap.Int("conversations", stores.Conversations.Len(ctx)))

	userModeration := usecase.NewUserModeration(stores.Users, appLogger.Named("users"), metricsManager)
	listingModeration := usecase.NewListingModeration(stores.Listings, appLogger.Named("listings"), metricsManager)
	reportModeration := usecase.NewReportModeration(stores.Reports, appLogger.Named("reports"), metricsManager)
	engine := usecase.NewEngine(userModeration, listingModeration, reportModeration)
	_ = engine

	search := usecase.NewSearch(
		stores.Users, stores.Listings, stores.Reports,
		cfg.Search.RecentLimit,
		appLogger.Named("search"), metricsManager,
	)
	_ = search

	chatService := chat.NewService(stores.Conversations, chat.Config{
		ReplyDelay:       cfg.Chat.ReplyDelay,
		ReplyText:        cfg.Chat.ReplyText,
		MaxMessageLength: cfg.Chat.MaxMessageLength,
	}, appLogger.Named("chat"), metricsManager)
	appLogger.Info("chat service initialized", zap.Int("conversations", len(chatService.Inbox(ctx))))

	tabs := make([]navigation.Tab, 0, len(cfg.TabBar.Tabs))
	for _, t := range cfg.TabBar.Tabs {
		tabs = append(tabs, navigation.Tab{Name: t.Name, Route: t.Route, Icon: t.Icon, Label: t.Label})
	}
	resolver := navigation.NewResolver(tabs, navigation.Spring{
		Damping:   cfg.TabBar.Spring.Damping,
		Stiffness: cfg.TabBar.Spring.Stiffness,
	})
	appLogger.Info("tab resolver initialized", zap.Int("tabs", len(resolver.Tabs())))

	dashboard := usecase.NewDashboard(
		stores.Users, stores.Listings, stores.Reports, stores.Conversations,
		appLogger.Named("dashboard"),
	)
	stats := dashboard.Stats(ctx)
	appLogger.Info("core setup complete",
		zap.Int("total_users", stats.TotalUsers),
		zap.Int("active_listings", stats.ActiveListings),
		zap.Int("pending_reports", stats.PendingReports),
		zap.Int("unread_conversations", stats.UnreadConversations))
}
