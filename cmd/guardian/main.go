package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/yourusername/streak-guardian/internal/config"
	"github.com/yourusername/streak-guardian/internal/engine"
	"github.com/yourusername/streak-guardian/internal/message"
	"github.com/yourusername/streak-guardian/internal/models"
	"github.com/yourusername/streak-guardian/internal/notifier"
	"github.com/yourusername/streak-guardian/internal/repository"
	"github.com/yourusername/streak-guardian/pkg/monkeytype"
	"github.com/yourusername/streak-guardian/pkg/utils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	// All scheduling rules run on UTC, so the log timestamps do too.
	zapConfig.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format("2006-01-02T15:04:05Z"))
	}

	logger, err := zapConfig.Build()
	if err != nil {
		panic(fmt.Errorf("init logger: %w", err))
	}
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	zap.S().Info("🚀 Streak Guardian starting...")

	cfg, err := config.Load()
	if err != nil {
		zap.S().Fatal("load config", zap.Error(err))
	}

	tg, err := notifier.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
	if err != nil {
		zap.S().Fatal("create telegram notifier", zap.Error(err))
	}

	store, closeStore, err := buildHistoryStore(cfg)
	if err != nil {
		zap.S().Fatal("create history store", zap.Error(err))
	}
	defer closeStore()

	client := monkeytype.NewClient(cfg.ApeKey)
	guardian := engine.New(client, store, tg, cfg.ReminderOverride)

	ctx := context.Background()
	if err := guardian.Run(ctx); err != nil {
		zap.S().Error("run failed", zap.Error(err))

		// Best effort only: a failure of the error notification itself is
		// logged and not retried.
		errNotification := message.ComposeError(err, utils.NowUTC())
		if sendErr := tg.Send(ctx, errNotification); sendErr != nil {
			zap.S().Error("send error notification", zap.Error(sendErr))
		}

		if cfg.StrictExit {
			os.Exit(1)
		}
		return
	}

	zap.S().Info("✅ Streak Guardian completed successfully")
}

func buildHistoryStore(cfg *config.Config) (models.HistoryStore, func(), error) {
	if cfg.DatabaseDSN == "" {
		return repository.NewFileStore(cfg.HistoryFile), func() {}, nil
	}

	db, err := repository.NewDB(cfg.DatabaseDSN, 2, 4)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to PostgreSQL: %w", err)
	}

	if err := db.Up(cfg.MigrationsDir); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, func() { db.Close() }, nil
}
