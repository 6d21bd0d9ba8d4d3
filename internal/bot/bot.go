package bot

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/SBKofficial/monster-maker/internal/auth"
	"github.com/SBKofficial/monster-maker/internal/config"
	"github.com/SBKofficial/monster-maker/internal/i18n"
	"github.com/SBKofficial/monster-maker/internal/logger"
	"github.com/SBKofficial/monster-maker/pkg/gemini"
)

// StartBot wires the dependencies and runs the update loop until the
// process is stopped. Each update is handled on its own goroutine so one
// slow generation never stalls other chats.
func StartBot(cfg *config.Config, version string, buildDate string) error {
	log, err := logger.InitLogger(cfg.LogConfig.Level, cfg.LogConfig.Format, cfg.LogConfig.File)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	defer log.Sync()

	log.Info("Starting monster-maker bot", zap.String("version", version), zap.String("buildDate", buildDate))

	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}
	log.Info("Authorized on account", zap.String("username", botAPI.Self.UserName))

	geminiClient, err := gemini.NewClient(
		cfg.GeminiAPIKey,
		cfg.Gemini.BaseURL,
		time.Duration(cfg.Gemini.RequestTimeoutSeconds)*time.Second,
		log.Named("gemini_client"),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize gemini client: %w", err)
	}

	i18nManager, err := i18n.NewManager(cfg.DefaultLanguage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize i18n manager: %w", err)
	}

	deps := BotDeps{
		Bot:        botAPI,
		TextGen:    geminiClient,
		ImageGen:   geminiClient,
		Config:     cfg,
		Authorizer: auth.NewAuthorizer(cfg.Auth.AuthorizedUserIDs),
		I18n:       i18nManager,
		Logger:     log,
		Version:    version,
		BuildDate:  buildDate,
	}

	SetBotCommands(botAPI, log, cfg.DefaultLanguage, i18nManager)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := botAPI.GetUpdatesChan(u)

	log.Info("Bot started, listening for updates...")
	for update := range updates {
		go func(upd tgbotapi.Update) {
			HandleUpdate(upd, deps)
		}(update)
	}

	return nil
}

// SetBotCommands publishes the command list shown in the Telegram UI.
func SetBotCommands(botAPI *tgbotapi.BotAPI, log *zap.Logger, defaultLang string, i18nManager *i18n.Manager) {
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: i18nManager.T(&defaultLang, "command_desc_start")},
		{Command: "help", Description: i18nManager.T(&defaultLang, "command_desc_help")},
		{Command: "generate", Description: i18nManager.T(&defaultLang, "command_desc_generate")},
		{Command: "version", Description: i18nManager.T(&defaultLang, "command_desc_version")},
	}

	commandsConfig := tgbotapi.NewSetMyCommands(commands...)
	if _, err := botAPI.Request(commandsConfig); err != nil {
		log.Error("Failed to set bot commands", zap.Error(err))
	}
}
