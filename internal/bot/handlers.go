package bot

import (
	"runtime"
	"runtime/debug"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func HandleUpdate(update tgbotapi.Update, deps BotDeps) {
	defer func() {
		if r := recover(); r != nil {
			deps.Logger.Error("Panic recovered in HandleUpdate",
				zap.Any("panic_value", r),
				zap.String("stack", string(debug.Stack())))
		}
	}()

	if update.Message != nil {
		HandleMessage(update.Message, deps)
	}
}

func HandleMessage(message *tgbotapi.Message, deps BotDeps) {
	if message.From == nil {
		return
	}
	userID := message.From.ID
	chatID := message.Chat.ID
	lang := userLanguage(message)

	if !deps.Authorizer.IsAllowed(userID) {
		deps.Logger.Warn("Unauthorized user", zap.Int64("user_id", userID))
		deps.Bot.Send(tgbotapi.NewMessage(chatID, deps.I18n.T(lang, "msg_unauthorized")))
		return
	}

	if !message.IsCommand() {
		deps.Logger.Debug("Ignoring non-command message", zap.Int64("user_id", userID))
		return
	}

	switch message.Command() {
	case "start":
		reply := tgbotapi.NewMessage(chatID, deps.I18n.T(lang, "msg_greeting"))
		reply.ParseMode = tgbotapi.ModeMarkdown
		deps.Bot.Send(reply)

	case "help":
		reply := tgbotapi.NewMessage(chatID, deps.I18n.T(lang, "msg_help"))
		reply.ParseMode = tgbotapi.ModeMarkdown
		deps.Bot.Send(reply)

	case "version":
		reply := tgbotapi.NewMessage(chatID, deps.I18n.T(lang, "msg_version",
			"Version", deps.Version,
			"BuildDate", deps.BuildDate,
			"GoVersion", runtime.Version()))
		deps.Bot.Send(reply)

	case "generate":
		HandleGenerateCommand(message, deps)

	default:
		deps.Bot.Send(tgbotapi.NewMessage(chatID, deps.I18n.T(lang, "msg_unknown_command")))
	}
}

// HandleGenerateCommand validates the argument count and hands a
// GenerationRequest to the orchestrator. Arguments beyond the first three
// are ignored; the rarity is passed through unvalidated.
func HandleGenerateCommand(message *tgbotapi.Message, deps BotDeps) {
	args := strings.Fields(message.CommandArguments())
	if len(args) < 3 {
		lang := userLanguage(message)
		reply := tgbotapi.NewMessage(message.Chat.ID, deps.I18n.T(lang, "msg_generate_usage"))
		reply.ParseMode = tgbotapi.ModeMarkdown
		deps.Bot.Send(reply)
		return
	}

	req := GenerationRequest{Name: args[0], Element: args[1], Rarity: args[2]}
	RunGeneration(req, message, deps)
}

// userLanguage picks the Telegram client language when present, otherwise
// nil for the configured default.
func userLanguage(message *tgbotapi.Message) *string {
	if message.From != nil && message.From.LanguageCode != "" {
		return &message.From.LanguageCode
	}
	return nil
}
