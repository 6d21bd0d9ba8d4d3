package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/SBKofficial/monster-maker/internal/auth"
	cfg "github.com/SBKofficial/monster-maker/internal/config"
	"github.com/SBKofficial/monster-maker/internal/i18n"
	"github.com/SBKofficial/monster-maker/pkg/gemini"
)

// GenerationRequest is the validated input of one /generate command. It
// lives for the duration of that request only.
type GenerationRequest struct {
	Name    string
	Element string
	Rarity  string
}

// Sender is the slice of the Telegram API the handlers use.
// *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// TextGenerator wraps the external text-generation capability.
type TextGenerator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// ImageGenerator wraps the external image-generation capability.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, model, prompt string) (*gemini.ImageArtifact, error)
}

// BotDeps holds the dependencies required by the bot handlers.
type BotDeps struct {
	Bot        Sender
	TextGen    TextGenerator
	ImageGen   ImageGenerator
	Config     *cfg.Config
	Authorizer *auth.Authorizer
	I18n       *i18n.Manager
	Logger     *zap.Logger
	Version    string
	BuildDate  string
}
