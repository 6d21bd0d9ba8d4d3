package bot

import (
	"bytes"
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reply contracts surfaced to the user. These are wire format, not UI copy,
// so they stay out of the locale files.
const (
	statusMessageTemplate = "⚡ Summoning %s..."
	textErrorTemplate     = "Error generating text: %s"
	criticalErrorTemplate = "Critical Error: %v"
)

// RunGeneration orchestrates one /generate request: send the transient
// status message, run the two generator calls in parallel, pick the reply
// shape, and clean the status message up on every exit path.
func RunGeneration(req GenerationRequest, message *tgbotapi.Message, deps BotDeps) {
	chatID := message.Chat.ID
	log := deps.Logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.Int64("chat_id", chatID),
		zap.String("monster", req.Name),
	)

	statusMsg, err := deps.Bot.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf(statusMessageTemplate, req.Name)))
	if err != nil {
		log.Error("Failed to send status message", zap.Error(err))
	}

	// Best-effort cleanup, registered before anything can fail so it runs
	// even when the generation path panics. A failed delete is logged and
	// ignored; the user already has their reply.
	defer func() {
		if statusMsg.MessageID == 0 {
			return
		}
		if _, errDel := deps.Bot.Request(tgbotapi.NewDeleteMessage(chatID, statusMsg.MessageID)); errDel != nil {
			log.Warn("Failed to delete status message", zap.Error(errDel), zap.Int("message_id", statusMsg.MessageID))
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			log.Error("Panic recovered in generation",
				zap.Any("panic_value", r),
				zap.String("stack", string(debug.Stack())))
			deps.Bot.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf(criticalErrorTemplate, r)))
		}
	}()

	ctx := context.Background()

	// The two calls are independent; both must complete before replying,
	// with no ordering guarantee between them. Each worker recovers its own
	// panic; a goroutine panic cannot be caught from the caller, and an
	// uncaught one would take the whole process down.
	var (
		statsText  string
		imgReader  *bytes.Reader
		statsPanic interface{}
		artPanic   interface{}
		wg         sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Error("Panic recovered in stats worker",
					zap.Any("panic_value", r),
					zap.String("stack", string(debug.Stack())))
				statsPanic = r
			}
		}()
		statsText = generateStats(ctx, req, deps, log)
	}()
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Error("Panic recovered in artwork worker",
					zap.Any("panic_value", r),
					zap.String("stack", string(debug.Stack())))
				artPanic = r
			}
		}()
		imgReader = generateArtwork(ctx, req, deps, log)
	}()
	wg.Wait()

	if r := statsPanic; r != nil || artPanic != nil {
		if r == nil {
			r = artPanic
		}
		if _, err := deps.Bot.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf(criticalErrorTemplate, r))); err != nil {
			log.Error("Failed to send critical error reply", zap.Error(err))
		}
		return
	}

	if imgReader != nil {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileReader{Name: "monster.png", Reader: imgReader})
		photo.Caption = statsText
		if _, err := deps.Bot.Send(photo); err != nil {
			log.Error("Failed to send photo reply", zap.Error(err))
		}
	} else {
		if _, err := deps.Bot.Send(tgbotapi.NewMessage(chatID, statsText)); err != nil {
			log.Error("Failed to send text reply", zap.Error(err))
		}
	}

	log.Info("Generation complete", zap.Bool("with_image", imgReader != nil))
}

// generateStats calls the text model once. Failures are absorbed into a
// displayable error string, never propagated.
func generateStats(ctx context.Context, req GenerationRequest, deps BotDeps, log *zap.Logger) string {
	prompt := BuildStatsPrompt(req.Name, req.Element, req.Rarity)
	text, err := deps.TextGen.GenerateText(ctx, deps.Config.Gemini.TextModel, prompt)
	if err != nil {
		log.Error("Text generation failed", zap.Error(err))
		return fmt.Sprintf(textErrorTemplate, err)
	}
	return text
}

// generateArtwork calls the image model once and normalizes the artifact to
// PNG. Any failure degrades to "no image": logged for operators, invisible
// to the user.
func generateArtwork(ctx context.Context, req GenerationRequest, deps BotDeps, log *zap.Logger) *bytes.Reader {
	artifact, err := deps.ImageGen.GenerateImage(ctx, deps.Config.Gemini.ImageModel, BuildImagePrompt(req.Name, req.Element))
	if err != nil {
		log.Error("Image generation failed", zap.Error(err))
		return nil
	}
	reader, err := normalizePNG(artifact)
	if err != nil {
		log.Error("Image encoding failed", zap.Error(err), zap.String("mime_type", artifact.MimeType))
		return nil
	}
	return reader
}
