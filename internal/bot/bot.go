// Package bot is the Telegram surface of the trainer: plan setup,
// placement quiz, the review session and the progress dashboard.
package bot

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/example/vocabu/internal/export"
	"github.com/example/vocabu/internal/placement"
	"github.com/example/vocabu/internal/plan"
	"github.com/example/vocabu/internal/session"
	"github.com/example/vocabu/pkg/models"
)

// MenuButton represents a button in an inline menu
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates an inline keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// chatState tracks where one chat is within the plan/quiz/review flows
type chatState struct {
	Goals     plan.Goals
	Quiz      *placement.Quiz
	Placement *models.PlacementResult
	Review    *session.Review
	// set while the bot waits for a pasted word list or export package
	AwaitingWordList bool
	AwaitingImport   bool
	UserWords        []models.VocabItem
}

// Bot represents the Telegram application
type Bot struct {
	api      *tgbotapi.BotAPI
	token    string
	svc      *session.Service
	exporter *export.Exporter
	config   *BotConfig
	rnd      *rand.Rand

	chats map[int64]*chatState
	// last chat that talked to us; reminders go there
	lastChatID int64
}

// New creates a new bot instance over the session service.
func New(token string, svc *session.Service, exporter *export.Exporter) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token is empty")
	}

	cfg := DefaultConfig()
	svc.SessionLimit = cfg.SessionLimit
	svc.FallbackSize = cfg.FallbackSize

	return &Bot{
		token:    token,
		svc:      svc,
		exporter: exporter,
		config:   cfg,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		chats:    make(map[int64]*chatState),
	}, nil
}

// Start connects to Telegram and consumes updates until the channel closes.
func (b *Bot) Start() error {
	api, err := tgbotapi.NewBotAPI(b.token)
	if err != nil {
		return fmt.Errorf("unable to create bot: %v", err)
	}
	b.api = api
	logrus.WithField("account", api.Self.UserName).Info("authorized")

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	for update := range updates {
		b.handleUpdate(update)
	}
	return nil
}

// Stop stops receiving updates.
func (b *Bot) Stop() {
	if b.api != nil {
		b.api.StopReceivingUpdates()
	}
	logrus.Info("bot stopped")
}

// handleUpdate dispatches one update behind the catch-all recovery
// boundary: any panic from the core becomes a recoverable notice with a
// reset option instead of killing the process.
func (b *Bot) handleUpdate(update tgbotapi.Update) {
	var chatID int64
	switch {
	case update.Message != nil:
		chatID = update.Message.Chat.ID
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		chatID = update.CallbackQuery.Message.Chat.ID
	default:
		return
	}
	b.lastChatID = chatID

	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("recovered from update handler")
			b.sendWithKeyboard(chatID,
				"Something went wrong. Your saved data may be damaged — you can clear everything and start fresh.",
				[][]MenuButton{{{Text: "Clear all data", CallbackData: "reset_confirm"}, {Text: "Continue", CallbackData: "main_menu"}}})
		}
	}()

	if update.Message != nil {
		b.handleMessage(update.Message)
	} else if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
	}
}

// SendReminder implements the scheduler.Notifier interface.
func (b *Bot) SendReminder(count int) error {
	if b.api == nil || b.lastChatID == 0 {
		return nil
	}
	text := fmt.Sprintf("You have %d word(s) due for review. Send /review to start.", count)
	_, err := b.api.Send(tgbotapi.NewMessage(b.lastChatID, text))
	if err != nil {
		logrus.WithError(err).Warn("failed to send reminder")
	}
	return err
}

func (b *Bot) state(chatID int64) *chatState {
	st, ok := b.chats[chatID]
	if !ok {
		st = &chatState{Goals: plan.Goals{Context: models.ContextTravel, Style: models.StyleSimple, Horizon: 60, Pair: "en-ru"}}
		b.chats[chatID] = st
	}
	return st
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		logrus.WithError(err).Warn("failed to send message")
	}
}

func (b *Bot) sendWithKeyboard(chatID int64, text string, buttons [][]MenuButton) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createKeyboard(buttons)
	if _, err := b.api.Send(msg); err != nil {
		logrus.WithError(err).Warn("failed to send message")
	}
}

// mask hides the middle of a word, keeping first and last letters.
func mask(word string) string {
	runes := []rune(word)
	if len(runes) <= 2 {
		return word
	}
	return string(runes[0]) + strings.Repeat("•", len(runes)-2) + string(runes[len(runes)-1])
}
