// Package bot связывает Telegram с диалоговым движком.
package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/titanchik/tg-calfit-bot/internal/engine"
	"github.com/titanchik/tg-calfit-bot/pkg/locales"
)

// Bot представляет Telegram бота
type Bot struct {
	api    *tgbotapi.BotAPI
	engine *engine.Engine
}

// New создает нового бота
func New(token string, eng *engine.Engine) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания бота: %w", err)
	}

	log.Info().Str("username", api.Self.UserName).Msg("Авторизован")

	return &Bot{
		api:    api,
		engine: eng,
	}, nil
}

// Start запускает обработку обновлений
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-updates:
			go b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate обрабатывает входящее обновление. Неожиданная паника
// логируется, пользователь получает общий ответ об ошибке, а состояние
// его диалога остаётся нетронутым.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	msg := update.Message

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Int64("user_id", msg.From.ID).Msg("Паника при обработке реплики")
			b.reply(msg.Chat.ID, engine.Response{Text: locales.Get().Common.Error})
		}
	}()

	resp := b.engine.HandleTurn(ctx, engine.Turn{
		UserID:  msg.From.ID,
		Command: commandFor(msg),
		Text:    msg.Text,
	})

	b.reply(msg.Chat.ID, resp)
}

// commandFor определяет, какую команду начинает сообщение.
func commandFor(msg *tgbotapi.Message) engine.Command {
	if !msg.IsCommand() {
		return engine.CmdNone
	}

	switch msg.Command() {
	case "start", "set_profile":
		return engine.CmdSetProfile
	case "log_water":
		return engine.CmdLogWater
	case "log_food":
		return engine.CmdLogFood
	case "log_workout":
		return engine.CmdLogWorkout
	case "cancel":
		return engine.CmdCancel
	case "check_progress":
		return engine.CmdCheckProgress
	}
	// Неизвестная команда уходит в движок как есть и получает подсказку.
	return engine.Command(msg.Command())
}

// reply отправляет ответ движка, превращая подсказанные варианты
// в reply-клавиатуру.
func (b *Bot) reply(chatID int64, resp engine.Response) {
	msg := tgbotapi.NewMessage(chatID, resp.Text)

	switch {
	case len(resp.Choices) > 0:
		keyboard := tgbotapi.NewReplyKeyboard(choiceRows(resp.Choices)...)
		keyboard.OneTimeKeyboard = true
		msg.ReplyMarkup = keyboard
	case resp.RemoveChoices:
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	}

	if _, err := b.api.Send(msg); err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("Не удалось отправить сообщение")
	}
}

// choiceRows раскладывает варианты по рядам не длиннее трёх кнопок.
func choiceRows(choices []string) [][]tgbotapi.KeyboardButton {
	var rows [][]tgbotapi.KeyboardButton
	for len(choices) > 0 {
		n := 3
		if len(choices) < n {
			n = len(choices)
		}
		row := make([]tgbotapi.KeyboardButton, 0, n)
		for _, c := range choices[:n] {
			row = append(row, tgbotapi.NewKeyboardButton(c))
		}
		rows = append(rows, row)
		choices = choices[n:]
	}
	return rows
}
