// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package telegram

import (
	"context"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/danielhkuo/ballotcheck/conversation"
)

// API is the part of *tgbotapi.BotAPI the transport uses.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Update is one inbound event addressed to a user.
type Update struct {
	RequestID  string // correlates log lines
	OwnerID    int64
	ChatID     int64
	MessageID  int    // message carrying the pressed button, if any
	CallbackID string // set for button presses
	Input      conversation.Input
}

// HandlerFunc turns an update into the reply to render.
type HandlerFunc func(ctx context.Context, u Update) (conversation.Reply, error)

// Bot delivers updates to a handler and renders its replies. Updates for
// one user are handled one at a time in arrival order; different users
// are handled concurrently.
type Bot struct {
	api     API
	handler HandlerFunc

	mu     sync.Mutex
	queues map[int64][]Update // pending updates per owner with an active worker
	wg     sync.WaitGroup
}

// New returns a bot that sends through api.
func New(api API, handler HandlerFunc) *Bot {
	return &Bot{
		api:     api,
		handler: handler,
		queues:  make(map[int64][]Update),
	}
}

// Run consumes updates until ctx is cancelled or updates is closed, then
// waits for in-flight updates to finish.
func (b *Bot) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	defer b.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case raw, ok := <-updates:
			if !ok {
				return
			}
			u, ok := Convert(raw)
			if !ok {
				slog.Debug("update skipped", "update_id", raw.UpdateID)
				continue
			}
			b.enqueue(ctx, u)
		}
	}
}

// enqueue appends u to its owner's queue, starting a worker if none runs.
func (b *Bot) enqueue(ctx context.Context, u Update) {
	b.mu.Lock()
	defer b.mu.Unlock()

	queue, running := b.queues[u.OwnerID]
	b.queues[u.OwnerID] = append(queue, u)
	if running {
		return
	}

	b.wg.Add(1)
	go b.work(ctx, u.OwnerID)
}

func (b *Bot) work(ctx context.Context, ownerID int64) {
	defer b.wg.Done()

	for {
		b.mu.Lock()
		queue := b.queues[ownerID]
		if len(queue) == 0 {
			delete(b.queues, ownerID)
			b.mu.Unlock()
			return
		}
		u := queue[0]
		b.queues[ownerID] = queue[1:]
		b.mu.Unlock()

		b.Dispatch(ctx, u)
	}
}

// Dispatch handles a single update synchronously.
func (b *Bot) Dispatch(ctx context.Context, u Update) {
	if u.CallbackID != "" {
		if _, err := b.api.Request(tgbotapi.NewCallback(u.CallbackID, "")); err != nil {
			slog.Warn("failed to answer callback", "request_id", u.RequestID, "error", err)
		}
	}

	// Errors are logged by the handler chain; the reply still carries a
	// notice for the user.
	reply, _ := b.handler(ctx, u)

	if err := b.render(u, reply); err != nil {
		slog.Error("failed to send reply", "request_id", u.RequestID, "error", err)
	}
}

// render shows reply, editing the pressed message when asked to.
func (b *Bot) render(u Update, reply conversation.Reply) error {
	markup := Keyboard(reply.Options)

	if reply.Edit && u.MessageID != 0 {
		edit := tgbotapi.NewEditMessageText(u.ChatID, u.MessageID, reply.Text)
		edit.ReplyMarkup = markup
		_, err := b.api.Send(edit)
		if err == nil {
			return nil
		}
		slog.Warn("edit failed, sending new message", "request_id", u.RequestID, "error", err)
	}

	msg := tgbotapi.NewMessage(u.ChatID, reply.Text)
	if markup != nil {
		msg.ReplyMarkup = *markup
	}
	_, err := b.api.Send(msg)
	return err
}

// Keyboard converts option rows to an inline keyboard, or nil if empty.
func Keyboard(rows [][]conversation.Option) *tgbotapi.InlineKeyboardMarkup {
	if len(rows) == 0 {
		return nil
	}
	keyboard := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, opt := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(opt.Label, opt.Data))
		}
		keyboard = append(keyboard, buttons)
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(keyboard...)
	return &markup
}

// Convert extracts the conversation input from a Bot API update. Updates
// without a sender, and messages without text, are not conversation input.
func Convert(raw tgbotapi.Update) (Update, bool) {
	u := Update{RequestID: uuid.NewString()}

	switch {
	case raw.CallbackQuery != nil:
		cq := raw.CallbackQuery
		if cq.From == nil || cq.Message == nil || cq.Message.Chat == nil {
			return Update{}, false
		}
		u.OwnerID = cq.From.ID
		u.ChatID = cq.Message.Chat.ID
		u.MessageID = cq.Message.MessageID
		u.CallbackID = cq.ID
		u.Input = conversation.Button(cq.Data)

	case raw.Message != nil:
		msg := raw.Message
		if msg.From == nil || msg.Chat == nil {
			return Update{}, false
		}
		u.OwnerID = msg.From.ID
		u.ChatID = msg.Chat.ID
		switch {
		case msg.IsCommand():
			u.Input = conversation.Command(msg.Command())
		case msg.Text != "":
			u.Input = conversation.Text(msg.Text)
		default:
			return Update{}, false
		}

	default:
		return Update{}, false
	}

	return u, true
}
