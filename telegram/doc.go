// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package telegram connects the conversation engine to the Telegram Bot API.

Convert turns a Bot API update into an Update carrying a
conversation.Input:

  - callback query → conversation.Button(data)
  - /command message → conversation.Command(name)
  - text message → conversation.Text(text)

Anything else (stickers, photos, channel posts) is skipped.

Bot.Run reads the long-polling channel and hands each Update to a
HandlerFunc. Updates for the same user go through a per-user queue so they
are processed in arrival order; different users are processed in parallel.
Button presses are acknowledged before the handler runs. The returned Reply
is rendered as an inline keyboard, editing the pressed message when
Reply.Edit is set and falling back to a new message if the edit fails.
*/
package telegram
