/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"context"
	"strings"
	"time"

	"teenconnect/internal/alog"
	"teenconnect/internal/apperr"
	"teenconnect/internal/entity"
	"teenconnect/internal/repository"

	"github.com/samber/lo"
)

// Service used to handle messages, both for DM and group chats
type ChatService interface {
	SendDirect(ctx context.Context, sender, recipient, content string) (*entity.Message, error) // Appends a message between two users
	SendGroup(ctx context.Context, sender, groupUUID, content string) (*entity.Message, error)  // Appends a message inside a group chat, the sender must be a member

	DirectHistory(ctx context.Context, a, b string, limit int) ([]*entity.Message, error)      // Retrieves the chat between two users, oldest first. Symmetric in a and b
	GroupHistory(ctx context.Context, groupUUID string, limit int) ([]*entity.Message, error)  // Retrieves the messages in the group chat, oldest first
}

// ChatKey returns the canonical conversation key for a private chat.
// The two UUIDs are sorted so A-talks-to-B and B-talks-to-A resolve to the same key.
func ChatKey(a, b string) string {
	if a < b {
		return a + ":" + b
	}
	return b + ":" + a
}

type chatService struct {
	messages repository.MessageRepository
	groups   repository.GroupRepository

	cache        *historyCache
	historyLimit int // Applied when the caller passes no limit

	logger alog.Logger
}

func NewChatService(messages repository.MessageRepository, groups repository.GroupRepository, historyLimit int, cacheTTL time.Duration, logger alog.Logger) ChatService {
	return &chatService{
		messages:     messages,
		groups:       groups,
		cache:        newHistoryCache(cacheTTL),
		historyLimit: historyLimit,
		logger:       logger,
	}
}

func (c *chatService) Logf(format string, v ...any) {
	c.logger.Logf(format, v...)
}

func (c *chatService) SendDirect(ctx context.Context, sender, recipient, content string) (*entity.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &apperr.ValidationError{Field: "content", Reason: "must not be empty"}
	}

	message := &entity.Message{
		ChatID:       ChatKey(sender, recipient),
		Content:      content,
		CreatedAt:    time.Now(),
		SenderUUID:   sender,
		ReceiverUUID: recipient,
		IsForGroup:   false,
	}
	// A failed append is reported as is, never retried: a blind retry could duplicate the message
	if err := c.messages.Create(ctx, message); err != nil {
		c.Logf("DM append failed {%v}", err)
		return nil, err
	}
	c.cache.Invalidate(message.ChatID)

	c.Logf("Message %d appended to chat {%s}", message.ID, message.ChatID)
	return message, nil
}

func (c *chatService) SendGroup(ctx context.Context, sender, groupUUID, content string) (*entity.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &apperr.ValidationError{Field: "content", Reason: "must not be empty"}
	}

	members, err := c.groups.GetMembers(ctx, groupUUID)
	if err != nil {
		return nil, err
	}
	if !lo.ContainsBy(members, func(u *entity.User) bool { return u.UUID == sender }) {
		return nil, &apperr.ValidationError{Field: "sender", Reason: "not a member of the group"}
	}

	message := &entity.Message{
		ChatID:       groupUUID,
		Content:      content,
		CreatedAt:    time.Now(),
		SenderUUID:   sender,
		ReceiverUUID: groupUUID,
		IsForGroup:   true,
	}
	if err := c.messages.Create(ctx, message); err != nil {
		c.Logf("Group append failed {%v}", err)
		return nil, err
	}
	c.cache.Invalidate(groupUUID)

	c.Logf("Message %d appended to group {%s}", message.ID, groupUUID)
	return message, nil
}

func (c *chatService) DirectHistory(ctx context.Context, a, b string, limit int) ([]*entity.Message, error) {
	return c.history(ctx, ChatKey(a, b), limit)
}

func (c *chatService) GroupHistory(ctx context.Context, groupUUID string, limit int) ([]*entity.Message, error) {
	return c.history(ctx, groupUUID, limit)
}

func (c *chatService) history(ctx context.Context, chatID string, limit int) ([]*entity.Message, error) {
	if limit <= 0 {
		limit = c.historyLimit
	}

	if messages, ok := c.cache.Get(chatID, limit); ok {
		return messages, nil
	}

	messages, err := c.messages.ListByChat(ctx, chatID, limit)
	if err != nil {
		return nil, err
	}
	c.cache.Put(chatID, limit, messages)
	return messages, nil
}
