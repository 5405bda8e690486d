/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package repository

import (
	"context"
	"time"

	"teenconnect/internal/entity"

	"gorm.io/gorm"
)

// This repository is used to manipulate the messages in the system. Messages are
// append-only: it allows Create and Read operations, nothing else.
type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error // Appends a message, the store assigns id and timestamp

	ListByChat(ctx context.Context, chatID string, limit int) ([]*entity.Message, error) // Retrieves up to limit messages of the chat with the given ID, oldest first
}

// Implementation of the repository using a SQLite DB
type SQLiteMessageRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewSQLiteMessageRepository(db *gorm.DB, timeout time.Duration) MessageRepository {
	return &SQLiteMessageRepository{db, timeout}
}

func (repo *SQLiteMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	return wrap("message.create", repo.db.WithContext(ctx).Create(message).Error)
}

func (repo *SQLiteMessageRepository) ListByChat(ctx context.Context, chatID string, limit int) ([]*entity.Message, error) {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	var messages []*entity.Message
	// Ties on created_at are broken by the monotonic id
	err := repo.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, wrap("message.list", err)
	}
	return messages, nil
}
