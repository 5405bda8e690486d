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
	"testing"
	"time"

	"teenconnect/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageOrderingOldestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteMessageRepository(db, 0)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, content := range []string{"first", "second", "third"} {
		err := repo.Create(ctx, &entity.Message{
			ChatID:     "a:b",
			Content:    content,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
			SenderUUID: "a",
		})
		require.NoError(t, err)
	}

	messages, err := repo.ListByChat(ctx, "a:b", 10)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
	assert.Equal(t, "third", messages[2].Content)
}

// Two messages landing on the same timestamp must still come back in insertion
// order, the monotonic id breaks the tie
func TestMessageOrderingEqualTimestamps(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteMessageRepository(db, 0)
	ctx := context.Background()

	at := time.Now()
	for _, content := range []string{"one", "two", "three"} {
		err := repo.Create(ctx, &entity.Message{
			ChatID:    "a:b",
			Content:   content,
			CreatedAt: at,
		})
		require.NoError(t, err)
	}

	messages, err := repo.ListByChat(ctx, "a:b", 10)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "one", messages[0].Content)
	assert.Equal(t, "two", messages[1].Content)
	assert.Equal(t, "three", messages[2].Content)
	assert.Less(t, messages[0].ID, messages[1].ID)
	assert.Less(t, messages[1].ID, messages[2].ID)
}

func TestMessageListRespectsLimit(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteMessageRepository(db, 0)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Message{ChatID: "g1", Content: "m", IsForGroup: true}))
	}

	messages, err := repo.ListByChat(ctx, "g1", 2)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestMessageListIsolatedPerChat(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteMessageRepository(db, 0)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Message{ChatID: "a:b", Content: "private"}))
	require.NoError(t, repo.Create(ctx, &entity.Message{ChatID: "g1", Content: "group", IsForGroup: true}))

	messages, err := repo.ListByChat(ctx, "a:b", 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "private", messages[0].Content)

	messages, err = repo.ListByChat(ctx, "empty", 10)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestMessageCreateAssignsTimestamp(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteMessageRepository(db, 0)

	message := &entity.Message{ChatID: "a:b", Content: "hey"}
	require.NoError(t, repo.Create(context.Background(), message))
	assert.False(t, message.CreatedAt.IsZero())
	assert.NotZero(t, message.ID)
}
