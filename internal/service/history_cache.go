/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"sync"
	"time"

	"teenconnect/internal/entity"
)

// historyCache keeps recently read chat histories for a short while. Every
// append to a chat invalidates its entry, so a read after a write always goes
// to the store: the cache can only serve histories nothing has been appended
// to since. A non-positive TTL disables it.
type historyCache struct {
	lock    sync.RWMutex
	ttl     time.Duration
	entries map[string]historyEntry
}

type historyEntry struct {
	messages []*entity.Message
	limit    int
	expires  time.Time
}

func newHistoryCache(ttl time.Duration) *historyCache {
	return &historyCache{
		ttl:     ttl,
		entries: make(map[string]historyEntry),
	}
}

func (h *historyCache) Get(chatID string, limit int) ([]*entity.Message, bool) {
	if h.ttl <= 0 {
		return nil, false
	}
	h.lock.RLock()
	defer h.lock.RUnlock()

	entry, ok := h.entries[chatID]
	if !ok || entry.limit != limit || time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.messages, true
}

func (h *historyCache) Put(chatID string, limit int, messages []*entity.Message) {
	if h.ttl <= 0 {
		return
	}
	h.lock.Lock()
	h.entries[chatID] = historyEntry{messages: messages, limit: limit, expires: time.Now().Add(h.ttl)}
	h.lock.Unlock()
}

func (h *historyCache) Invalidate(chatID string) {
	if h.ttl <= 0 {
		return
	}
	h.lock.Lock()
	delete(h.entries, chatID)
	h.lock.Unlock()
}
