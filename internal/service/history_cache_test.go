/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"testing"
	"time"

	"teenconnect/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestHistoryCacheHitAndInvalidate(t *testing.T) {
	cache := newHistoryCache(time.Minute)
	messages := []*entity.Message{{ID: 1, Content: "hi"}}

	_, ok := cache.Get("a:b", 10)
	assert.False(t, ok)

	cache.Put("a:b", 10, messages)
	got, ok := cache.Get("a:b", 10)
	assert.True(t, ok)
	assert.Equal(t, messages, got)

	// A different limit is a different query
	_, ok = cache.Get("a:b", 20)
	assert.False(t, ok)

	cache.Invalidate("a:b")
	_, ok = cache.Get("a:b", 10)
	assert.False(t, ok)
}

func TestHistoryCacheExpires(t *testing.T) {
	cache := newHistoryCache(time.Millisecond)
	cache.Put("a:b", 10, []*entity.Message{{ID: 1}})

	time.Sleep(5 * time.Millisecond)
	_, ok := cache.Get("a:b", 10)
	assert.False(t, ok)
}

func TestHistoryCacheDisabledByZeroTTL(t *testing.T) {
	cache := newHistoryCache(0)
	cache.Put("a:b", 10, []*entity.Message{{ID: 1}})

	_, ok := cache.Get("a:b", 10)
	assert.False(t, ok)
}
