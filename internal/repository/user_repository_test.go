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

	"teenconnect/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserGetByTag(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteUserRepository(db, 0)
	ctx := context.Background()

	seedUser(t, db, "u1", "alice", "1234")

	user, err := repo.GetByTag(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UUID)
	// The hash table is never joined on a plain lookup
	assert.Empty(t, user.Secret.Hash)

	_, err = repo.GetByTag(ctx, "0000")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUserGetForLoginLoadsSecret(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteUserRepository(db, 0)
	ctx := context.Background()

	seedUser(t, db, "u1", "alice", "1234")

	user, err := repo.GetForLogin(ctx, "alice", "1234")
	require.NoError(t, err)
	assert.Equal(t, "x", user.Secret.Hash)

	// Both the name and the tag must match
	_, err = repo.GetForLogin(ctx, "alice", "9999")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = repo.GetForLogin(ctx, "bob", "1234")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUserTagExists(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteUserRepository(db, 0)
	ctx := context.Background()

	seedUser(t, db, "u1", "alice", "1234")

	taken, err := repo.TagExists(ctx, "1234")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.TagExists(ctx, "5678")
	require.NoError(t, err)
	assert.False(t, taken)
}
