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
	"regexp"
	"testing"

	"teenconnect/internal/alog"
	"teenconnect/internal/apperr"
	"teenconnect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) AuthService {
	t.Helper()

	db := newTestDB(t)
	users := repository.NewSQLiteUserRepository(db, 0)
	return NewAuthService(users, alog.Nop())
}

func TestRegisterAssignsNumericTag(t *testing.T) {
	svc := newAuthFixture(t)

	user, err := svc.Register(context.Background(), "alice", "supersecret")
	require.NoError(t, err)
	assert.NotEmpty(t, user.UUID)
	assert.Equal(t, "alice", user.Username)
	assert.Regexp(t, regexp.MustCompile(`^[0-9]{4,6}$`), user.Tag)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "   ", "supersecret")
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.Register(ctx, "alice", "short")
	assert.True(t, apperr.IsValidation(err))
}

func TestLoginRoundTrip(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "supersecret")
	require.NoError(t, err)

	user, err := svc.Login(ctx, "alice", registered.Tag, "supersecret")
	require.NoError(t, err)
	assert.Equal(t, registered.UUID, user.UUID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "supersecret")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", registered.Tag, "wrongpass")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

// An unknown account and a bad password must be indistinguishable to the caller
func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "nobody", "1234", "whatever")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

// Two registrations under the same name still get distinct tags
func TestRegisterTagsAreUnique(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, "alice", "supersecret")
	require.NoError(t, err)
	second, err := svc.Register(ctx, "alice", "supersecret")
	require.NoError(t, err)

	assert.NotEqual(t, first.Tag, second.Tag)
	assert.NotEqual(t, first.UUID, second.UUID)
}
