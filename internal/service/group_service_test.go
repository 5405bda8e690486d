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
	"testing"

	"teenconnect/internal/alog"
	"teenconnect/internal/apperr"
	"teenconnect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newGroupFixture(t *testing.T) (GroupService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	groups := repository.NewSQLiteGroupRepository(db, 0)
	users := repository.NewSQLiteUserRepository(db, 0)
	return NewGroupService(groups, users, alog.Nop()), db
}

func TestCreateGroupRejectsEmptyName(t *testing.T) {
	svc, db := newGroupFixture(t)
	creator := seedUser(t, db, "u1", "alice", "1234")

	for _, name := range []string{"", "   "} {
		_, err := svc.CreateGroup(context.Background(), name, creator)
		assert.True(t, apperr.IsValidation(err))
	}
}

func TestCreateGroupCreatorIsMember(t *testing.T) {
	svc, db := newGroupFixture(t)
	ctx := context.Background()
	creator := seedUser(t, db, "u1", "alice", "1234")

	group, err := svc.CreateGroup(ctx, "  Math Club  ", creator)
	require.NoError(t, err)
	assert.Equal(t, "Math Club", group.Name)
	assert.NotEmpty(t, group.UUID)
	assert.Equal(t, "u1", group.CreatorUUID)

	members, err := svc.GetMembers(ctx, group.UUID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "u1", members[0].UUID)
}

func TestJoinGroupIdempotent(t *testing.T) {
	svc, db := newGroupFixture(t)
	ctx := context.Background()

	creator := seedUser(t, db, "u1", "alice", "1234")
	seedUser(t, db, "u2", "bob", "5678")

	group, err := svc.CreateGroup(ctx, "Chess", creator)
	require.NoError(t, err)

	require.NoError(t, svc.JoinGroup(ctx, group.UUID, "u2"))
	require.NoError(t, svc.JoinGroup(ctx, group.UUID, "u2"))

	members, err := svc.GetMembers(ctx, group.UUID)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestJoinGroupUnknownUser(t *testing.T) {
	svc, db := newGroupFixture(t)
	ctx := context.Background()

	creator := seedUser(t, db, "u1", "alice", "1234")
	group, err := svc.CreateGroup(ctx, "Chess", creator)
	require.NoError(t, err)

	err = svc.JoinGroup(ctx, group.UUID, "ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	members, err := svc.GetMembers(ctx, group.UUID)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestGroupsOf(t *testing.T) {
	svc, db := newGroupFixture(t)
	ctx := context.Background()

	alice := seedUser(t, db, "u1", "alice", "1234")
	bob := seedUser(t, db, "u2", "bob", "5678")

	g1, err := svc.CreateGroup(ctx, "Math Club", alice)
	require.NoError(t, err)
	_, err = svc.CreateGroup(ctx, "Chess", bob)
	require.NoError(t, err)

	groups, err := svc.GroupsOf(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, g1.UUID, groups[0].UUID)
}
