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

func TestBackupRoundTrip(t *testing.T) {
	db := newTestDB(t)
	backups := NewSQLiteBackupRepository(db, 0)
	ctx := context.Background()

	require.NoError(t, db.Create(&entity.Note{OwnerUUID: "u1", Title: "n", Content: "c", CreatedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&entity.Task{OwnerUUID: "u1", Title: "t", Status: entity.TaskPending, CreatedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&entity.SocialLink{OwnerUUID: "u1", Platform: "ig", Username: "me", URL: "https://x", AddedAt: time.Now()}).Error)

	snap, err := backups.Export(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, snap.Notes, 1)
	assert.Len(t, snap.Tasks, 1)
	assert.Len(t, snap.Links, 1)
	assert.Empty(t, snap.Questions)

	require.NoError(t, backups.Import(ctx, "u1", snap))

	restored, err := backups.Export(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, restored.Notes, 1)
	assert.Equal(t, "n", restored.Notes[0].Title)
	require.Len(t, restored.Tasks, 1)
	assert.Equal(t, "t", restored.Tasks[0].Title)
}

// An import replaces everything the user currently owns
func TestBackupImportReplacesExistingData(t *testing.T) {
	db := newTestDB(t)
	backups := NewSQLiteBackupRepository(db, 0)
	ctx := context.Background()

	require.NoError(t, db.Create(&entity.Note{OwnerUUID: "u1", Title: "old", Content: "c", CreatedAt: time.Now()}).Error)

	snap := &Snapshot{
		Notes: []*entity.Note{{Title: "new", Content: "c", CreatedAt: time.Now()}},
	}
	require.NoError(t, backups.Import(ctx, "u1", snap))

	var notes []*entity.Note
	require.NoError(t, db.Where("owner_uuid = ?", "u1").Find(&notes).Error)
	require.Len(t, notes, 1)
	assert.Equal(t, "new", notes[0].Title)
}

// Importing a snapshot exported by another user must land on the importer
func TestBackupImportForcesOwner(t *testing.T) {
	db := newTestDB(t)
	backups := NewSQLiteBackupRepository(db, 0)
	ctx := context.Background()

	snap := &Snapshot{
		Notes: []*entity.Note{{OwnerUUID: "someone-else", Title: "n", Content: "c", CreatedAt: time.Now()}},
	}
	require.NoError(t, backups.Import(ctx, "u1", snap))

	var count int64
	require.NoError(t, db.Model(&entity.Note{}).Where("owner_uuid = ?", "u1").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestBackupDoesNotTouchOtherUsers(t *testing.T) {
	db := newTestDB(t)
	backups := NewSQLiteBackupRepository(db, 0)
	ctx := context.Background()

	require.NoError(t, db.Create(&entity.Note{OwnerUUID: "u2", Title: "keep", Content: "c", CreatedAt: time.Now()}).Error)

	require.NoError(t, backups.Import(ctx, "u1", &Snapshot{}))

	var count int64
	require.NoError(t, db.Model(&entity.Note{}).Where("owner_uuid = ?", "u2").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
