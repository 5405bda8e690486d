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
	"teenconnect/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteSearchMatchesTitleAndContent(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteNoteRepository(db, 0)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Note{OwnerUUID: "u1", Title: "Homework plan", Content: "algebra"}))
	require.NoError(t, repo.Create(ctx, &entity.Note{OwnerUUID: "u1", Title: "Shopping", Content: "milk and algebra book"}))
	require.NoError(t, repo.Create(ctx, &entity.Note{OwnerUUID: "u1", Title: "Diary", Content: "nothing"}))

	notes, err := repo.List(ctx, "u1", "algebra")
	require.NoError(t, err)
	assert.Len(t, notes, 2)

	notes, err = repo.List(ctx, "u1", "")
	require.NoError(t, err)
	assert.Len(t, notes, 3)
}

func TestNoteListScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteNoteRepository(db, 0)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Note{OwnerUUID: "u1", Title: "mine", Content: "c"}))
	require.NoError(t, repo.Create(ctx, &entity.Note{OwnerUUID: "u2", Title: "theirs", Content: "c"}))

	notes, err := repo.List(ctx, "u1", "")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "mine", notes[0].Title)
}

// Touching someone else's note must come back as a miss, not as a silent no-op
func TestNoteUpdateWrongOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteNoteRepository(db, 0)
	ctx := context.Background()

	note := &entity.Note{OwnerUUID: "u1", Title: "mine", Content: "c"}
	require.NoError(t, repo.Create(ctx, note))

	err := repo.Update(ctx, "u2", note.ID, "hijacked", "c")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = repo.Delete(ctx, "u2", note.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	require.NoError(t, repo.Update(ctx, "u1", note.ID, "renamed", "c2"))
	notes, err := repo.List(ctx, "u1", "")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "renamed", notes[0].Title)
	assert.Equal(t, "c2", notes[0].Content)
}

func TestTaskStatusLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteTaskRepository(db, 0)
	ctx := context.Background()

	task := &entity.Task{OwnerUUID: "u1", Title: "revise ch 3"}
	require.NoError(t, repo.Create(ctx, task))
	assert.Equal(t, entity.TaskPending, task.Status)

	require.NoError(t, repo.SetStatus(ctx, "u1", task.ID, entity.TaskDone))

	done, err := repo.List(ctx, "u1", entity.TaskDone)
	require.NoError(t, err)
	require.Len(t, done, 1)

	pending, err := repo.List(ctx, "u1", entity.TaskPending)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestTaskOrderedByDueDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteTaskRepository(db, 0)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Task{OwnerUUID: "u1", Title: "later", DueDate: "2026-09-10"}))
	require.NoError(t, repo.Create(ctx, &entity.Task{OwnerUUID: "u1", Title: "sooner", DueDate: "2026-09-01"}))

	tasks, err := repo.List(ctx, "u1", "")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "sooner", tasks[0].Title)
}
