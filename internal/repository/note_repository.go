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

// This repository handles the notepad entries of a user
type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	List(ctx context.Context, ownerUUID, search string) ([]*entity.Note, error) // Newest first; search matches title or content when non-empty
	Update(ctx context.Context, ownerUUID string, id uint64, title, content string) error
	Delete(ctx context.Context, ownerUUID string, id uint64) error
}

// Implementation of the repository using a SQLite DB
type SQLiteNoteRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewSQLiteNoteRepository(db *gorm.DB, timeout time.Duration) NoteRepository {
	return &SQLiteNoteRepository{db, timeout}
}

func (repo *SQLiteNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	return wrap("note.create", repo.db.WithContext(ctx).Create(note).Error)
}

func (repo *SQLiteNoteRepository) List(ctx context.Context, ownerUUID, search string) ([]*entity.Note, error) {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	q := repo.db.WithContext(ctx).Where("owner_uuid = ?", ownerUUID)
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("title LIKE ? OR content LIKE ?", like, like)
	}

	var notes []*entity.Note
	if err := q.Order("id DESC").Find(&notes).Error; err != nil {
		return nil, wrap("note.list", err)
	}
	return notes, nil
}

func (repo *SQLiteNoteRepository) Update(ctx context.Context, ownerUUID string, id uint64, title, content string) error {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	res := repo.db.WithContext(ctx).
		Model(&entity.Note{}).
		Where("id = ? AND owner_uuid = ?", id, ownerUUID).
		Updates(map[string]any{"title": title, "content": content})
	if res.Error != nil {
		return wrap("note.update", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("note.update", gorm.ErrRecordNotFound)
	}
	return nil
}

func (repo *SQLiteNoteRepository) Delete(ctx context.Context, ownerUUID string, id uint64) error {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	res := repo.db.WithContext(ctx).Where("id = ? AND owner_uuid = ?", id, ownerUUID).Delete(&entity.Note{})
	if res.Error != nil {
		return wrap("note.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("note.delete", gorm.ErrRecordNotFound)
	}
	return nil
}
