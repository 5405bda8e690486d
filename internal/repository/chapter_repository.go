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

// This repository handles the study-material chapters of a user
type ChapterRepository interface {
	Create(ctx context.Context, chapter *entity.Chapter) error
	List(ctx context.Context, ownerUUID, search string) ([]*entity.Chapter, error) // Grouped by subject, newest chapters first; search matches subject or title
}

// Implementation of the repository using a SQLite DB
type SQLiteChapterRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewSQLiteChapterRepository(db *gorm.DB, timeout time.Duration) ChapterRepository {
	return &SQLiteChapterRepository{db, timeout}
}

func (repo *SQLiteChapterRepository) Create(ctx context.Context, chapter *entity.Chapter) error {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	if chapter.CreatedAt.IsZero() {
		chapter.CreatedAt = time.Now()
	}
	return wrap("chapter.create", repo.db.WithContext(ctx).Create(chapter).Error)
}

func (repo *SQLiteChapterRepository) List(ctx context.Context, ownerUUID, search string) ([]*entity.Chapter, error) {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	q := repo.db.WithContext(ctx).Where("owner_uuid = ?", ownerUUID)
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("subject LIKE ? OR title LIKE ?", like, like)
	}

	var chapters []*entity.Chapter
	if err := q.Order("subject ASC, id DESC").Find(&chapters).Error; err != nil {
		return nil, wrap("chapter.list", err)
	}
	return chapters, nil
}
