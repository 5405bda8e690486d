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

// This repository handles the social hub bookmarks of a user
type LinkRepository interface {
	Create(ctx context.Context, link *entity.SocialLink) error
	List(ctx context.Context, ownerUUID string) ([]*entity.SocialLink, error) // Newest first
	Delete(ctx context.Context, ownerUUID string, id uint64) error
}

// Implementation of the repository using a SQLite DB
type SQLiteLinkRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewSQLiteLinkRepository(db *gorm.DB, timeout time.Duration) LinkRepository {
	return &SQLiteLinkRepository{db, timeout}
}

func (repo *SQLiteLinkRepository) Create(ctx context.Context, link *entity.SocialLink) error {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	if link.AddedAt.IsZero() {
		link.AddedAt = time.Now()
	}
	return wrap("link.create", repo.db.WithContext(ctx).Create(link).Error)
}

func (repo *SQLiteLinkRepository) List(ctx context.Context, ownerUUID string) ([]*entity.SocialLink, error) {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	var links []*entity.SocialLink
	err := repo.db.WithContext(ctx).
		Where("owner_uuid = ?", ownerUUID).
		Order("id DESC").
		Find(&links).Error
	if err != nil {
		return nil, wrap("link.list", err)
	}
	return links, nil
}

func (repo *SQLiteLinkRepository) Delete(ctx context.Context, ownerUUID string, id uint64) error {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	res := repo.db.WithContext(ctx).Where("id = ? AND owner_uuid = ?", id, ownerUUID).Delete(&entity.SocialLink{})
	if res.Error != nil {
		return wrap("link.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("link.delete", gorm.ErrRecordNotFound)
	}
	return nil
}
