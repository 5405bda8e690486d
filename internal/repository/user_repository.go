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

// This repository is used to manipulate the users in the system. Identities are
// created at registration and only read afterwards.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error // Inserts a user, with its secret, in the repository

	GetByUUID(ctx context.Context, uuid string) (*entity.User, error)                // Retrieves the user with the given uuid.
	GetByTag(ctx context.Context, tag string) (*entity.User, error)                  // Retrieves the user with the given tag. A miss is a normal outcome
	GetForLogin(ctx context.Context, username, tag string) (*entity.User, error)     // Retrieves the user with given name and tag, it also returns its hashed password, hence, used for login.
	TagExists(ctx context.Context, tag string) (bool, error)                         // Reports whether a tag is already taken
}

// Implementation of the repository using a SQLite DB
type SQLiteUserRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewSQLiteUserRepository(db *gorm.DB, timeout time.Duration) UserRepository {
	return &SQLiteUserRepository{db, timeout}
}

func (repo *SQLiteUserRepository) Create(ctx context.Context, user *entity.User) error {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	return wrap("user.create", repo.db.WithContext(ctx).Create(user).Error)
}

func (repo *SQLiteUserRepository) GetByUUID(ctx context.Context, uuid string) (*entity.User, error) {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	var user entity.User
	if err := repo.db.WithContext(ctx).Where("UUID = ?", uuid).First(&user).Error; err != nil {
		return nil, wrap("user.get", err)
	}
	return &user, nil
}

func (repo *SQLiteUserRepository) GetByTag(ctx context.Context, tag string) (*entity.User, error) {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	var user entity.User
	if err := repo.db.WithContext(ctx).Where("tag = ?", tag).First(&user).Error; err != nil {
		return nil, wrap("user.get-by-tag", err)
	}
	return &user, nil
}

func (repo *SQLiteUserRepository) GetForLogin(ctx context.Context, username, tag string) (*entity.User, error) {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	var user entity.User
	err := repo.db.WithContext(ctx).
		Preload("Secret").
		Where("username = ? AND tag = ?", username, tag).
		First(&user).Error
	if err != nil {
		return nil, wrap("user.get-for-login", err)
	}
	return &user, nil
}

func (repo *SQLiteUserRepository) TagExists(ctx context.Context, tag string) (bool, error) {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	var count int64
	if err := repo.db.WithContext(ctx).Model(&entity.User{}).Where("tag = ?", tag).Count(&count).Error; err != nil {
		return false, wrap("user.tag-exists", err)
	}
	return count > 0, nil
}
