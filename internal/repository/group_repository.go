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

// This repository is used to manipulate the groups and user-groups relations in
// the system. Groups only accumulate members, there is no removal operation.
type GroupRepository interface {
	Create(ctx context.Context, group *entity.ChatGroup, creator *entity.User) error // Inserts a group with its creator as first member, in one transaction

	GetByUUID(ctx context.Context, uuid string) (*entity.ChatGroup, error)   // Retrieves the group with the given uuid.
	GetMembers(ctx context.Context, uuid string) ([]*entity.User, error)     // Retrieves the members of the group with given uuid.
	GetForUser(ctx context.Context, userUUID string) ([]*entity.ChatGroup, error) // Retrieves all the groups the user is in

	AddMember(ctx context.Context, uuid, userUUID string) error // Adds a user to the group. Joining twice is the same as joining once
}

// Implementation of the repository using a SQLite DB
type SQLiteGroupRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewSQLiteGroupRepository(db *gorm.DB, timeout time.Duration) GroupRepository {
	return &SQLiteGroupRepository{db, timeout}
}

// Create writes the group row and the creator's membership row inside a single
// transaction, so a group can never exist without its creator as a member.
func (repo *SQLiteGroupRepository) Create(ctx context.Context, group *entity.ChatGroup, creator *entity.User) error {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Members.*").Create(group).Error; err != nil {
			return err
		}
		if err := tx.Model(group).Association("Members").Append(creator); err != nil {
			return err
		}
		return nil
	})
	return wrap("group.create", err)
}

func (repo *SQLiteGroupRepository) GetByUUID(ctx context.Context, uuid string) (*entity.ChatGroup, error) {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	var group entity.ChatGroup
	if err := repo.db.WithContext(ctx).Where("UUID = ?", uuid).First(&group).Error; err != nil {
		return nil, wrap("group.get", err)
	}
	return &group, nil
}

func (repo *SQLiteGroupRepository) GetMembers(ctx context.Context, uuid string) ([]*entity.User, error) {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	var group entity.ChatGroup
	if err := repo.db.WithContext(ctx).Preload("Members").Where("UUID = ?", uuid).First(&group).Error; err != nil {
		return nil, wrap("group.members", err)
	}
	return group.Members, nil
}

func (repo *SQLiteGroupRepository) GetForUser(ctx context.Context, userUUID string) ([]*entity.ChatGroup, error) {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	var groups []*entity.ChatGroup
	err := repo.db.WithContext(ctx).
		Joins("JOIN group_members ON group_members.chat_group_uuid = chat_groups.uuid").
		Where("group_members.user_uuid = ?", userUUID).
		Find(&groups).Error
	if err != nil {
		return nil, wrap("group.for-user", err)
	}
	return groups, nil
}

// AddMember is idempotent: the membership row is only written when missing,
// joining an already joined group changes nothing.
func (repo *SQLiteGroupRepository) AddMember(ctx context.Context, uuid, userUUID string) error {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var group entity.ChatGroup
		if err := tx.Where("UUID = ?", uuid).First(&group).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Table("group_members").
			Where("chat_group_uuid = ? AND user_uuid = ?", uuid, userUUID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		return tx.Model(&group).Association("Members").Append(&entity.User{UUID: userUUID})
	})
	return wrap("group.add-member", err)
}
