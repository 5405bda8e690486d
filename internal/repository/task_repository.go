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

// This repository handles the planner tasks of a user
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	List(ctx context.Context, ownerUUID, status string) ([]*entity.Task, error) // Filtered by status when non-empty, due date order
	SetStatus(ctx context.Context, ownerUUID string, id uint64, status string) error
	UpdateDescription(ctx context.Context, ownerUUID string, id uint64, description string) error
	Delete(ctx context.Context, ownerUUID string, id uint64) error
}

// Implementation of the repository using a SQLite DB
type SQLiteTaskRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewSQLiteTaskRepository(db *gorm.DB, timeout time.Duration) TaskRepository {
	return &SQLiteTaskRepository{db, timeout}
}

func (repo *SQLiteTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	if task.Status == "" {
		task.Status = entity.TaskPending
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	return wrap("task.create", repo.db.WithContext(ctx).Create(task).Error)
}

func (repo *SQLiteTaskRepository) List(ctx context.Context, ownerUUID, status string) ([]*entity.Task, error) {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	q := repo.db.WithContext(ctx).Where("owner_uuid = ?", ownerUUID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var tasks []*entity.Task
	if err := q.Order("due_date ASC, due_time ASC, id ASC").Find(&tasks).Error; err != nil {
		return nil, wrap("task.list", err)
	}
	return tasks, nil
}

func (repo *SQLiteTaskRepository) SetStatus(ctx context.Context, ownerUUID string, id uint64, status string) error {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	res := repo.db.WithContext(ctx).
		Model(&entity.Task{}).
		Where("id = ? AND owner_uuid = ?", id, ownerUUID).
		Update("status", status)
	if res.Error != nil {
		return wrap("task.set-status", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("task.set-status", gorm.ErrRecordNotFound)
	}
	return nil
}

func (repo *SQLiteTaskRepository) UpdateDescription(ctx context.Context, ownerUUID string, id uint64, description string) error {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	res := repo.db.WithContext(ctx).
		Model(&entity.Task{}).
		Where("id = ? AND owner_uuid = ?", id, ownerUUID).
		Update("description", description)
	if res.Error != nil {
		return wrap("task.update-description", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("task.update-description", gorm.ErrRecordNotFound)
	}
	return nil
}

func (repo *SQLiteTaskRepository) Delete(ctx context.Context, ownerUUID string, id uint64) error {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	res := repo.db.WithContext(ctx).Where("id = ? AND owner_uuid = ?", id, ownerUUID).Delete(&entity.Task{})
	if res.Error != nil {
		return wrap("task.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("task.delete", gorm.ErrRecordNotFound)
	}
	return nil
}
