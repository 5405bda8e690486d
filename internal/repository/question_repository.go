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

// This repository handles the exam-prep question bank and the quiz attempts of a user
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	List(ctx context.Context, ownerUUID string) ([]*entity.Question, error)                        // Newest first
	Subjects(ctx context.Context, ownerUUID string) ([]string, error)                              // Distinct subjects present in the bank
	RandomBySubject(ctx context.Context, ownerUUID, subject string, n int) ([]*entity.Question, error) // Samples up to n questions of the subject, random order

	CreateAttempt(ctx context.Context, attempt *entity.QuizAttempt) error
	ListAttempts(ctx context.Context, ownerUUID string) ([]*entity.QuizAttempt, error) // Newest first
}

// Implementation of the repository using a SQLite DB
type SQLiteQuestionRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewSQLiteQuestionRepository(db *gorm.DB, timeout time.Duration) QuestionRepository {
	return &SQLiteQuestionRepository{db, timeout}
}

func (repo *SQLiteQuestionRepository) Create(ctx context.Context, question *entity.Question) error {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now()
	}
	return wrap("question.create", repo.db.WithContext(ctx).Create(question).Error)
}

func (repo *SQLiteQuestionRepository) List(ctx context.Context, ownerUUID string) ([]*entity.Question, error) {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	var questions []*entity.Question
	err := repo.db.WithContext(ctx).
		Where("owner_uuid = ?", ownerUUID).
		Order("id DESC").
		Find(&questions).Error
	if err != nil {
		return nil, wrap("question.list", err)
	}
	return questions, nil
}

func (repo *SQLiteQuestionRepository) Subjects(ctx context.Context, ownerUUID string) ([]string, error) {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	var subjects []string
	err := repo.db.WithContext(ctx).
		Model(&entity.Question{}).
		Where("owner_uuid = ?", ownerUUID).
		Distinct("subject").
		Order("subject ASC").
		Pluck("subject", &subjects).Error
	if err != nil {
		return nil, wrap("question.subjects", err)
	}
	return subjects, nil
}

func (repo *SQLiteQuestionRepository) RandomBySubject(ctx context.Context, ownerUUID, subject string, n int) ([]*entity.Question, error) {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	var questions []*entity.Question
	err := repo.db.WithContext(ctx).
		Where("owner_uuid = ? AND subject = ?", ownerUUID, subject).
		Order("RANDOM()").
		Limit(n).
		Find(&questions).Error
	if err != nil {
		return nil, wrap("question.random", err)
	}
	return questions, nil
}

func (repo *SQLiteQuestionRepository) CreateAttempt(ctx context.Context, attempt *entity.QuizAttempt) error {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	if attempt.TakenAt.IsZero() {
		attempt.TakenAt = time.Now()
	}
	return wrap("attempt.create", repo.db.WithContext(ctx).Create(attempt).Error)
}

func (repo *SQLiteQuestionRepository) ListAttempts(ctx context.Context, ownerUUID string) ([]*entity.QuizAttempt, error) {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	var attempts []*entity.QuizAttempt
	err := repo.db.WithContext(ctx).
		Where("owner_uuid = ?", ownerUUID).
		Order("id DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, wrap("attempt.list", err)
	}
	return attempts, nil
}
