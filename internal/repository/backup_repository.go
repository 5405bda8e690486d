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

// Snapshot is the JSON backup shape of one user's personal data. Messages and
// groups are shared state and never part of a backup.
type Snapshot struct {
	Notes    []*entity.Note        `json:"notes"`
	Tasks    []*entity.Task        `json:"tasks"`
	Questions []*entity.Question   `json:"questions"`
	Attempts []*entity.QuizAttempt `json:"quiz_attempts"`
	Chapters []*entity.Chapter     `json:"chapters"`
	Links    []*entity.SocialLink  `json:"social_links"`
}

// This repository exports and restores a user's personal data as one snapshot.
// A restore replaces everything the user owns: the old rows are wiped and the
// snapshot rows inserted, all inside a single transaction.
type BackupRepository interface {
	Export(ctx context.Context, ownerUUID string) (*Snapshot, error)
	Import(ctx context.Context, ownerUUID string, snap *Snapshot) error
}

// Implementation of the repository using a SQLite DB
type SQLiteBackupRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewSQLiteBackupRepository(db *gorm.DB, timeout time.Duration) BackupRepository {
	return &SQLiteBackupRepository{db, timeout}
}

func (repo *SQLiteBackupRepository) Export(ctx context.Context, ownerUUID string) (*Snapshot, error) {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	snap := &Snapshot{}
	// One transaction so the snapshot is a consistent cut of the user's data
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := func(dest any) error {
			return tx.Where("owner_uuid = ?", ownerUUID).Order("id ASC").Find(dest).Error
		}
		if err := owned(&snap.Notes); err != nil {
			return err
		}
		if err := owned(&snap.Tasks); err != nil {
			return err
		}
		if err := owned(&snap.Questions); err != nil {
			return err
		}
		if err := owned(&snap.Attempts); err != nil {
			return err
		}
		if err := owned(&snap.Chapters); err != nil {
			return err
		}
		return owned(&snap.Links)
	})
	if err != nil {
		return nil, wrap("backup.export", err)
	}
	return snap, nil
}

func (repo *SQLiteBackupRepository) Import(ctx context.Context, ownerUUID string, snap *Snapshot) error {
	ctx, cancel := callCtx(ctx, repo.timeout)
	defer cancel()

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&entity.Note{}, &entity.Task{}, &entity.Question{},
			&entity.QuizAttempt{}, &entity.Chapter{}, &entity.SocialLink{},
		} {
			if err := tx.Where("owner_uuid = ?", ownerUUID).Delete(model).Error; err != nil {
				return err
			}
		}

		// Restored rows get fresh ids and are forced onto the importing owner
		for _, n := range snap.Notes {
			n.ID, n.OwnerUUID = 0, ownerUUID
		}
		for _, t := range snap.Tasks {
			t.ID, t.OwnerUUID = 0, ownerUUID
		}
		for _, q := range snap.Questions {
			q.ID, q.OwnerUUID = 0, ownerUUID
		}
		for _, a := range snap.Attempts {
			a.ID, a.OwnerUUID = 0, ownerUUID
		}
		for _, c := range snap.Chapters {
			c.ID, c.OwnerUUID = 0, ownerUUID
		}
		for _, l := range snap.Links {
			l.ID, l.OwnerUUID = 0, ownerUUID
		}

		if len(snap.Notes) > 0 {
			if err := tx.Create(&snap.Notes).Error; err != nil {
				return err
			}
		}
		if len(snap.Tasks) > 0 {
			if err := tx.Create(&snap.Tasks).Error; err != nil {
				return err
			}
		}
		if len(snap.Questions) > 0 {
			if err := tx.Create(&snap.Questions).Error; err != nil {
				return err
			}
		}
		if len(snap.Attempts) > 0 {
			if err := tx.Create(&snap.Attempts).Error; err != nil {
				return err
			}
		}
		if len(snap.Chapters) > 0 {
			if err := tx.Create(&snap.Chapters).Error; err != nil {
				return err
			}
		}
		if len(snap.Links) > 0 {
			if err := tx.Create(&snap.Links).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return wrap("backup.import", err)
}
