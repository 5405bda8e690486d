/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package entity

import "time"

// A multiple choice question in the exam-prep bank. Correct holds the letter
// of the right option (A, B, C or D).
type Question struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerUUID string    `gorm:"not null;index" json:"-"`
	Subject   string    `gorm:"not null;index" json:"subject"`
	Text      string    `gorm:"not null" json:"question"`
	OptionA   string    `gorm:"not null" json:"option-a"`
	OptionB   string    `gorm:"not null" json:"option-b"`
	OptionC   string    `gorm:"not null" json:"option-c"`
	OptionD   string    `gorm:"not null" json:"option-d"`
	Correct   string    `gorm:"not null" json:"correct-option"`
	CreatedAt time.Time `gorm:"not null" json:"created-at"`
}

// The outcome of one quiz run over a subject
type QuizAttempt struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerUUID string    `gorm:"not null;index" json:"-"`
	Subject   string    `gorm:"not null;index" json:"subject"`
	Total     int       `gorm:"not null" json:"total"`
	Correct   int       `gorm:"not null" json:"correct"`
	TakenAt   time.Time `gorm:"not null" json:"taken-at"`
}
