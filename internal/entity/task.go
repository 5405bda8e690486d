/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package entity

import "time"

// Task statuses. A task is either still pending or done, nothing in between.
const (
	TaskPending = "Pending"
	TaskDone    = "Done"
)

// A planner entry: homework, revision slots and the like
type Task struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerUUID   string    `gorm:"not null;index" json:"-"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Subject     string    `gorm:"index" json:"subject"`
	DueDate     string    `json:"due-date"` // ISO date, kept as text like the rest of the planner fields
	DueTime     string    `json:"due-time"`
	Priority    string    `json:"priority"`
	Status      string    `gorm:"not null;default:Pending;index" json:"status"`
	CreatedAt   time.Time `gorm:"not null" json:"created-at"`
}
