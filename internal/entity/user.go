/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package entity

import (
	"time"

	"gorm.io/gorm"
)

// Represents an account in the system. The UUID is opaque and immutable, the Tag
// is the 4-6 digit code users exchange to start a private chat.
type User struct {
	UUID      string         `gorm:"primaryKey" json:"uuid"`            // Unique identifier
	Username  string         `gorm:"not null;index" json:"username"`    // Display name, mutable
	Tag       string         `gorm:"uniqueIndex;not null" json:"tag"`   // Numeric handle, assigned at registration
	CreatedAt time.Time      `gorm:"not null;index" json:"created-at"`  // Time of creation
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                    // Time of soft deletion

	Secret UserSecret `gorm:"foreignKey:UserUUID;references:UUID" json:"-"` // Password hash, kept in its own table
}
