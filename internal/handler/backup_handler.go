/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"encoding/json"
	"net/http"

	"teenconnect/internal/apperr"
	"teenconnect/internal/repository"
)

// BackupHandler is used to export and import a user's personal data as JSON
type BackupHandler struct {
	backups repository.BackupRepository
}

func NewBackupHandler(backups repository.BackupRepository) *BackupHandler {
	return &BackupHandler{backups: backups}
}

// Used to download everything the user owns as one JSON document
func (b *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	snap, err := b.backups.Export(r.Context(), thisUser.UUID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="teenconnect-backup.json"`)
	writeJSON(w, http.StatusOK, snap)
}

// Used to restore a previously exported backup. The user's current personal
// data is replaced wholesale, the import is all or nothing
func (b *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var snap repository.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		writeError(w, &apperr.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}

	if err := b.backups.Import(r.Context(), thisUser.UUID, &snap); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
	})
}
