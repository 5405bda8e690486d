/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"net/http"
	"time"

	"teenconnect/internal/entity"
	"teenconnect/internal/repository"
)

type noteReqFields struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// NotebookHandler is used to handle the personal notepad routes
type NotebookHandler struct {
	notes repository.NoteRepository
}

func NewNotebookHandler(notes repository.NoteRepository) *NotebookHandler {
	return &NotebookHandler{notes: notes}
}

func (n *NotebookHandler) Create(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req noteReqFields
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	note := &entity.Note{
		OwnerUUID: thisUser.UUID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := n.notes.Create(r.Context(), note); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status": "success",
		"note":   note,
	})
}

// Used to list the user's notes, optionally filtered by a ?search= term
func (n *NotebookHandler) List(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	notes, err := n.notes.List(r.Context(), thisUser.UUID, r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"notes":  notes,
	})
}

func (n *NotebookHandler) Update(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req noteReqFields
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := n.notes.Update(r.Context(), thisUser.UUID, id, req.Title, req.Content); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
	})
}

func (n *NotebookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := n.notes.Delete(r.Context(), thisUser.UUID, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
	})
}
