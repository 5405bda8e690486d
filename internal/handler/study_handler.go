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

type chapterReqFields struct {
	Subject string `json:"subject" validate:"required"`
	Title   string `json:"chapter" validate:"required"`
}

// StudyHandler is used to handle the study-material chapter routes
type StudyHandler struct {
	chapters repository.ChapterRepository
}

func NewStudyHandler(chapters repository.ChapterRepository) *StudyHandler {
	return &StudyHandler{chapters: chapters}
}

func (s *StudyHandler) Create(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req chapterReqFields
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	chapter := &entity.Chapter{
		OwnerUUID: thisUser.UUID,
		Subject:   req.Subject,
		Title:     req.Title,
		CreatedAt: time.Now(),
	}
	if err := s.chapters.Create(r.Context(), chapter); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status":  "success",
		"chapter": chapter,
	})
}

// Used to list chapters, optionally filtered by a ?search= term on subject or title
func (s *StudyHandler) List(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	chapters, err := s.chapters.List(r.Context(), thisUser.UUID, r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"chapters": chapters,
	})
}
