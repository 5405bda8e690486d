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

type linkReqFields struct {
	Platform string `json:"platform" validate:"required"`
	Username string `json:"username" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
}

// SocialHandler is used to handle the social hub routes
type SocialHandler struct {
	links repository.LinkRepository
}

func NewSocialHandler(links repository.LinkRepository) *SocialHandler {
	return &SocialHandler{links: links}
}

func (s *SocialHandler) Create(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req linkReqFields
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	link := &entity.SocialLink{
		OwnerUUID: thisUser.UUID,
		Platform:  req.Platform,
		Username:  req.Username,
		URL:       req.URL,
		AddedAt:   time.Now(),
	}
	if err := s.links.Create(r.Context(), link); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status": "success",
		"link":   link,
	})
}

func (s *SocialHandler) List(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	links, err := s.links.List(r.Context(), thisUser.UUID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"links":  links,
	})
}

func (s *SocialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.links.Delete(r.Context(), thisUser.UUID, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
	})
}
