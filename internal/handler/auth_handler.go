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

	"teenconnect/internal/middleware"
	"teenconnect/internal/service"

	"github.com/gorilla/sessions"
)

type registerReqFields struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginReqFields struct {
	Username string `json:"username" validate:"required"`
	Tag      string `json:"tag" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler is used to handle registration, login and logout
type AuthHandler struct {
	authService service.AuthService
	store       *sessions.CookieStore
}

func NewAuthHandler(authService service.AuthService, cookieStore *sessions.CookieStore) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       cookieStore,
	}
}

func (a *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReqFields
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := a.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	a.saveSession(w, r, user.UUID, user.Username, user.Tag)

	writeJSON(w, http.StatusCreated, map[string]any{
		"status": "success",
		"user":   user,
	})
}

func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReqFields
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if !validateTag(req.Tag) {
		http.Error(w, "Tag is wrong, it must be a sequence of 4-6 numbers", http.StatusBadRequest)
		return
	}

	user, err := a.authService.Login(r.Context(), req.Username, req.Tag, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	a.saveSession(w, r, user.UUID, user.Username, user.Tag)

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"user":   user,
	})
}

func (a *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := a.store.Get(r, middleware.SessionName)
	session.Options.MaxAge = -1
	sessions.Save(r, w)

	writeJSON(w, http.StatusOK, map[string]any{"status": "success"})
}

func (a *AuthHandler) saveSession(w http.ResponseWriter, r *http.Request, uuid, username, tag string) {
	session, _ := a.store.Get(r, middleware.SessionName)
	session.Values["user_uuid"] = uuid
	session.Values["username"] = username
	session.Values["tag"] = tag
	sessions.Save(r, w)
}
