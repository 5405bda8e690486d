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
	"strconv"

	"teenconnect/internal/service"

	"github.com/gorilla/mux"
)

type msgReqFields struct {
	Content string `json:"content" validate:"required"`
}

// MessageHandler is used to handle all message-related routes
// Both private chat and group messages
type MessageHandler struct {
	chatService  service.ChatService
	userService  service.UserService
	groupService service.GroupService
}

func NewMessageHandler(chatService service.ChatService, userService service.UserService, groupService service.GroupService) *MessageHandler {
	return &MessageHandler{
		chatService:  chatService,
		userService:  userService,
		groupService: groupService,
	}
}

// Used to send a message in a private chat, addressed by the other user's tag
func (m *MessageHandler) SendDM(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tag := vars["tag"]

	if !validateTag(tag) {
		http.Error(w, "Tag is wrong, it must be a sequence of 4-6 numbers", http.StatusBadRequest)
		return
	}

	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req msgReqFields
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	// A miss here is normal: the client prompts for a different code
	otherUser, err := m.userService.GetByTag(r.Context(), tag)
	if err != nil {
		writeError(w, err)
		return
	}
	if otherUser.UUID == thisUser.UUID {
		http.Error(w, "You can not message yourself", http.StatusBadRequest)
		return
	}

	message, err := m.chatService.SendDirect(r.Context(), thisUser.UUID, otherUser.UUID, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status":  "success",
		"message": message,
		"other":   otherUser,
	})
}

// Used to retrieve the private chat with the user addressed by tag
func (m *MessageHandler) DMHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tag := vars["tag"]

	if !validateTag(tag) {
		http.Error(w, "Tag is wrong, it must be a sequence of 4-6 numbers", http.StatusBadRequest)
		return
	}

	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	otherUser, err := m.userService.GetByTag(r.Context(), tag)
	if err != nil {
		writeError(w, err)
		return
	}

	messages, err := m.chatService.DirectHistory(r.Context(), thisUser.UUID, otherUser.UUID, queryLimit(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"messages": messages,
		"other":    otherUser,
	})
}

// Used to send a message in a group chat
func (m *MessageHandler) SendGroupMessage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupUUID := vars["uuid"]

	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req msgReqFields
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	message, err := m.chatService.SendGroup(r.Context(), thisUser.UUID, groupUUID, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status":  "success",
		"message": message,
	})
}

// Used to retrieve the messages of a group chat. Only members can read it
func (m *MessageHandler) GroupHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupUUID := vars["uuid"]

	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if !isUserInGroup(r, thisUser.UUID, groupUUID, m.groupService) {
		http.Error(w, "You are not part of this group", http.StatusForbidden)
		return
	}

	messages, err := m.chatService.GroupHistory(r.Context(), groupUUID, queryLimit(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"messages": messages,
	})
}

// queryLimit reads the optional ?limit= parameter, 0 means the server default
func queryLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
