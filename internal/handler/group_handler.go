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

	"teenconnect/internal/entity"
	"teenconnect/internal/service"

	"github.com/gorilla/mux"
	"github.com/samber/lo"
)

type groupReqFields struct {
	Name string `json:"name" validate:"required"`
}

// GroupHandler is used to handle all group-related routes
type GroupHandler struct {
	groupService service.GroupService
}

func NewGroupHandler(groupService service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// Used to create a new group. The creator is immediately a member
func (g *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req groupReqFields
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	group, err := g.groupService.CreateGroup(r.Context(), req.Name, &thisUser)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status": "success",
		"group":  group,
	})
}

// Used to join an existing group. Joining twice is not an error
func (g *GroupHandler) Join(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupUUID := vars["uuid"]

	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := g.groupService.JoinGroup(r.Context(), groupUUID, thisUser.UUID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
	})
}

// Used to retrieve a single group's data
func (g *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupUUID := vars["uuid"]

	group, err := g.groupService.GetGroup(r.Context(), groupUUID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"group":  group,
	})
}

// Used to retrieve the members of a group. Only members can see the roster
func (g *GroupHandler) Members(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupUUID := vars["uuid"]

	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	members, err := g.groupService.GetMembers(r.Context(), groupUUID)
	if err != nil {
		writeError(w, err)
		return
	}

	if !lo.ContainsBy(members, func(m *entity.User) bool { return m.UUID == thisUser.UUID }) {
		http.Error(w, "You are not part of this group", http.StatusForbidden)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"members": members,
	})
}

// Used to retrieve all groups the current user is part of
func (g *GroupHandler) Mine(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	groups, err := g.groupService.GroupsOf(r.Context(), thisUser.UUID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"groups": groups,
	})
}

// isUserInGroup reports whether userUUID appears in the group's roster
func isUserInGroup(r *http.Request, userUUID, groupUUID string, groups service.GroupService) bool {
	members, err := groups.GetMembers(r.Context(), groupUUID)
	if err != nil {
		return false
	}
	return lo.ContainsBy(members, func(m *entity.User) bool { return m.UUID == userUUID })
}
