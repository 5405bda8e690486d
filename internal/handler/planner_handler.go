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

	"teenconnect/internal/apperr"
	"teenconnect/internal/entity"
	"teenconnect/internal/repository"
)

type taskReqFields struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	DueDate     string `json:"due-date"`
	DueTime     string `json:"due-time"`
	Priority    string `json:"priority"`
}

type taskStatusReqFields struct {
	Status string `json:"status" validate:"required"`
}

type taskDescriptionReqFields struct {
	Description string `json:"description"`
}

// PlannerHandler is used to handle the study planner routes
type PlannerHandler struct {
	tasks repository.TaskRepository
}

func NewPlannerHandler(tasks repository.TaskRepository) *PlannerHandler {
	return &PlannerHandler{tasks: tasks}
}

func (p *PlannerHandler) Create(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req taskReqFields
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	task := &entity.Task{
		OwnerUUID:   thisUser.UUID,
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		DueDate:     req.DueDate,
		DueTime:     req.DueTime,
		Priority:    req.Priority,
		Status:      entity.TaskPending,
		CreatedAt:   time.Now(),
	}
	if err := p.tasks.Create(r.Context(), task); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status": "success",
		"task":   task,
	})
}

// Used to list the user's tasks, optionally filtered by ?status=
func (p *PlannerHandler) List(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" && status != entity.TaskPending && status != entity.TaskDone {
		writeError(w, &apperr.ValidationError{Field: "status", Reason: "must be Pending or Done"})
		return
	}

	tasks, err := p.tasks.List(r.Context(), thisUser.UUID, status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"tasks":  tasks,
	})
}

// Used to flip a task between Pending and Done
func (p *PlannerHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req taskStatusReqFields
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Status != entity.TaskPending && req.Status != entity.TaskDone {
		writeError(w, &apperr.ValidationError{Field: "status", Reason: "must be Pending or Done"})
		return
	}

	if err := p.tasks.SetStatus(r.Context(), thisUser.UUID, id, req.Status); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
	})
}

func (p *PlannerHandler) UpdateDescription(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req taskDescriptionReqFields
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := p.tasks.UpdateDescription(r.Context(), thisUser.UUID, id, req.Description); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
	})
}

func (p *PlannerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := p.tasks.Delete(r.Context(), thisUser.UUID, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
	})
}
