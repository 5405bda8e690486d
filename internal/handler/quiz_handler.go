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
	"time"

	"teenconnect/internal/apperr"
	"teenconnect/internal/entity"
	"teenconnect/internal/repository"
)

// defaultQuizSize is how many questions a quiz samples when the client
// does not ask for a specific amount
const defaultQuizSize = 5

type questionReqFields struct {
	Subject string `json:"subject" validate:"required"`
	Text    string `json:"question" validate:"required"`
	OptionA string `json:"option-a" validate:"required"`
	OptionB string `json:"option-b" validate:"required"`
	OptionC string `json:"option-c" validate:"required"`
	OptionD string `json:"option-d" validate:"required"`
	Correct string `json:"correct-option" validate:"required,oneof=A B C D"`
}

type attemptReqFields struct {
	Subject string `json:"subject" validate:"required"`
	Total   int    `json:"total" validate:"required,min=1"`
	Correct int    `json:"correct" validate:"min=0"`
}

// QuizHandler is used to handle the exam-prep routes: the question bank,
// random quiz sampling and past attempts
type QuizHandler struct {
	questions repository.QuestionRepository
}

func NewQuizHandler(questions repository.QuestionRepository) *QuizHandler {
	return &QuizHandler{questions: questions}
}

func (q *QuizHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req questionReqFields
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	question := &entity.Question{
		OwnerUUID: thisUser.UUID,
		Subject:   req.Subject,
		Text:      req.Text,
		OptionA:   req.OptionA,
		OptionB:   req.OptionB,
		OptionC:   req.OptionC,
		OptionD:   req.OptionD,
		Correct:   req.Correct,
		CreatedAt: time.Now(),
	}
	if err := q.questions.Create(r.Context(), question); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status":   "success",
		"question": question,
	})
}

func (q *QuizHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	questions, err := q.questions.List(r.Context(), thisUser.UUID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "success",
		"questions": questions,
	})
}

// Used to list the subjects present in the user's question bank
func (q *QuizHandler) Subjects(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	subjects, err := q.questions.Subjects(r.Context(), thisUser.UUID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"subjects": subjects,
	})
}

// Used to sample a quiz: up to ?count= random questions of the given subject
func (q *QuizHandler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	subject := r.URL.Query().Get("subject")
	if subject == "" {
		writeError(w, &apperr.ValidationError{Field: "subject", Reason: "must not be empty"})
		return
	}

	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil || count <= 0 {
		count = defaultQuizSize
	}

	questions, err := q.questions.RandomBySubject(r.Context(), thisUser.UUID, subject, count)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(questions) == 0 {
		http.Error(w, "No questions for this subject yet", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "success",
		"questions": questions,
	})
}

// Used to record the outcome of a finished quiz run
func (q *QuizHandler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req attemptReqFields
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Correct > req.Total {
		writeError(w, &apperr.ValidationError{Field: "correct", Reason: "can not exceed total"})
		return
	}

	attempt := &entity.QuizAttempt{
		OwnerUUID: thisUser.UUID,
		Subject:   req.Subject,
		Total:     req.Total,
		Correct:   req.Correct,
		TakenAt:   time.Now(),
	}
	if err := q.questions.CreateAttempt(r.Context(), attempt); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status":  "success",
		"attempt": attempt,
	})
}

func (q *QuizHandler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	thisUser, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	attempts, err := q.questions.ListAttempts(r.Context(), thisUser.UUID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"attempts": attempts,
	})
}
