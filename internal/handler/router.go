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

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Message  *MessageHandler
	Group    *GroupHandler
	Notebook *NotebookHandler
	Planner  *PlannerHandler
	Quiz     *QuizHandler
	Study    *StudyHandler
	Social   *SocialHandler
	Bible    *BibleHandler
	Backup   *BackupHandler
}

// NewRouter wires every route of the API. Everything except registration and
// login sits behind the session middleware.
func NewRouter(h *Handlers, store *sessions.CookieStore) *mux.Router {
	r := mux.NewRouter()

	auth := func(next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
		return middleware.Auth(store, next)
	}

	// Authentication routes
	r.HandleFunc("/register", h.Auth.Register).Methods("POST")
	r.HandleFunc("/login", h.Auth.Login).Methods("POST")
	r.HandleFunc("/logout", h.Auth.Logout).Methods("POST")

	// User routes
	r.HandleFunc("/me", auth(h.User.Me)).Methods("GET")
	r.HandleFunc("/users/{tag}", auth(h.User.FindByTag)).Methods("GET")

	// Private chat routes, the other user is addressed by tag
	r.HandleFunc("/messages/{tag}", auth(h.Message.SendDM)).Methods("POST")
	r.HandleFunc("/messages/{tag}", auth(h.Message.DMHistory)).Methods("GET")

	// Group routes
	r.HandleFunc("/groups", auth(h.Group.Create)).Methods("POST")
	r.HandleFunc("/groups", auth(h.Group.Mine)).Methods("GET")
	r.HandleFunc("/groups/{uuid}", auth(h.Group.Get)).Methods("GET")
	r.HandleFunc("/groups/{uuid}/join", auth(h.Group.Join)).Methods("POST")
	r.HandleFunc("/groups/{uuid}/members", auth(h.Group.Members)).Methods("GET")
	r.HandleFunc("/groups/{uuid}/messages", auth(h.Message.SendGroupMessage)).Methods("POST")
	r.HandleFunc("/groups/{uuid}/messages", auth(h.Message.GroupHistory)).Methods("GET")

	// Notepad routes
	r.HandleFunc("/notes", auth(h.Notebook.Create)).Methods("POST")
	r.HandleFunc("/notes", auth(h.Notebook.List)).Methods("GET")
	r.HandleFunc("/notes/{id}", auth(h.Notebook.Update)).Methods("PUT")
	r.HandleFunc("/notes/{id}", auth(h.Notebook.Delete)).Methods("DELETE")

	// Planner routes
	r.HandleFunc("/tasks", auth(h.Planner.Create)).Methods("POST")
	r.HandleFunc("/tasks", auth(h.Planner.List)).Methods("GET")
	r.HandleFunc("/tasks/{id}/status", auth(h.Planner.SetStatus)).Methods("PUT")
	r.HandleFunc("/tasks/{id}/description", auth(h.Planner.UpdateDescription)).Methods("PUT")
	r.HandleFunc("/tasks/{id}", auth(h.Planner.Delete)).Methods("DELETE")

	// Exam-prep routes
	r.HandleFunc("/questions", auth(h.Quiz.CreateQuestion)).Methods("POST")
	r.HandleFunc("/questions", auth(h.Quiz.ListQuestions)).Methods("GET")
	r.HandleFunc("/questions/subjects", auth(h.Quiz.Subjects)).Methods("GET")
	r.HandleFunc("/quiz", auth(h.Quiz.StartQuiz)).Methods("GET")
	r.HandleFunc("/quiz/attempts", auth(h.Quiz.RecordAttempt)).Methods("POST")
	r.HandleFunc("/quiz/attempts", auth(h.Quiz.ListAttempts)).Methods("GET")

	// Study material routes
	r.HandleFunc("/chapters", auth(h.Study.Create)).Methods("POST")
	r.HandleFunc("/chapters", auth(h.Study.List)).Methods("GET")

	// Social hub routes
	r.HandleFunc("/links", auth(h.Social.Create)).Methods("POST")
	r.HandleFunc("/links", auth(h.Social.List)).Methods("GET")
	r.HandleFunc("/links/{id}", auth(h.Social.Delete)).Methods("DELETE")

	// Bible lookup
	r.HandleFunc("/bible", auth(h.Bible.Lookup)).Methods("GET")

	// Backup routes
	r.HandleFunc("/backup", auth(h.Backup.Export)).Methods("GET")
	r.HandleFunc("/backup", auth(h.Backup.Import)).Methods("POST")

	return r
}
