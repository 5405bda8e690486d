/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"teenconnect/internal/entity"
	"teenconnect/internal/repository"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	return db
}

// asUser builds a request carrying an authenticated user, the way the session
// middleware would hand it over
func asUser(method, target, body, userUUID string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	user := entity.User{UUID: userUUID, Username: "alice", Tag: "1234"}
	return req.WithContext(context.WithValue(req.Context(), "user", user))
}

func TestNotebookCreateAndList(t *testing.T) {
	db := newHandlerDB(t)
	h := NewNotebookHandler(repository.NewSQLiteNoteRepository(db, 0))

	rr := httptest.NewRecorder()
	h.Create(rr, asUser("POST", "/notes", `{"title":"Homework","content":"algebra ch 3"}`, "u1"))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = httptest.NewRecorder()
	h.List(rr, asUser("GET", "/notes", "", "u1"))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Notes []*entity.Note `json:"notes"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Notes, 1)
	assert.Equal(t, "Homework", resp.Notes[0].Title)

	// Another user sees nothing
	rr = httptest.NewRecorder()
	h.List(rr, asUser("GET", "/notes", "", "u2"))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Empty(t, resp.Notes)
}

func TestNotebookCreateRejectsMissingFields(t *testing.T) {
	db := newHandlerDB(t)
	h := NewNotebookHandler(repository.NewSQLiteNoteRepository(db, 0))

	rr := httptest.NewRecorder()
	h.Create(rr, asUser("POST", "/notes", `{"title":"no content"}`, "u1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	h.Create(rr, asUser("POST", "/notes", `not json`, "u1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestNotebookDeleteScopedToOwner(t *testing.T) {
	db := newHandlerDB(t)
	notes := repository.NewSQLiteNoteRepository(db, 0)
	h := NewNotebookHandler(notes)

	note := &entity.Note{OwnerUUID: "u1", Title: "mine", Content: "c"}
	require.NoError(t, notes.Create(context.Background(), note))

	req := mux.SetURLVars(asUser("DELETE", "/notes/1", "", "u2"), map[string]string{"id": "1"})
	rr := httptest.NewRecorder()
	h.Delete(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	req = mux.SetURLVars(asUser("DELETE", "/notes/1", "", "u1"), map[string]string{"id": "1"})
	rr = httptest.NewRecorder()
	h.Delete(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNotebookBadPathID(t *testing.T) {
	db := newHandlerDB(t)
	h := NewNotebookHandler(repository.NewSQLiteNoteRepository(db, 0))

	req := mux.SetURLVars(asUser("DELETE", "/notes/abc", "", "u1"), map[string]string{"id": "abc"})
	rr := httptest.NewRecorder()
	h.Delete(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
