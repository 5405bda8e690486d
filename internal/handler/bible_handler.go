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

	"teenconnect/internal/apperr"
	"teenconnect/internal/bible"
)

// BibleHandler is used to handle verse lookups against the external bible API
type BibleHandler struct {
	client *bible.Client
}

func NewBibleHandler(client *bible.Client) *BibleHandler {
	return &BibleHandler{client: client}
}

// Used to fetch a passage: ?book=John&chapter=3&verses=16 or a range like 16-17
func (b *BibleHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	chapter, err := strconv.Atoi(query.Get("chapter"))
	if err != nil || chapter <= 0 {
		writeError(w, &apperr.ValidationError{Field: "chapter", Reason: "must be a positive number"})
		return
	}

	passage, err := b.client.Lookup(r.Context(), query.Get("book"), chapter, query.Get("verses"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"passage": passage,
	})
}
