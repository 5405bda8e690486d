/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package bible

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"teenconnect/internal/alog"
	"teenconnect/internal/apperr"
)

// verseRangePattern accepts a single verse ("16") or an inclusive range ("16-18")
var verseRangePattern = regexp.MustCompile(`^[0-9]+(-[0-9]+)?$`)

// Verse is one verse of a looked-up passage
type Verse struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`
}

// Passage is the normalized result of a lookup, whatever shape the API answered with
type Passage struct {
	Reference   string  `json:"reference"`
	Translation string  `json:"translation"`
	Verses      []Verse `json:"verses"`
}

// wirePassage mirrors the two response shapes of bible-api.com: a passage with
// a verses array, or a single top-level reference and text
type wirePassage struct {
	Reference       string      `json:"reference"`
	Text            string      `json:"text"`
	TranslationName string      `json:"translation_name"`
	Verses          []wireVerse `json:"verses"`
}

type wireVerse struct {
	BookName string `json:"book_name"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	Text     string `json:"text"`
}

// Client looks up passages on a bible-api.com style endpoint
type Client struct {
	base   string
	http   *http.Client
	logger alog.Logger
}

func NewClient(base string, timeout time.Duration, logger alog.Logger) *Client {
	return &Client{
		base:   strings.TrimRight(base, "/"),
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (c *Client) Logf(format string, v ...any) {
	c.logger.Logf(format, v...)
}

// Lookup fetches book chapter:verseRange, e.g. ("John", 3, "16-18").
// A verse that does not exist is ErrNotFound, bad references are ValidationError.
func (c *Client) Lookup(ctx context.Context, book string, chapter int, verseRange string) (*Passage, error) {
	book = strings.TrimSpace(book)
	if book == "" {
		return nil, &apperr.ValidationError{Field: "book", Reason: "must not be empty"}
	}
	if chapter < 1 {
		return nil, &apperr.ValidationError{Field: "chapter", Reason: "must be positive"}
	}
	if !verseRangePattern.MatchString(verseRange) {
		return nil, &apperr.ValidationError{Field: "verses", Reason: "must be a verse number or range like 16-18"}
	}

	// bible-api wants the book spaces as '+', e.g. /1+John+3:16
	query := fmt.Sprintf("%s+%d:%s", strings.ReplaceAll(book, " ", "+"), chapter, verseRange)
	url := c.base + "/" + query

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.Logf("Lookup of {%s} failed {%v}", query, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperr.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("verse lookup returned status %d", resp.StatusCode)
	}

	var wire wirePassage
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, err
	}

	return normalize(book, chapter, &wire), nil
}

// normalize collapses both response shapes into one Passage: when the verses
// array is present it wins, otherwise the top-level text becomes the single verse
func normalize(book string, chapter int, wire *wirePassage) *Passage {
	passage := &Passage{
		Reference:   wire.Reference,
		Translation: wire.TranslationName,
	}

	if len(wire.Verses) > 0 {
		for _, v := range wire.Verses {
			passage.Verses = append(passage.Verses, Verse{
				Book:    v.BookName,
				Chapter: v.Chapter,
				Verse:   v.Verse,
				Text:    strings.TrimSpace(v.Text),
			})
		}
		return passage
	}

	passage.Verses = []Verse{{
		Book:    book,
		Chapter: chapter,
		Text:    strings.TrimSpace(wire.Text),
	}}
	return passage
}
