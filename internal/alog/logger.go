/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package alog

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
)

// Logger is something that can print, using Logf, a format string
type Logger interface {
	Logf(format string, v ...any)
}

// subsystemLogger is a logger bound to one named subsystem of its parent AppLogger
type subsystemLogger struct {
	name   string
	parent *AppLogger
}

// Logf for a subsystem logger is just a wrap for the Logf of its parent, giving its subsystem name
func (s *subsystemLogger) Logf(format string, v ...any) {
	s.parent.Logf(s.name, format, v...)
}

// logEntry is an helper struct that can be used to send a couple (subsystem, formatted string) onto the log channel
type logEntry struct {
	subsystem string
	formatted string
}

// AppLogger writes prefixed log lines for multiple subsystems onto a single writer.
// It's safe to share amongst goroutines since writes go through an internal channel.
type AppLogger struct {
	lock    sync.RWMutex
	out     *log.Logger
	enabled bool

	inbox chan logEntry // Log channel, formatted strings are sent here instead of directly writing
}

// NewAppLogger creates an AppLogger writing to w, with logging initially on or off per the flag
func NewAppLogger(w io.Writer, enabled bool) *AppLogger {
	return &AppLogger{
		out:     log.New(w, "", log.Ldate|log.Ltime),
		enabled: enabled,
		inbox:   make(chan logEntry, 600),
	}
}

// Subsystem returns a Logger whose lines carry the given subsystem name as prefix
func (a *AppLogger) Subsystem(name string) Logger {
	return &subsystemLogger{name, a}
}

// EnableLogging enables the logging done by this logger
func (a *AppLogger) EnableLogging() {
	a.lock.Lock()
	a.enabled = true
	a.lock.Unlock()
}

// DisableLogging disables the logging done by this logger
func (a *AppLogger) DisableLogging() {
	a.lock.Lock()
	a.enabled = false
	a.lock.Unlock()
}

// Logf formats a string using format and v, and appends it to the logging channel, alongside the subsystem it belongs to
func (a *AppLogger) Logf(subsystem, format string, v ...any) {
	a.inbox <- logEntry{subsystem, fmt.Sprintf(format, v...)}
}

// Run waits either on the log channel or ctx.Done()
// When ctx.Done(), the caller has shut down and we drain what is left
// When a message arrives on the log channel, we write it accordingly
func (a *AppLogger) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for {
				select {
				case msg := <-a.inbox:
					a.actualWrite(msg.subsystem, msg.formatted)
				default:
					return
				}
			}
		case msg := <-a.inbox:
			a.actualWrite(msg.subsystem, msg.formatted)
		}
	}
}

// actualWrite is the function that writes the formatted string, if logging is enabled
func (a *AppLogger) actualWrite(subsystem, formatted string) {
	a.lock.RLock()
	enabled := a.enabled
	a.lock.RUnlock()

	if enabled {
		a.out.Printf("[%s]: %s", subsystem, formatted)
	}
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Logf(string, ...any) {}

// Nop returns a Logger that discards everything, used in tests
func Nop() Logger {
	return nopLogger{}
}
