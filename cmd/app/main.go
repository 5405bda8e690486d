/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teenconnect/internal/alog"
	"teenconnect/internal/bible"
	"teenconnect/internal/config"
	"teenconnect/internal/handler"
	"teenconnect/internal/repository"
	"teenconnect/internal/service"

	"github.com/gorilla/sessions"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := alog.NewAppLogger(os.Stdout, cfg.Logging)
	go logger.Run(ctx)

	db, err := repository.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening the database: %w", err)
	}

	// Repositories
	userRepo := repository.NewSQLiteUserRepository(db, cfg.StoreTimeout)
	messageRepo := repository.NewSQLiteMessageRepository(db, cfg.StoreTimeout)
	groupRepo := repository.NewSQLiteGroupRepository(db, cfg.StoreTimeout)
	noteRepo := repository.NewSQLiteNoteRepository(db, cfg.StoreTimeout)
	taskRepo := repository.NewSQLiteTaskRepository(db, cfg.StoreTimeout)
	questionRepo := repository.NewSQLiteQuestionRepository(db, cfg.StoreTimeout)
	chapterRepo := repository.NewSQLiteChapterRepository(db, cfg.StoreTimeout)
	linkRepo := repository.NewSQLiteLinkRepository(db, cfg.StoreTimeout)
	backupRepo := repository.NewSQLiteBackupRepository(db, cfg.StoreTimeout)

	// Services
	authService := service.NewAuthService(userRepo, logger.Subsystem("auth"))
	userService := service.NewUserService(userRepo, logger.Subsystem("users"))
	chatService := service.NewChatService(messageRepo, groupRepo, cfg.HistoryLimit, cfg.CacheTTL, logger.Subsystem("chat"))
	groupService := service.NewGroupService(groupRepo, userRepo, logger.Subsystem("groups"))
	bibleClient := bible.NewClient(cfg.BibleAPIBase, cfg.BibleAPITimeout, logger.Subsystem("bible"))

	cookieStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(7 * 24 * time.Hour.Seconds()),
	}

	handlers := &handler.Handlers{
		Auth:     handler.NewAuthHandler(authService, cookieStore),
		User:     handler.NewUserHandler(userService),
		Message:  handler.NewMessageHandler(chatService, userService, groupService),
		Group:    handler.NewGroupHandler(groupService),
		Notebook: handler.NewNotebookHandler(noteRepo),
		Planner:  handler.NewPlannerHandler(taskRepo),
		Quiz:     handler.NewQuizHandler(questionRepo),
		Study:    handler.NewStudyHandler(chapterRepo),
		Social:   handler.NewSocialHandler(linkRepo),
		Bible:    handler.NewBibleHandler(bibleClient),
		Backup:   handler.NewBackupHandler(backupRepo),
	}

	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:        handler.NewRouter(handlers, cookieStore),
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		<-ctx.Done()
		logger.Logf("main", "Received stop signal. Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Logf("main", "Error during shutdown... %v", err)
		}
	}()

	logger.Logf("main", "Http server starting on port {%d}", cfg.ServerPort)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}

	return nil
}
