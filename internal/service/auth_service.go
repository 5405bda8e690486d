/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"teenconnect/internal/alog"
	"teenconnect/internal/apperr"
	"teenconnect/internal/entity"
	"teenconnect/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// tagAttempts bounds the search for a free handle before giving up
const tagAttempts = 32

// Service used for the user registration and login phases
type AuthService interface {
	Register(ctx context.Context, username, password string) (*entity.User, error)    // Creates a new user, assigning a fresh numeric tag, returning it if successful
	Login(ctx context.Context, username, tag, password string) (*entity.User, error)  // Authenticates a user via its credentials, returning the user entity if successful
}

type authService struct {
	users  repository.UserRepository
	logger alog.Logger
}

func NewAuthService(users repository.UserRepository, logger alog.Logger) AuthService {
	return &authService{
		users:  users,
		logger: logger,
	}
}

func (a *authService) Logf(format string, v ...any) {
	a.logger.Logf(format, v...)
}

func (a *authService) Register(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &apperr.ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if len(password) < 8 {
		return nil, &apperr.ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	tag, err := a.freeTag(ctx)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		UUID:      uuid.New().String(),
		Username:  username,
		Tag:       tag,
		CreatedAt: time.Now(),
		Secret:    entity.UserSecret{Hash: string(hash)},
	}
	user.Secret.UserUUID = user.UUID

	if err := a.users.Create(ctx, user); err != nil {
		a.Logf("Registration failed {%s, %v}", username, err)
		return nil, err
	}

	a.Logf("User registered {%s#%s}", user.Username, user.Tag)
	return user, nil
}

func (a *authService) Login(ctx context.Context, username, tag, password string) (*entity.User, error) {
	user, err := a.users.GetForLogin(ctx, strings.TrimSpace(username), tag)
	if err != nil {
		// An unknown name+tag pair reads the same as a bad password from outside
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Secret.Hash), []byte(password)); err != nil {
		a.Logf("Bad password for {%s#%s}", username, tag)
		return nil, apperr.ErrInvalidCredentials
	}

	a.Logf("User logged in {%s#%s}", user.Username, user.Tag)
	return user, nil
}

// freeTag draws random 4 digit tags until an unused one comes up, widening to
// 5 and 6 digits as the attempts pile up
func (a *authService) freeTag(ctx context.Context) (string, error) {
	for i := 0; i < tagAttempts; i++ {
		span := 9000
		base := 1000
		switch {
		case i >= 2*tagAttempts/3:
			span, base = 900000, 100000
		case i >= tagAttempts/3:
			span, base = 90000, 10000
		}

		tag := fmt.Sprintf("%d", base+rand.Intn(span))
		taken, err := a.users.TagExists(ctx, tag)
		if err != nil {
			return "", err
		}
		if !taken {
			return tag, nil
		}
	}
	return "", fmt.Errorf("no free tag found after %d attempts", tagAttempts)
}
