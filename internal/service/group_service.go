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
	"strings"
	"time"

	"teenconnect/internal/alog"
	"teenconnect/internal/apperr"
	"teenconnect/internal/entity"
	"teenconnect/internal/repository"

	"github.com/google/uuid"
)

// Service used to handle groups and user-group interaction
type GroupService interface {
	CreateGroup(ctx context.Context, name string, creator *entity.User) (*entity.ChatGroup, error) // Creates a new group with the given name, adding the creator as first member atomically
	JoinGroup(ctx context.Context, groupUUID, userUUID string) error                               // Adds a user to a group. Idempotent: joining twice is the same as joining once

	GetGroup(ctx context.Context, groupUUID string) (*entity.ChatGroup, error)   // Returns the group entity that has the given uuid
	GetMembers(ctx context.Context, groupUUID string) ([]*entity.User, error)    // Returns the user entities that are part of the group. Unordered
	GroupsOf(ctx context.Context, userUUID string) ([]*entity.ChatGroup, error)  // Returns all the groups the user is a member of
}

type groupService struct {
	groups repository.GroupRepository
	users  repository.UserRepository
	logger alog.Logger
}

func NewGroupService(groups repository.GroupRepository, users repository.UserRepository, logger alog.Logger) GroupService {
	return &groupService{
		groups: groups,
		users:  users,
		logger: logger,
	}
}

func (g *groupService) Logf(format string, v ...any) {
	g.logger.Logf(format, v...)
}

func (g *groupService) CreateGroup(ctx context.Context, name string, creator *entity.User) (*entity.ChatGroup, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &apperr.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	group := &entity.ChatGroup{
		UUID:        uuid.New().String(),
		Name:        strings.TrimSpace(name),
		CreatorUUID: creator.UUID,
		CreatedAt:   time.Now(),
	}
	// Group row and creator membership land in one transaction: either the
	// group exists with its creator inside, or nothing was written
	if err := g.groups.Create(ctx, group, creator); err != nil {
		g.Logf("Group creation failed {%v}", err)
		return nil, err
	}

	g.Logf("Group created {%s, %s}", group.UUID, group.Name)
	return group, nil
}

func (g *groupService) JoinGroup(ctx context.Context, groupUUID, userUUID string) error {
	if _, err := g.users.GetByUUID(ctx, userUUID); err != nil {
		return err
	}
	if err := g.groups.AddMember(ctx, groupUUID, userUUID); err != nil {
		g.Logf("Join failed {%s -> %s, %v}", userUUID, groupUUID, err)
		return err
	}
	g.Logf("User {%s} joined group {%s}", userUUID, groupUUID)
	return nil
}

func (g *groupService) GetGroup(ctx context.Context, groupUUID string) (*entity.ChatGroup, error) {
	return g.groups.GetByUUID(ctx, groupUUID)
}

func (g *groupService) GetMembers(ctx context.Context, groupUUID string) ([]*entity.User, error) {
	return g.groups.GetMembers(ctx, groupUUID)
}

func (g *groupService) GroupsOf(ctx context.Context, userUUID string) ([]*entity.ChatGroup, error) {
	return g.groups.GetForUser(ctx, userUUID)
}
