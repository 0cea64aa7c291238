package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hoangtien79/FunBuyPlace/internal/entity"
	"github.com/hoangtien79/FunBuyPlace/internal/platform/logger"
	"github.com/hoangtien79/FunBuyPlace/internal/platform/metrics"
)

// userTransitions is the user status machine. Banned is terminal: it
// has no entry, so every action on a banned user misses the table.
var userTransitions = map[entity.UserStatus]map[Action]entity.UserStatus{
	entity.UserStatusActive: {
		ActionSuspend: entity.UserStatusSuspended,
		ActionBan:     entity.UserStatusBanned,
	},
	entity.UserStatusSuspended: {
		ActionActivate: entity.UserStatusActive,
		ActionBan:      entity.UserStatusBanned,
	},
}

// UserModeration applies admin actions to user accounts.
type UserModeration struct {
	repo    UserRepository
	logger  *logger.Logger
	metrics *metrics.Manager
}

func NewUserModeration(repo UserRepository, log *logger.Logger, m *metrics.Manager) *UserModeration {
	return &UserModeration{repo: repo, logger: log, metrics: m}
}

// Suspend moves an active user to suspended.
func (uc *UserModeration) Suspend(ctx context.Context, id string) (entity.User, error) {
	return uc.apply(ctx, id, ActionSuspend)
}

// Activate moves a suspended user back to active.
func (uc *UserModeration) Activate(ctx context.Context, id string) (entity.User, error) {
	return uc.apply(ctx, id, ActionActivate)
}

// Ban permanently bans a user. There is no way back out of banned.
func (uc *UserModeration) Ban(ctx context.Context, id string) (entity.User, error) {
	return uc.apply(ctx, id, ActionBan)
}

// CanApply reports whether the action is currently legal for the user.
func (uc *UserModeration) CanApply(ctx context.Context, id string, action Action) (bool, error) {
	user, err := uc.repo.Get(ctx, id)
	if err != nil {
		return false, fmt.Errorf("UserModeration.CanApply: %w", err)
	}
	return transitionLegal(userTransitions, user.Status, action), nil
}

func (uc *UserModeration) apply(ctx context.Context, id string, action Action) (entity.User, error) {
	user, err := uc.repo.Get(ctx, id)
	if err != nil {
		uc.logger.Warn("user action target not found",
			zap.String("user_id", id), zap.String("action", string(action)))
		return entity.User{}, fmt.Errorf("UserModeration.apply: %w", err)
	}

	next, err := nextStatus(KindUser, userTransitions, user.Status, action)
	if err != nil {
		uc.metrics.RecordIllegal(string(KindUser), string(action))
		uc.logger.Warn("illegal user transition rejected",
			zap.String("user_id", id),
			zap.String("status", string(user.Status)),
			zap.String("action", string(action)))
		return entity.User{}, err
	}

	updated, err := uc.repo.Update(ctx, id, func(u *entity.User) {
		u.Status = next
	})
	if err != nil {
		return entity.User{}, fmt.Errorf("UserModeration.apply: %w", err)
	}

	uc.metrics.RecordAction(string(KindUser), string(action))
	uc.logger.Info("user status updated",
		zap.String("user_id", id),
		zap.String("action", string(action)),
		zap.String("from", string(user.Status)),
		zap.String("to", string(next)))
	return updated, nil
}
