package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangtien79/FunBuyPlace/internal/entity"
	"github.com/hoangtien79/FunBuyPlace/internal/platform/logger"
	"github.com/hoangtien79/FunBuyPlace/internal/repository/memory"
)

func seedUsers(t *testing.T, users ...entity.User) *memory.Store[entity.User] {
	t.Helper()
	store := memory.NewStore(func(u entity.User) string { return u.ID })
	for _, u := range users {
		store.Put(context.Background(), u)
	}
	return store
}

func TestUserModerationSuspendActivate(t *testing.T) {
	ctx := context.Background()
	store := seedUsers(t, entity.User{ID: "1", Name: "John Doe", Status: entity.UserStatusActive})
	uc := NewUserModeration(store, logger.NewNop(), nil)

	suspended, err := uc.Suspend(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusSuspended, suspended.Status)

	activated, err := uc.Activate(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusActive, activated.Status)
}

func TestUserModerationBanFromAnyNonTerminalState(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		from entity.UserStatus
	}{
		{"from active", entity.UserStatusActive},
		{"from suspended", entity.UserStatusSuspended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seedUsers(t, entity.User{ID: "1", Status: tt.from})
			uc := NewUserModeration(store, logger.NewNop(), nil)

			banned, err := uc.Ban(ctx, "1")
			require.NoError(t, err)
			assert.Equal(t, entity.UserStatusBanned, banned.Status)
		})
	}
}

func TestUserModerationBannedIsTerminal(t *testing.T) {
	ctx := context.Background()
	store := seedUsers(t, entity.User{ID: "1", Name: "Gone", Status: entity.UserStatusBanned})
	uc := NewUserModeration(store, logger.NewNop(), nil)

	for _, action := range []Action{ActionSuspend, ActionActivate, ActionBan} {
		_, err := uc.apply(ctx, "1", action)
		assert.ErrorIs(t, err, entity.ErrIllegalTransition, "action %q", action)
	}

	unchanged, err := store.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusBanned, unchanged.Status)
	assert.Equal(t, "Gone", unchanged.Name)
}

func TestUserModerationIllegalTransitionDetails(t *testing.T) {
	ctx := context.Background()
	store := seedUsers(t, entity.User{ID: "1", Status: entity.UserStatusActive})
	uc := NewUserModeration(store, logger.NewNop(), nil)

	_, err := uc.Activate(ctx, "1")
	require.Error(t, err)

	var itErr *entity.IllegalTransitionError
	require.ErrorAs(t, err, &itErr)
	assert.Equal(t, "user", itErr.Kind)
	assert.Equal(t, "active", itErr.Current)
	assert.Equal(t, "activate", itErr.Action)
}

func TestUserModerationUnrecognizedStatusIsIllegal(t *testing.T) {
	ctx := context.Background()
	store := seedUsers(t, entity.User{ID: "1", Status: entity.UserStatus("corrupted")})
	uc := NewUserModeration(store, logger.NewNop(), nil)

	_, err := uc.Ban(ctx, "1")
	assert.ErrorIs(t, err, entity.ErrIllegalTransition)
}

func TestUserModerationNotFound(t *testing.T) {
	ctx := context.Background()
	uc := NewUserModeration(seedUsers(t), logger.NewNop(), nil)

	_, err := uc.Ban(ctx, "ghost")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUserModerationCanApply(t *testing.T) {
	ctx := context.Background()
	store := seedUsers(t,
		entity.User{ID: "active", Status: entity.UserStatusActive},
		entity.User{ID: "banned", Status: entity.UserStatusBanned},
	)
	uc := NewUserModeration(store, logger.NewNop(), nil)

	ok, err := uc.CanApply(ctx, "active", ActionSuspend)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.CanApply(ctx, "banned", ActionSuspend)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = uc.CanApply(ctx, "ghost", ActionSuspend)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
