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

func seedListings(t *testing.T, listings ...entity.Listing) *memory.Store[entity.Listing] {
	t.Helper()
	store := memory.NewStore(func(l entity.Listing) string { return l.ID })
	for _, l := range listings {
		store.Put(context.Background(), l)
	}
	return store
}

func TestListingModerationFlagAndApprove(t *testing.T) {
	ctx := context.Background()
	store := seedListings(t, entity.Listing{ID: "1", Status: entity.ListingStatusActive})
	uc := NewListingModeration(store, logger.NewNop(), nil)

	flagged, err := uc.Flag(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusFlagged, flagged.Status)

	// Flagging again is a legal no-change transition.
	flagged, err = uc.Flag(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusFlagged, flagged.Status)

	approved, err := uc.Approve(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusActive, approved.Status)
}

func TestListingModerationApproveRequiresFlagged(t *testing.T) {
	ctx := context.Background()
	store := seedListings(t, entity.Listing{ID: "1", Status: entity.ListingStatusActive})
	uc := NewListingModeration(store, logger.NewNop(), nil)

	_, err := uc.Approve(ctx, "1")
	assert.ErrorIs(t, err, entity.ErrIllegalTransition)
}

func TestListingModerationSuspendFromAnyNonTerminalState(t *testing.T) {
	ctx := context.Background()
	for _, from := range []entity.ListingStatus{
		entity.ListingStatusActive,
		entity.ListingStatusFlagged,
		entity.ListingStatusSuspended,
	} {
		store := seedListings(t, entity.Listing{ID: "1", Status: from})
		uc := NewListingModeration(store, logger.NewNop(), nil)

		suspended, err := uc.Suspend(ctx, "1")
		require.NoError(t, err, "from %q", from)
		assert.Equal(t, entity.ListingStatusSuspended, suspended.Status)
	}
}

func TestListingModerationSoldIsTerminal(t *testing.T) {
	ctx := context.Background()
	store := seedListings(t, entity.Listing{ID: "1", Status: entity.ListingStatusSold})
	uc := NewListingModeration(store, logger.NewNop(), nil)

	for name, call := range map[string]func() error{
		"flag":    func() error { _, err := uc.Flag(ctx, "1"); return err },
		"approve": func() error { _, err := uc.Approve(ctx, "1"); return err },
		"suspend": func() error { _, err := uc.Suspend(ctx, "1"); return err },
		"feature": func() error { _, err := uc.ToggleFeatured(ctx, "1"); return err },
	} {
		assert.ErrorIs(t, call(), entity.ErrIllegalTransition, "action %s", name)
	}

	unchanged, err := store.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusSold, unchanged.Status)
	assert.False(t, unchanged.Featured)
}

func TestListingModerationToggleFeaturedIsInvolution(t *testing.T) {
	ctx := context.Background()
	store := seedListings(t, entity.Listing{ID: "1", Status: entity.ListingStatusFlagged, Featured: true})
	uc := NewListingModeration(store, logger.NewNop(), nil)

	once, err := uc.ToggleFeatured(ctx, "1")
	require.NoError(t, err)
	assert.False(t, once.Featured)
	assert.Equal(t, entity.ListingStatusFlagged, once.Status, "toggling never changes status")

	twice, err := uc.ToggleFeatured(ctx, "1")
	require.NoError(t, err)
	assert.True(t, twice.Featured)
	assert.Equal(t, entity.ListingStatusFlagged, twice.Status)
}

func TestListingModerationToggleLike(t *testing.T) {
	ctx := context.Background()
	store := seedListings(t, entity.Listing{ID: "1", Status: entity.ListingStatusActive, Likes: 18})
	uc := NewListingModeration(store, logger.NewNop(), nil)

	liked, err := uc.ToggleLike(ctx, "1")
	require.NoError(t, err)
	assert.True(t, liked.Liked)
	assert.Equal(t, 19, liked.Likes)

	unliked, err := uc.ToggleLike(ctx, "1")
	require.NoError(t, err)
	assert.False(t, unliked.Liked)
	assert.Equal(t, 18, unliked.Likes)
}

func TestListingModerationToggleSave(t *testing.T) {
	ctx := context.Background()
	store := seedListings(t, entity.Listing{ID: "1", Status: entity.ListingStatusActive})
	uc := NewListingModeration(store, logger.NewNop(), nil)

	saved, err := uc.ToggleSave(ctx, "1")
	require.NoError(t, err)
	assert.True(t, saved.Saved)

	unsaved, err := uc.ToggleSave(ctx, "1")
	require.NoError(t, err)
	assert.False(t, unsaved.Saved)
}

func TestListingModerationCanApply(t *testing.T) {
	ctx := context.Background()
	store := seedListings(t,
		entity.Listing{ID: "flagged", Status: entity.ListingStatusFlagged},
		entity.Listing{ID: "sold", Status: entity.ListingStatusSold},
	)
	uc := NewListingModeration(store, logger.NewNop(), nil)

	tests := []struct {
		id     string
		action Action
		want   bool
	}{
		{"flagged", ActionApprove, true},
		{"flagged", ActionFeature, true},
		{"flagged", ActionLike, true},
		{"sold", ActionFlag, false},
		{"sold", ActionFeature, false},
		{"sold", ActionLike, true},
	}
	for _, tt := range tests {
		ok, err := uc.CanApply(ctx, tt.id, tt.action)
		require.NoError(t, err)
		assert.Equal(t, tt.want, ok, "%s on %s", tt.action, tt.id)
	}
}
