package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangtien79/FunBuyPlace/internal/fixtures"
	"github.com/hoangtien79/FunBuyPlace/internal/platform/logger"
	"github.com/hoangtien79/FunBuyPlace/internal/repository/memory"
)

func TestDashboardStatsFromFixtures(t *testing.T) {
	ctx := context.Background()
	stores := memory.NewStores()
	fixtures.Seed(ctx, stores)

	d := NewDashboard(stores.Users, stores.Listings, stores.Reports, stores.Conversations, logger.NewNop())
	stats := d.Stats(ctx)

	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 2, stats.ActiveUsers)
	assert.Equal(t, 1, stats.SuspendedUsers)
	assert.Equal(t, 0, stats.BannedUsers)

	assert.Equal(t, 6, stats.TotalListings)
	assert.Equal(t, 4, stats.ActiveListings)
	assert.Equal(t, 1, stats.FlaggedListings)
	assert.Equal(t, 1, stats.FeaturedListings)

	assert.Equal(t, 1, stats.PendingReports)
	assert.Equal(t, 0, stats.UrgentReports)

	assert.Equal(t, 1, stats.UnreadConversations)
}

func TestDashboardStatsTrackMutations(t *testing.T) {
	ctx := context.Background()
	stores := memory.NewStores()
	fixtures.Seed(ctx, stores)

	log := logger.NewNop()
	d := NewDashboard(stores.Users, stores.Listings, stores.Reports, stores.Conversations, log)
	users := NewUserModeration(stores.Users, log, nil)

	before := d.Stats(ctx)
	_, err := users.Ban(ctx, "1")
	require.NoError(t, err)
	after := d.Stats(ctx)

	assert.Equal(t, before.ActiveUsers-1, after.ActiveUsers)
	assert.Equal(t, before.BannedUsers+1, after.BannedUsers)
	assert.Equal(t, before.TotalUsers, after.TotalUsers)
}
