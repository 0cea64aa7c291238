package usecase

import (
	"context"

	"github.com/hoangtien79/FunBuyPlace/internal/entity"
	"github.com/hoangtien79/FunBuyPlace/internal/platform/logger"
)

// Stats is the admin dashboard summary, computed live from the stores
// rather than kept as separate counters.
type Stats struct {
	TotalUsers          int
	ActiveUsers         int
	SuspendedUsers      int
	BannedUsers         int
	TotalListings       int
	ActiveListings      int
	FlaggedListings     int
	FeaturedListings    int
	PendingReports      int
	UrgentReports       int
	UnreadConversations int
}

// Dashboard aggregates store contents for the admin landing screen.
type Dashboard struct {
	users         UserRepository
	listings      ListingRepository
	reports       ReportRepository
	conversations ConversationRepository
	logger        *logger.Logger
}

func NewDashboard(
	users UserRepository,
	listings ListingRepository,
	reports ReportRepository,
	conversations ConversationRepository,
	log *logger.Logger,
) *Dashboard {
	return &Dashboard{
		users:         users,
		listings:      listings,
		reports:       reports,
		conversations: conversations,
		logger:        log,
	}
}

// Stats walks every store once and returns the aggregate counts.
func (d *Dashboard) Stats(ctx context.Context) Stats {
	var s Stats

	for user := range d.users.All(ctx) {
		s.TotalUsers++
		switch user.Status {
		case entity.UserStatusActive:
			s.ActiveUsers++
		case entity.UserStatusSuspended:
			s.SuspendedUsers++
		case entity.UserStatusBanned:
			s.BannedUsers++
		}
	}

	for listing := range d.listings.All(ctx) {
		s.TotalListings++
		switch listing.Status {
		case entity.ListingStatusActive:
			s.ActiveListings++
		case entity.ListingStatusFlagged:
			s.FlaggedListings++
		}
		if listing.Featured {
			s.FeaturedListings++
		}
	}

	for report := range d.reports.All(ctx) {
		if report.Status == entity.ReportStatusPending {
			s.PendingReports++
		}
		if report.Priority == entity.PriorityUrgent &&
			report.Status != entity.ReportStatusResolved &&
			report.Status != entity.ReportStatusDismissed {
			s.UrgentReports++
		}
	}

	for conversation := range d.conversations.All(ctx) {
		if conversation.UnreadCount > 0 {
			s.UnreadConversations++
		}
	}

	return s
}
